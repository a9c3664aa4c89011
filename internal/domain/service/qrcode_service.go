package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateExtractQR generates a QR code embedded in printed family
	// record extracts, pointing back to the family's dashboard.
	GenerateExtractQR(familyID uuid.UUID) ([]byte, error)

	// ParseExtractQR parses QR code data and returns the family ID
	ParseExtractQR(qrData string) (uuid.UUID, error)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionRecord links an adoptive parent to an adoptee. A successful
// recording also defines a certified PARENT kinship edge between the
// two, so the adoptee inherits like a natural child.
type AdoptionRecord struct {
	ID       uuid.UUID
	FamilyID uuid.UUID

	AdoptiveParentID uuid.UUID
	AdopteeID        uuid.UUID

	LegalBasis       string // Statute or order the adoption rests on.
	CourtOrderNumber string
	ConsentObtained  bool // Consent of the birth parents or guardian.

	AdoptionDate time.Time
	CreatedAt    time.Time
}

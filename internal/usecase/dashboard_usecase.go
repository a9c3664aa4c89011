package usecase

import (
	"context"

	"mirathi/internal/domain/analysis"

	"github.com/google/uuid"
)

// DashboardUsecase serves the read-only projections computed from a
// family's current state.
type DashboardUsecase interface {
	// GetDashboard composes classification, health, readiness and the
	// recent timeline for one family.
	GetDashboard(ctx context.Context, familyID uuid.UUID) (*analysis.Dashboard, error)

	// GetClassification returns the structural summary alone.
	GetClassification(ctx context.Context, familyID uuid.UUID) (*analysis.Classification, error)

	// GetHealth returns the data-quality indicators alone.
	GetHealth(ctx context.Context, familyID uuid.UUID) (*analysis.Health, error)

	// GetReadiness returns the succession-readiness assessment alone.
	GetReadiness(ctx context.Context, familyID uuid.UUID) (*analysis.Readiness, error)

	// GenerateExtractQR renders the QR code printed on family record
	// extracts, linking back to the family's dashboard.
	GenerateExtractQR(ctx context.Context, familyID uuid.UUID) ([]byte, error)
}

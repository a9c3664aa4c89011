// Package repository defines the persistence contracts consumed by the
// usecase layer. Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"mirathi/internal/domain/entity"

	"github.com/google/uuid"
)

// Storage-level sentinels. Implementations return these wrapped;
// the usecase layer maps them onto the error taxonomy.
var (
	// ErrFamilyNotFound is returned when no family exists for the given ID.
	ErrFamilyNotFound = errors.New("family not found")
	// ErrVersionConflict is returned when a concurrent writer committed
	// the family at the version this write was based on.
	ErrVersionConflict = errors.New("family version conflict")
)

// FamilyRepository loads and stores whole family aggregates. The
// aggregate is the unit of persistence: reads return the full graph,
// writes replace it under an optimistic version check.
type FamilyRepository interface {
	// FindByID reconstructs the full aggregate for one family.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Family, error)
	// Create persists a freshly created aggregate.
	Create(ctx context.Context, family *entity.Family) error
	// Update replaces the stored aggregate state. The write only
	// succeeds if the stored version equals the version the aggregate
	// was loaded at; otherwise ErrVersionConflict is returned.
	Update(ctx context.Context, family *entity.Family) error
	// ListByCounty returns snapshot summaries for a registry county.
	// An empty county matches all families.
	ListByCounty(ctx context.Context, county string, limit, offset int) ([]*entity.FamilySnapshot, error)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// qualifyingCohabitationYears is the minimum duration of a durable
// partnership before it supports a dependency claim.
const qualifyingCohabitationYears = 2

// CohabitationRecord documents a durable partnership between two
// members that never became a registered marriage. It matters for
// succession because a long cohabitation can ground a dependency claim.
type CohabitationRecord struct {
	ID       uuid.UUID
	FamilyID uuid.UUID

	Partner1ID uuid.UUID
	Partner2ID uuid.UUID

	StartDate time.Time
	EndDate   *time.Time // Nil while the partnership is ongoing.

	// Witnesses who attested to the partnership. At least one is
	// required when the record is created.
	Witnesses []string

	// EvidenceRefs point at stored supporting documents
	// (affidavits, shared tenancy agreements, photographs).
	EvidenceRefs []string

	CreatedAt time.Time
}

// Duration returns the length of the partnership as of the given time.
func (c *CohabitationRecord) Duration(at time.Time) time.Duration {
	end := at
	if c.EndDate != nil {
		end = *c.EndDate
	}
	if end.Before(c.StartDate) {
		return 0
	}

	return end.Sub(c.StartDate)
}

// QualifiesForDependencyClaim reports whether the partnership lasted
// long enough, with at least one witness on record, to support a
// dependency claim for the surviving partner.
func (c *CohabitationRecord) QualifiesForDependencyClaim(at time.Time) bool {
	if len(c.Witnesses) == 0 {
		return false
	}

	return c.Duration(at) >= qualifyingCohabitationYears*365*24*time.Hour
}

// Involves reports whether the given member is one of the partners.
func (c *CohabitationRecord) Involves(id uuid.UUID) bool {
	return c.Partner1ID == id || c.Partner2ID == id
}

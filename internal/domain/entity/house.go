package entity

import (
	"time"

	"github.com/google/uuid"
)

// HouseStatus represents the lifecycle state of a polygamous house.
type HouseStatus uint8

const (
	// HouseActive represents a subsisting house.
	HouseActive HouseStatus = iota
	// HouseDissolved represents a house dissolved or merged away.
	HouseDissolved
)

// String returns the string representation of HouseStatus.
func (s HouseStatus) String() string {
	switch s {
	case HouseActive:
		return "active"
	case HouseDissolved:
		return "dissolved"
	default:
		return "unknown"
	}
}

// PolygamousHouse is the structural grouping used for asset
// distribution under a polygamy-aware succession regime: one wife, her
// children, and the share of the estate allocated to them.
type PolygamousHouse struct {
	ID       uuid.UUID
	FamilyID uuid.UUID

	// Order is the establishment sequence of the house (1st, 2nd, ...).
	// Unique within a family.
	Order int

	WifeID    uuid.UUID   // The originating wife of the house.
	MemberIDs []uuid.UUID // Wives and children assigned to this house.

	Status           HouseStatus
	AllocationWeight float64 // Relative asset-allocation weight of the house.
	Certified        bool    // True once the house composition is court certified.

	// ConsentEvidenceRef points at the stored evidence of the existing
	// wives' documented consent. Required for every house beyond the first.
	ConsentEvidenceRef string

	EstablishedAt time.Time
}

// IsActive reports whether the house still subsists.
func (h *PolygamousHouse) IsActive() bool {
	return h.Status == HouseActive
}

// Contains reports whether the given member is assigned to this house.
func (h *PolygamousHouse) Contains(id uuid.UUID) bool {
	if h.WifeID == id {
		return true
	}
	for _, m := range h.MemberIDs {
		if m == id {
			return true
		}
	}

	return false
}

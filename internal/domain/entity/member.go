// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VitalStatus represents the recorded vital state of a family member.
type VitalStatus uint8

const (
	// VitalAlive represents a member known to be alive.
	VitalAlive VitalStatus = iota
	// VitalDeceased represents a member with a recorded death.
	VitalDeceased
	// VitalMissing represents a member whose whereabouts are unknown.
	VitalMissing
)

// String returns the string representation of VitalStatus.
func (s VitalStatus) String() string {
	switch s {
	case VitalAlive:
		return "alive"
	case VitalDeceased:
		return "deceased"
	case VitalMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Gender is the recorded gender of a member, as it appears on identity documents.
type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
	GenderOther  Gender = "OTHER"
)

// IdentityVerification represents how far a member's identity documents
// have been checked against the civil registry.
type IdentityVerification uint8

const (
	// IdentityUnverified means no supporting document has been checked.
	IdentityUnverified IdentityVerification = iota
	// IdentityPending means documents were submitted and await review.
	IdentityPending
	// IdentityVerified means the member's identity documents were confirmed.
	IdentityVerified
)

// String returns the string representation of IdentityVerification.
func (v IdentityVerification) String() string {
	switch v {
	case IdentityUnverified:
		return "unverified"
	case IdentityPending:
		return "pending"
	case IdentityVerified:
		return "verified"
	default:
		return "unknown"
	}
}

// elderAge is the age from which a member is flagged as a potential
// dependant on account of old age.
const elderAge = 70

// Member is a person in a family record. A member is created
// independently and attached to exactly one family; once referenced by
// a marriage or relationship it is never silently removed.
type Member struct {
	ID       uuid.UUID // Stable identity of the person.
	FamilyID uuid.UUID // The family this member belongs to.
	Name     string    // Full legal name.
	Gender   Gender
	Vital    VitalStatus

	BirthDate          *time.Time // May be nil when unknown.
	DeathDate          *time.Time // Set only for deceased members.
	BirthDateEstimated bool       // True when the birth date is an estimate, not documented.

	// Legal-capacity flags relevant to succession entitlement.
	IsMinor               bool
	HasDisability         bool
	MentallyIncapacitated bool

	Identity IdentityVerification // Verification status of identity documents.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAlive reports whether the member is recorded as alive.
func (m *Member) IsAlive() bool {
	return m.Vital == VitalAlive
}

// IsAdult reports whether the member has legal majority.
func (m *Member) IsAdult() bool {
	return !m.IsMinor
}

// Age returns the member's age in whole years at the given time, and
// false when no birth date is recorded.
func (m *Member) Age(at time.Time) (int, bool) {
	if m.BirthDate == nil {
		return 0, false
	}

	years := at.Year() - m.BirthDate.Year()
	anniversary := m.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}

	return years, true
}

// IsPotentialDependant reports whether the member would plausibly
// qualify for a dependency claim: minors, members with a disability or
// mental incapacity, and elders.
func (m *Member) IsPotentialDependant(at time.Time) bool {
	if !m.IsAlive() {
		return false
	}
	if m.IsMinor || m.HasDisability || m.MentallyIncapacitated {
		return true
	}
	if age, ok := m.Age(at); ok && age >= elderAge {
		return true
	}

	return false
}

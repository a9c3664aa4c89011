package entity

import (
	"time"

	"github.com/google/uuid"
)

// MarriageType represents the legal regime a marriage was contracted under.
type MarriageType uint8

const (
	// MarriageCivil represents a civil marriage registered before a registrar.
	MarriageCivil MarriageType = iota
	// MarriageCustomary represents a marriage under customary law.
	MarriageCustomary
	// MarriageReligious represents a church or temple marriage.
	MarriageReligious
	// MarriageIslamic represents a marriage under Islamic law.
	MarriageIslamic
	// MarriageOther represents any other recognized union form.
	MarriageOther
)

// String returns the string representation of MarriageType.
func (t MarriageType) String() string {
	switch t {
	case MarriageCivil:
		return "civil"
	case MarriageCustomary:
		return "customary"
	case MarriageReligious:
		return "religious"
	case MarriageIslamic:
		return "islamic"
	case MarriageOther:
		return "other"
	default:
		return "unknown"
	}
}

// PermitsPolygamy reports whether the marriage regime itself permits
// further simultaneous marriages. Advisory only; the structural
// polygamy status of a family is always derived from active marriages.
func (t MarriageType) PermitsPolygamy() bool {
	return t == MarriageCustomary || t == MarriageIslamic
}

// MarriageStatus represents the lifecycle state of a marriage.
type MarriageStatus uint8

const (
	// StatusMarried represents a subsisting marriage.
	StatusMarried MarriageStatus = iota
	// StatusSeparated represents spouses living apart without dissolution.
	StatusSeparated
	// StatusDivorced represents a marriage dissolved by divorce.
	StatusDivorced
	// StatusWidowed represents a marriage ended by the death of a spouse.
	StatusWidowed
)

// String returns the string representation of MarriageStatus.
func (s MarriageStatus) String() string {
	switch s {
	case StatusMarried:
		return "married"
	case StatusSeparated:
		return "separated"
	case StatusDivorced:
		return "divorced"
	case StatusWidowed:
		return "widowed"
	default:
		return "unknown"
	}
}

// IsActive reports whether the marriage still legally subsists.
// Separation does not dissolve a marriage, so separated spouses still
// count toward the polygamy tally.
func (s MarriageStatus) IsActive() bool {
	return s == StatusMarried || s == StatusSeparated
}

// IsTerminated reports whether the marriage has legally ended.
func (s MarriageStatus) IsTerminated() bool {
	return s == StatusDivorced || s == StatusWidowed
}

// CanTransitionTo reports whether the marriage may move to the target state.
func (s MarriageStatus) CanTransitionTo(target MarriageStatus) bool {
	switch s {
	case StatusMarried:
		return target == StatusSeparated || target == StatusDivorced || target == StatusWidowed
	case StatusSeparated:
		return target == StatusMarried || target == StatusDivorced || target == StatusWidowed
	case StatusDivorced, StatusWidowed:
		return false // Terminal states.
	default:
		return false
	}
}

// Marriage is a union between exactly two members of the same family.
type Marriage struct {
	ID       uuid.UUID
	FamilyID uuid.UUID

	Spouse1ID uuid.UUID
	Spouse2ID uuid.UUID

	Type   MarriageType
	Status MarriageStatus

	MarriageDate time.Time
	EndDate      *time.Time // Set when the marriage is dissolved.

	// Documentation. Both are advisory: their absence never blocks
	// registration, because legal paperwork often lags reality.
	CertificateNumber    string
	BridePriceDocumented bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the marriage still legally subsists.
func (m *Marriage) IsActive() bool {
	return m.Status.IsActive()
}

// InvolvesPair reports whether the marriage is between the given
// unordered pair of members.
func (m *Marriage) InvolvesPair(a, b uuid.UUID) bool {
	return (m.Spouse1ID == a && m.Spouse2ID == b) || (m.Spouse1ID == b && m.Spouse2ID == a)
}

// Involves reports whether the given member is one of the spouses.
func (m *Marriage) Involves(id uuid.UUID) bool {
	return m.Spouse1ID == id || m.Spouse2ID == id
}

// OtherSpouse returns the spouse opposite the given member, and false
// when the member is not part of this marriage.
func (m *Marriage) OtherSpouse(id uuid.UUID) (uuid.UUID, bool) {
	switch id {
	case m.Spouse1ID:
		return m.Spouse2ID, true
	case m.Spouse2ID:
		return m.Spouse1ID, true
	default:
		return uuid.Nil, false
	}
}

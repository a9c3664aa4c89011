package entity

import (
	domainerrors "mirathi/internal/domain/errors"

	"github.com/pkg/errors"
)

// Parse helpers for the string forms accepted at the API boundary.
// Matching is exact against the canonical lowercase forms.

// ParseMarriageType parses the string form of a marriage type.
func ParseMarriageType(s string) (MarriageType, error) {
	switch s {
	case "civil":
		return MarriageCivil, nil
	case "customary":
		return MarriageCustomary, nil
	case "religious":
		return MarriageReligious, nil
	case "islamic":
		return MarriageIslamic, nil
	case "other":
		return MarriageOther, nil
	default:
		return 0, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown marriage type %q", s)
	}
}

// ParseMarriageStatus parses the string form of a marriage status.
func ParseMarriageStatus(s string) (MarriageStatus, error) {
	switch s {
	case "married":
		return StatusMarried, nil
	case "separated":
		return StatusSeparated, nil
	case "divorced":
		return StatusDivorced, nil
	case "widowed":
		return StatusWidowed, nil
	default:
		return 0, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown marriage status %q", s)
	}
}

// ParseRelationshipType parses the string form of a kinship edge type.
func ParseRelationshipType(s string) (RelationshipType, error) {
	switch RelationshipType(s) {
	case RelationshipParent, RelationshipSpouse, RelationshipSibling, RelationshipGuardian:
		return RelationshipType(s), nil
	default:
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown relationship type %q", s)
	}
}

// ParseVerificationLevel parses the string form of a verification level.
func ParseVerificationLevel(s string) (VerificationLevel, error) {
	switch s {
	case "unverified":
		return VerificationUnverified, nil
	case "declared":
		return VerificationDeclared, nil
	case "documented":
		return VerificationDocumented, nil
	case "certified":
		return VerificationCertified, nil
	default:
		return 0, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown verification level %q", s)
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// RelationshipType is the kind of a directed kinship edge.
type RelationshipType string

const (
	// RelationshipParent links a parent (from) to a child (to).
	RelationshipParent RelationshipType = "PARENT"
	// RelationshipSpouse links two spouses outside a registered marriage.
	RelationshipSpouse RelationshipType = "SPOUSE"
	// RelationshipSibling links two siblings.
	RelationshipSibling RelationshipType = "SIBLING"
	// RelationshipGuardian links a legal guardian (from) to a ward (to).
	RelationshipGuardian RelationshipType = "GUARDIAN"
)

// IsCritical reports whether the relationship type is one whose
// verification matters for legal clarity in succession processing.
func (t RelationshipType) IsCritical() bool {
	return t == RelationshipParent || t == RelationshipSpouse || t == RelationshipGuardian
}

// VerificationLevel represents how strongly a kinship edge is evidenced.
type VerificationLevel uint8

const (
	// VerificationUnverified means the edge rests on a bare assertion.
	VerificationUnverified VerificationLevel = iota
	// VerificationDeclared means the edge was declared by a family member on record.
	VerificationDeclared
	// VerificationDocumented means supporting documents were filed.
	VerificationDocumented
	// VerificationCertified means a court or registrar certified the edge.
	VerificationCertified
)

// String returns the string representation of VerificationLevel.
func (v VerificationLevel) String() string {
	switch v {
	case VerificationUnverified:
		return "unverified"
	case VerificationDeclared:
		return "declared"
	case VerificationDocumented:
		return "documented"
	case VerificationCertified:
		return "certified"
	default:
		return "unknown"
	}
}

// FamilyRelationship is a directed, typed kinship edge between two
// members of the same family.
type FamilyRelationship struct {
	ID       uuid.UUID
	FamilyID uuid.UUID

	FromMemberID uuid.UUID
	ToMemberID   uuid.UUID
	Type         RelationshipType

	Verification VerificationLevel
	LegalBasis   string // e.g. "birth certificate", "adoption order P&A 112/2024".

	CreatedAt time.Time
}

// relationshipKey identifies an edge by its (from, to, type) triple.
// At most one edge per key may exist within a family.
type relationshipKey struct {
	From uuid.UUID
	To   uuid.UUID
	Type RelationshipType
}

func (r *FamilyRelationship) key() relationshipKey {
	return relationshipKey{From: r.FromMemberID, To: r.ToMemberID, Type: r.Type}
}

package analysis

import (
	"testing"

	"mirathi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_CompletenessScore(t *testing.T) {
	empty := &entity.FamilySnapshot{}
	assert.Equal(t, 0, Evaluate(empty).CompletenessScore)

	full := &entity.FamilySnapshot{
		Members:       members(2),
		Marriages:     []*entity.Marriage{{ID: uuid.New()}},
		Relationships: []*entity.FamilyRelationship{{ID: uuid.New(), Type: entity.RelationshipParent}},
	}
	assert.Equal(t, 100, Evaluate(full).CompletenessScore)

	membersOnly := &entity.FamilySnapshot{Members: members(2)}
	assert.Equal(t, 40, Evaluate(membersOnly).CompletenessScore)
}

func TestEvaluate_VerificationBucket(t *testing.T) {
	edge := func(v entity.VerificationLevel) *entity.FamilyRelationship {
		return &entity.FamilyRelationship{ID: uuid.New(), Type: entity.RelationshipParent, Verification: v}
	}

	tests := []struct {
		name  string
		edges []*entity.FamilyRelationship
		ratio float64
		want  VerificationBucket
	}{
		{name: "no edges", edges: nil, ratio: 0, want: VerificationLow},
		{
			name:  "all certified",
			edges: []*entity.FamilyRelationship{edge(entity.VerificationCertified)},
			ratio: 1,
			want:  VerificationHigh,
		},
		{
			name: "half certified",
			edges: []*entity.FamilyRelationship{
				edge(entity.VerificationCertified),
				edge(entity.VerificationDeclared),
			},
			ratio: 0.5,
			want:  VerificationMedium,
		},
		{
			name: "mostly unverified",
			edges: []*entity.FamilyRelationship{
				edge(entity.VerificationCertified),
				edge(entity.VerificationUnverified),
				edge(entity.VerificationUnverified),
				edge(entity.VerificationUnverified),
			},
			ratio: 0.25,
			want:  VerificationLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Evaluate(&entity.FamilySnapshot{Relationships: tt.edges})
			assert.InDelta(t, tt.ratio, h.VerificationRatio, 1e-9)
			assert.Equal(t, tt.want, h.VerificationBucket)
		})
	}
}

func TestEvaluate_IsolatedMembers(t *testing.T) {
	a := &entity.Member{ID: uuid.New(), Vital: entity.VitalAlive}
	b := &entity.Member{ID: uuid.New(), Vital: entity.VitalAlive}
	loner := &entity.Member{ID: uuid.New(), Vital: entity.VitalAlive}

	snap := &entity.FamilySnapshot{
		Members: []*entity.Member{a, b, loner},
		Marriages: []*entity.Marriage{{
			ID:        uuid.New(),
			Spouse1ID: a.ID,
			Spouse2ID: b.ID,
			Status:    entity.StatusMarried,
		}},
	}

	h := Evaluate(snap)
	assert.Equal(t, 1, h.IsolatedMembers)
	assert.Equal(t, IntegrityGood, h.IntegrityTier)
}

func TestEvaluate_SingleLivingParent(t *testing.T) {
	father := &entity.Member{ID: uuid.New(), Vital: entity.VitalDeceased}
	mother := &entity.Member{ID: uuid.New(), Vital: entity.VitalAlive}
	child := &entity.Member{ID: uuid.New(), Vital: entity.VitalAlive, IsMinor: true}

	link := func(parent, kid *entity.Member) *entity.FamilyRelationship {
		return &entity.FamilyRelationship{
			ID:           uuid.New(),
			FromMemberID: parent.ID,
			ToMemberID:   kid.ID,
			Type:         entity.RelationshipParent,
			Verification: entity.VerificationCertified,
		}
	}

	snap := &entity.FamilySnapshot{
		Members:       []*entity.Member{father, mother, child},
		Relationships: []*entity.FamilyRelationship{link(father, child), link(mother, child)},
	}

	h := Evaluate(snap)
	assert.Equal(t, 1, h.SingleParentMinors)

	// Both parents alive clears the flag.
	father.Vital = entity.VitalAlive
	assert.Equal(t, 0, Evaluate(snap).SingleParentMinors)
}

func TestEvaluate_IntegrityTiers(t *testing.T) {
	// Every member isolated; the tier degrades with the issue count.
	assert.Equal(t, IntegrityStrong, Evaluate(&entity.FamilySnapshot{}).IntegrityTier)
	assert.Equal(t, IntegrityGood, Evaluate(&entity.FamilySnapshot{Members: members(2)}).IntegrityTier)
	assert.Equal(t, IntegrityWeak, Evaluate(&entity.FamilySnapshot{Members: members(4)}).IntegrityTier)
	assert.Equal(t, IntegrityPoor, Evaluate(&entity.FamilySnapshot{Members: members(6)}).IntegrityTier)
}

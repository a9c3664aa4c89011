package analysis

import (
	"testing"

	"mirathi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func members(n int) []*entity.Member {
	out := make([]*entity.Member, n)
	for i := range out {
		out[i] = &entity.Member{ID: uuid.New(), Vital: entity.VitalAlive}
	}

	return out
}

func houses(n int, status entity.HouseStatus) []*entity.PolygamousHouse {
	out := make([]*entity.PolygamousHouse, n)
	for i := range out {
		out[i] = &entity.PolygamousHouse{ID: uuid.New(), Order: i + 1, Status: status}
	}

	return out
}

func TestClassify_PolygamyTier(t *testing.T) {
	tests := []struct {
		name   string
		houses []*entity.PolygamousHouse
		want   PolygamyTier
	}{
		{name: "no houses", houses: nil, want: PolygamyNone},
		{name: "dissolved only", houses: houses(2, entity.HouseDissolved), want: PolygamyNone},
		{name: "one active", houses: houses(1, entity.HouseActive), want: PolygamyLow},
		{name: "three active", houses: houses(3, entity.HouseActive), want: PolygamyMedium},
		{name: "four active", houses: houses(4, entity.HouseActive), want: PolygamyHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(&entity.FamilySnapshot{Houses: tt.houses})
			assert.Equal(t, tt.want, c.PolygamyTier)
		})
	}
}

func TestClassify_ComplexityScore(t *testing.T) {
	snap := &entity.FamilySnapshot{
		Members: members(4),
		Relationships: []*entity.FamilyRelationship{
			{ID: uuid.New(), Type: entity.RelationshipParent},
			{ID: uuid.New(), Type: entity.RelationshipParent}, // Same type counts once.
			{ID: uuid.New(), Type: entity.RelationshipSibling},
		},
		Houses: houses(1, entity.HouseActive),
	}

	c := Classify(snap)
	// 4 members * 3 + 2 types * 8 + 1 house * 10.
	assert.Equal(t, 38, c.ComplexityScore)

	// The score saturates at 100.
	snap.Members = members(40)
	assert.Equal(t, 100, Classify(snap).ComplexityScore)
}

func TestClassify_StructureType(t *testing.T) {
	t.Run("nuclear", func(t *testing.T) {
		c := Classify(&entity.FamilySnapshot{Members: members(4)})
		assert.Equal(t, StructureNuclear, c.StructureType)
	})

	t.Run("blended", func(t *testing.T) {
		c := Classify(&entity.FamilySnapshot{
			Members:   members(3),
			Adoptions: []*entity.AdoptionRecord{{ID: uuid.New()}},
		})
		assert.Equal(t, StructureBlended, c.StructureType)
	})

	t.Run("extended", func(t *testing.T) {
		c := Classify(&entity.FamilySnapshot{Members: members(9)})
		assert.Equal(t, StructureExtended, c.StructureType)
	})

	t.Run("polygamous", func(t *testing.T) {
		c := Classify(&entity.FamilySnapshot{
			Members: members(5),
			Houses:  houses(1, entity.HouseActive),
		})
		assert.Equal(t, StructurePolygamous, c.StructureType)
	})

	t.Run("regime flag", func(t *testing.T) {
		snap := &entity.FamilySnapshot{
			Members: members(2),
			Marriages: []*entity.Marriage{{
				ID:     uuid.New(),
				Type:   entity.MarriageCustomary,
				Status: entity.StatusMarried,
			}},
		}
		assert.True(t, Classify(snap).RegimePermitsPolygamy)

		snap.Marriages[0].Type = entity.MarriageCivil
		assert.False(t, Classify(snap).RegimePermitsPolygamy)

		snap.Marriages[0].Type = entity.MarriageIslamic
		snap.Marriages[0].Status = entity.StatusDivorced
		assert.False(t, Classify(snap).RegimePermitsPolygamy)
	})

	t.Run("complex takes precedence", func(t *testing.T) {
		c := Classify(&entity.FamilySnapshot{
			Members: members(12),
			Houses:  houses(2, entity.HouseActive),
		})
		assert.Greater(t, c.ComplexityScore, 50)
		assert.Equal(t, StructureComplex, c.StructureType)
	})
}

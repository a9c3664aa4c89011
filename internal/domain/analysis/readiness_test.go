package analysis

import (
	"testing"
	"time"

	"mirathi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assessedAt = time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

func TestAssessReadiness_DependencyClaims(t *testing.T) {
	minor := &entity.Member{ID: uuid.New(), Vital: entity.VitalAlive, IsMinor: true}

	t.Run("no dependants is ready", func(t *testing.T) {
		r := AssessReadiness(&entity.FamilySnapshot{Members: members(2)}, assessedAt)
		assert.Equal(t, Ready, r.DependencyClaims)
		assert.Empty(t, r.PotentialDependants)
	})

	t.Run("dependants without evidence", func(t *testing.T) {
		r := AssessReadiness(&entity.FamilySnapshot{Members: []*entity.Member{minor}}, assessedAt)
		assert.Equal(t, NotReady, r.DependencyClaims)
		require.Len(t, r.PotentialDependants, 1)
		assert.Equal(t, minor.ID, r.PotentialDependants[0])
		assert.NotEmpty(t, r.MissingElements)
	})

	t.Run("unqualifying cohabitation is partial", func(t *testing.T) {
		snap := &entity.FamilySnapshot{
			Members: []*entity.Member{minor},
			Cohabitations: []*entity.CohabitationRecord{{
				ID:        uuid.New(),
				StartDate: assessedAt.AddDate(0, -6, 0),
				Witnesses: []string{"Chief Owuor"},
			}},
		}
		assert.Equal(t, Partial, AssessReadiness(snap, assessedAt).DependencyClaims)
	})

	t.Run("qualifying cohabitation is ready", func(t *testing.T) {
		snap := &entity.FamilySnapshot{
			Members: []*entity.Member{minor},
			Cohabitations: []*entity.CohabitationRecord{{
				ID:        uuid.New(),
				StartDate: assessedAt.AddDate(-3, 0, 0),
				Witnesses: []string{"Chief Owuor"},
			}},
		}
		assert.Equal(t, Ready, AssessReadiness(snap, assessedAt).DependencyClaims)
	})

	t.Run("adoption record is ready", func(t *testing.T) {
		snap := &entity.FamilySnapshot{
			Members:   []*entity.Member{minor},
			Adoptions: []*entity.AdoptionRecord{{ID: uuid.New()}},
		}
		assert.Equal(t, Ready, AssessReadiness(snap, assessedAt).DependencyClaims)
	})
}

func TestAssessReadiness_PolygamousDistribution(t *testing.T) {
	t.Run("monogamous is ready", func(t *testing.T) {
		r := AssessReadiness(&entity.FamilySnapshot{}, assessedAt)
		assert.Equal(t, Ready, r.PolygamousDistribution)
	})

	t.Run("polygamous without houses", func(t *testing.T) {
		r := AssessReadiness(&entity.FamilySnapshot{Polygamous: true}, assessedAt)
		assert.Equal(t, NotReady, r.PolygamousDistribution)
	})

	t.Run("uncertified houses are partial", func(t *testing.T) {
		snap := &entity.FamilySnapshot{
			Polygamous: true,
			Houses: []*entity.PolygamousHouse{
				{ID: uuid.New(), Order: 1, Status: entity.HouseActive, Certified: true},
				{ID: uuid.New(), Order: 2, Status: entity.HouseActive},
			},
		}
		assert.Equal(t, Partial, AssessReadiness(snap, assessedAt).PolygamousDistribution)
	})

	t.Run("all active houses certified", func(t *testing.T) {
		snap := &entity.FamilySnapshot{
			Polygamous: true,
			Houses: []*entity.PolygamousHouse{
				{ID: uuid.New(), Order: 1, Status: entity.HouseActive, Certified: true},
				{ID: uuid.New(), Order: 2, Status: entity.HouseDissolved},
			},
		}
		assert.Equal(t, Ready, AssessReadiness(snap, assessedAt).PolygamousDistribution)
	})
}

func TestAssessReadiness_LegalClarity(t *testing.T) {
	edge := func(rt entity.RelationshipType, v entity.VerificationLevel) *entity.FamilyRelationship {
		return &entity.FamilyRelationship{ID: uuid.New(), Type: rt, Verification: v}
	}

	t.Run("no critical edges", func(t *testing.T) {
		snap := &entity.FamilySnapshot{
			Relationships: []*entity.FamilyRelationship{
				edge(entity.RelationshipSibling, entity.VerificationCertified),
			},
		}
		assert.Equal(t, NotReady, AssessReadiness(snap, assessedAt).LegalClarity)
	})

	t.Run("all verified", func(t *testing.T) {
		snap := &entity.FamilySnapshot{
			Relationships: []*entity.FamilyRelationship{
				edge(entity.RelationshipParent, entity.VerificationDeclared),
				edge(entity.RelationshipSpouse, entity.VerificationCertified),
			},
		}
		assert.Equal(t, Ready, AssessReadiness(snap, assessedAt).LegalClarity)
	})

	t.Run("minority unverified is partial", func(t *testing.T) {
		snap := &entity.FamilySnapshot{
			Relationships: []*entity.FamilyRelationship{
				edge(entity.RelationshipParent, entity.VerificationUnverified),
				edge(entity.RelationshipParent, entity.VerificationCertified),
			},
		}
		assert.Equal(t, Partial, AssessReadiness(snap, assessedAt).LegalClarity)
	})

	t.Run("majority unverified is not ready", func(t *testing.T) {
		snap := &entity.FamilySnapshot{
			Relationships: []*entity.FamilyRelationship{
				edge(entity.RelationshipParent, entity.VerificationUnverified),
				edge(entity.RelationshipGuardian, entity.VerificationUnverified),
				edge(entity.RelationshipSpouse, entity.VerificationCertified),
			},
		}
		assert.Equal(t, NotReady, AssessReadiness(snap, assessedAt).LegalClarity)
	})
}

func TestBuildDashboard(t *testing.T) {
	base := assessedAt.Add(-24 * time.Hour)
	snap := &entity.FamilySnapshot{
		ID:          uuid.New(),
		Name:        "Omondi",
		County:      "KSM",
		Version:     7,
		MemberCount: 3,
		LivingCount: 3,
	}
	for i := 0; i < 3; i++ {
		snap.Members = append(snap.Members, &entity.Member{
			ID:        uuid.New(),
			Name:      "Member",
			Vital:     entity.VitalAlive,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	end := base.Add(30 * time.Hour)
	snap.Marriages = append(snap.Marriages, &entity.Marriage{
		ID:        uuid.New(),
		Type:      entity.MarriageCivil,
		Status:    entity.StatusDivorced,
		EndDate:   &end,
		CreatedAt: base.Add(5 * time.Hour),
	})

	d := BuildDashboard(snap, 3, assessedAt)

	assert.Equal(t, snap.ID, d.FamilyID)
	assert.Equal(t, 7, d.Version)
	assert.Equal(t, 1, d.MarriageCount)

	// Newest first, capped at the limit.
	require.Len(t, d.Timeline, 3)
	assert.Equal(t, "marriage ended (divorced)", d.Timeline[0].Detail)
	for i := 1; i < len(d.Timeline); i++ {
		assert.False(t, d.Timeline[i].OccurredAt.After(d.Timeline[i-1].OccurredAt))
	}
}

func TestBuildDashboard_DefaultLimit(t *testing.T) {
	snap := &entity.FamilySnapshot{ID: uuid.New()}
	for i := 0; i < DefaultTimelineLimit+10; i++ {
		snap.Members = append(snap.Members, &entity.Member{
			ID:        uuid.New(),
			CreatedAt: assessedAt.Add(time.Duration(i) * time.Minute),
		})
	}

	d := BuildDashboard(snap, 0, assessedAt)
	assert.Len(t, d.Timeline, DefaultTimelineLimit)
}

// Package analysis provides stateless read-only services over a family
// snapshot: structural classification, data-health indicators,
// succession-readiness evaluation and the dashboard projection. None
// of the functions mutate the snapshot or fail on sparse data; an
// empty graph is a valid, minimally-ready degenerate case.
package analysis

import "mirathi/internal/domain/entity"

// PolygamyTier grades how established a family's polygamous structure
// is, based on the number of active houses.
type PolygamyTier string

const (
	PolygamyNone   PolygamyTier = "NONE"
	PolygamyLow    PolygamyTier = "LOW"
	PolygamyMedium PolygamyTier = "MEDIUM"
	PolygamyHigh   PolygamyTier = "HIGH"
)

// StructureType is a coarse label for the family's shape, used by
// registry staff to triage case complexity.
type StructureType string

const (
	StructureNuclear    StructureType = "NUCLEAR"
	StructureExtended   StructureType = "EXTENDED"
	StructurePolygamous StructureType = "POLYGAMOUS"
	StructureBlended    StructureType = "BLENDED"
	StructureComplex    StructureType = "COMPLEX"
)

// Complexity score weights. The score is a heuristic for triage, not a
// legal determination.
const (
	memberWeight    = 3
	diversityWeight = 8
	houseWeight     = 10
	maxComplexity   = 100

	complexThreshold   = 50
	extendedMemberSize = 8
)

// Classification is the structural summary of one family.
type Classification struct {
	PolygamyTier    PolygamyTier  `json:"polygamyTier"`
	ComplexityScore int           `json:"complexityScore"`
	StructureType   StructureType `json:"structureType"`

	// RegimePermitsPolygamy flags that at least one active marriage was
	// contracted under a regime allowing further simultaneous unions.
	// Advisory only; the structural polygamy status is derived from the
	// active marriages themselves.
	RegimePermitsPolygamy bool `json:"regimePermitsPolygamy"`
}

// Classify derives the polygamy tier, complexity score and structure
// label from a family snapshot.
func Classify(snap *entity.FamilySnapshot) Classification {
	houses := activeHouseCount(snap)
	score := complexityScore(snap, houses)

	return Classification{
		PolygamyTier:          polygamyTier(houses),
		ComplexityScore:       score,
		StructureType:         structureType(snap, houses, score),
		RegimePermitsPolygamy: regimePermitsPolygamy(snap),
	}
}

func regimePermitsPolygamy(snap *entity.FamilySnapshot) bool {
	for _, m := range snap.Marriages {
		if m.IsActive() && m.Type.PermitsPolygamy() {
			return true
		}
	}

	return false
}

func polygamyTier(activeHouses int) PolygamyTier {
	switch {
	case activeHouses == 0:
		return PolygamyNone
	case activeHouses == 1:
		return PolygamyLow
	case activeHouses <= 3:
		return PolygamyMedium
	default:
		return PolygamyHigh
	}
}

func complexityScore(snap *entity.FamilySnapshot, activeHouses int) int {
	diversity := make(map[entity.RelationshipType]struct{}, 4)
	for _, r := range snap.Relationships {
		diversity[r.Type] = struct{}{}
	}

	score := len(snap.Members)*memberWeight + len(diversity)*diversityWeight + activeHouses*houseWeight
	if score > maxComplexity {
		score = maxComplexity
	}

	return score
}

func structureType(snap *entity.FamilySnapshot, activeHouses, score int) StructureType {
	if score > complexThreshold {
		return StructureComplex
	}

	switch {
	case activeHouses > 0:
		return StructurePolygamous
	case len(snap.Members) > extendedMemberSize:
		return StructureExtended
	case len(snap.Adoptions) > 0 || len(snap.Cohabitations) > 0:
		return StructureBlended
	default:
		return StructureNuclear
	}
}

func activeHouseCount(snap *entity.FamilySnapshot) int {
	count := 0
	for _, h := range snap.Houses {
		if h.IsActive() {
			count++
		}
	}

	return count
}

package analysis

import (
	"time"

	"mirathi/internal/domain/entity"

	"github.com/google/uuid"
)

// ReadinessLabel is the tri-state verdict for one succession concern.
type ReadinessLabel string

const (
	Ready    ReadinessLabel = "READY"
	Partial  ReadinessLabel = "PARTIAL"
	NotReady ReadinessLabel = "NOT_READY"
)

const clearCriticalRatio = 0.5

// Readiness is a heuristic, non-authoritative measure of how complete
// a family's legal record is for succession processing. Each concern
// gets its own label; missing elements and recommendations are
// itemized for registry staff.
type Readiness struct {
	DependencyClaims       ReadinessLabel `json:"dependencyClaims"`
	PolygamousDistribution ReadinessLabel `json:"polygamousDistribution"`
	LegalClarity           ReadinessLabel `json:"legalClarity"`

	PotentialDependants []uuid.UUID `json:"potentialDependants"`
	MissingElements     []string    `json:"missingElements"`
	Recommendations     []string    `json:"recommendations"`
}

// AssessReadiness evaluates the three succession concerns over a
// family snapshot as of the given time.
func AssessReadiness(snap *entity.FamilySnapshot, at time.Time) Readiness {
	r := Readiness{}
	r.PotentialDependants = potentialDependants(snap, at)
	r.DependencyClaims = dependencyReadiness(snap, at, &r)
	r.PolygamousDistribution = distributionReadiness(snap, &r)
	r.LegalClarity = clarityReadiness(snap, &r)

	return r
}

func potentialDependants(snap *entity.FamilySnapshot, at time.Time) []uuid.UUID {
	var out []uuid.UUID
	for _, m := range snap.Members {
		if m.IsPotentialDependant(at) {
			out = append(out, m.ID)
		}
	}

	return out
}

// dependencyReadiness checks whether claims by dependants outside the
// formal marriage record are backed by qualifying cohabitation or
// adoption evidence.
func dependencyReadiness(snap *entity.FamilySnapshot, at time.Time, r *Readiness) ReadinessLabel {
	if len(r.PotentialDependants) == 0 {
		return Ready
	}

	qualifying := 0
	for _, c := range snap.Cohabitations {
		if c.QualifiesForDependencyClaim(at) {
			qualifying++
		}
	}
	evidence := qualifying + len(snap.Adoptions)

	switch {
	case evidence > 0:
		return Ready
	case len(snap.Cohabitations) > 0:
		r.MissingElements = append(r.MissingElements, "cohabitation records below the qualifying duration or without witnesses")
		r.Recommendations = append(r.Recommendations, "collect witness statements for recorded cohabitations")

		return Partial
	default:
		r.MissingElements = append(r.MissingElements, "no cohabitation or adoption evidence for potential dependants")
		r.Recommendations = append(r.Recommendations, "record cohabitation or adoption evidence for each potential dependant")

		return NotReady
	}
}

// distributionReadiness checks that a polygamous estate can be divided
// per house: houses recorded, active, and certified.
func distributionReadiness(snap *entity.FamilySnapshot, r *Readiness) ReadinessLabel {
	if !snap.Polygamous {
		return Ready
	}

	active := 0
	certified := 0
	for _, h := range snap.Houses {
		if !h.IsActive() {
			continue
		}
		active++
		if h.Certified {
			certified++
		}
	}

	switch {
	case active == 0:
		r.MissingElements = append(r.MissingElements, "polygamous family with no active house records")
		r.Recommendations = append(r.Recommendations, "establish a house record for each wife")

		return NotReady
	case certified < active:
		r.MissingElements = append(r.MissingElements, "active houses without certification")
		r.Recommendations = append(r.Recommendations, "certify each active house with the registrar")

		return Partial
	default:
		return Ready
	}
}

// clarityReadiness measures the fraction of critical kinship edges
// (parent, spouse, guardian) still lacking any verification.
func clarityReadiness(snap *entity.FamilySnapshot, r *Readiness) ReadinessLabel {
	critical := 0
	unverified := 0
	for _, rel := range snap.Relationships {
		if !rel.Type.IsCritical() {
			continue
		}
		critical++
		if rel.Verification == entity.VerificationUnverified {
			unverified++
		}
	}

	if critical == 0 {
		r.MissingElements = append(r.MissingElements, "no critical kinship relationships recorded")
		r.Recommendations = append(r.Recommendations, "record parent and spouse relationships for succession parties")

		return NotReady
	}

	ratio := float64(unverified) / float64(critical)
	switch {
	case unverified == 0:
		return Ready
	case ratio <= clearCriticalRatio:
		r.MissingElements = append(r.MissingElements, "critical relationships without verification")
		r.Recommendations = append(r.Recommendations, "verify critical relationships with certificates or declarations")

		return Partial
	default:
		r.MissingElements = append(r.MissingElements, "most critical relationships are unverified")
		r.Recommendations = append(r.Recommendations, "verify critical relationships with certificates or declarations")

		return NotReady
	}
}

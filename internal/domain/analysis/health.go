package analysis

import (
	"mirathi/internal/domain/entity"

	"github.com/google/uuid"
)

// VerificationBucket grades the fraction of kinship edges carrying
// certified documentation.
type VerificationBucket string

const (
	VerificationLow    VerificationBucket = "LOW"
	VerificationMedium VerificationBucket = "MEDIUM"
	VerificationHigh   VerificationBucket = "HIGH"
)

// IntegrityTier grades the structural soundness of the recorded graph.
type IntegrityTier string

const (
	IntegrityStrong IntegrityTier = "STRONG"
	IntegrityGood   IntegrityTier = "GOOD"
	IntegrityWeak   IntegrityTier = "WEAK"
	IntegrityPoor   IntegrityTier = "POOR"
)

// Completeness weights. Members carry the largest weight because
// nothing else can be recorded without them.
const (
	membersWeight       = 40
	marriagesWeight     = 30
	relationshipsWeight = 30

	highVerificationRatio   = 0.8
	mediumVerificationRatio = 0.4

	goodIntegrityIssues = 2
	weakIntegrityIssues = 5
)

// Health is the data-quality summary of one family record.
type Health struct {
	CompletenessScore  int                `json:"completenessScore"`
	VerificationRatio  float64            `json:"verificationRatio"`
	VerificationBucket VerificationBucket `json:"verificationBucket"`
	IntegrityTier      IntegrityTier      `json:"integrityTier"`
	IsolatedMembers    int                `json:"isolatedMembers"`
	SingleParentMinors int                `json:"singleParentMinors"`
}

// Evaluate computes the health indicators for a family snapshot.
func Evaluate(snap *entity.FamilySnapshot) Health {
	ratio := verificationRatio(snap)
	isolated := isolatedMemberCount(snap)
	singleParent := singleLivingParentCount(snap)

	return Health{
		CompletenessScore:  completenessScore(snap),
		VerificationRatio:  ratio,
		VerificationBucket: verificationBucket(ratio),
		IntegrityTier:      integrityTier(isolated + singleParent),
		IsolatedMembers:    isolated,
		SingleParentMinors: singleParent,
	}
}

func completenessScore(snap *entity.FamilySnapshot) int {
	score := 0
	if len(snap.Members) > 0 {
		score += membersWeight
	}
	if len(snap.Marriages) > 0 {
		score += marriagesWeight
	}
	if len(snap.Relationships) > 0 {
		score += relationshipsWeight
	}

	return score
}

func verificationRatio(snap *entity.FamilySnapshot) float64 {
	if len(snap.Relationships) == 0 {
		return 0
	}

	certified := 0
	for _, r := range snap.Relationships {
		if r.Verification == entity.VerificationCertified {
			certified++
		}
	}

	return float64(certified) / float64(len(snap.Relationships))
}

func verificationBucket(ratio float64) VerificationBucket {
	switch {
	case ratio >= highVerificationRatio:
		return VerificationHigh
	case ratio >= mediumVerificationRatio:
		return VerificationMedium
	default:
		return VerificationLow
	}
}

func integrityTier(issues int) IntegrityTier {
	switch {
	case issues == 0:
		return IntegrityStrong
	case issues <= goodIntegrityIssues:
		return IntegrityGood
	case issues <= weakIntegrityIssues:
		return IntegrityWeak
	default:
		return IntegrityPoor
	}
}

// isolatedMemberCount counts members with no parent, child or spouse
// edge at all. A lone founder counts as isolated; that is intended.
func isolatedMemberCount(snap *entity.FamilySnapshot) int {
	connected := make(map[uuid.UUID]struct{}, len(snap.Members))
	for _, r := range snap.Relationships {
		switch r.Type {
		case entity.RelationshipParent, entity.RelationshipSpouse:
			connected[r.FromMemberID] = struct{}{}
			connected[r.ToMemberID] = struct{}{}
		}
	}
	for _, m := range snap.Marriages {
		if m.IsActive() {
			connected[m.Spouse1ID] = struct{}{}
			connected[m.Spouse2ID] = struct{}{}
		}
	}

	isolated := 0
	for _, m := range snap.Members {
		if _, ok := connected[m.ID]; !ok {
			isolated++
		}
	}

	return isolated
}

// singleLivingParentCount counts living children with exactly one
// living recorded parent. These records usually need a second parent
// edge or a death record before succession processing.
func singleLivingParentCount(snap *entity.FamilySnapshot) int {
	alive := make(map[uuid.UUID]bool, len(snap.Members))
	for _, m := range snap.Members {
		alive[m.ID] = m.IsAlive()
	}

	livingParents := make(map[uuid.UUID]int)
	hasParent := make(map[uuid.UUID]struct{})
	for _, r := range snap.Relationships {
		if r.Type != entity.RelationshipParent {
			continue
		}
		hasParent[r.ToMemberID] = struct{}{}
		if alive[r.FromMemberID] {
			livingParents[r.ToMemberID]++
		}
	}

	count := 0
	for _, m := range snap.Members {
		if !m.IsAlive() {
			continue
		}
		if _, recorded := hasParent[m.ID]; !recorded {
			continue
		}
		if livingParents[m.ID] == 1 {
			count++
		}
	}

	return count
}

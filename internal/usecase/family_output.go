package usecase

import (
	"time"

	"mirathi/internal/domain/entity"

	"github.com/google/uuid"
)

// FamilyOutput is the full read model of one family record.
type FamilyOutput struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	County    string    `json:"county"`
	Status    string    `json:"status"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	MemberCount    int  `json:"memberCount"`
	LivingCount    int  `json:"livingCount"`
	MinorCount     int  `json:"minorCount"`
	DependantCount int  `json:"dependantCount"`
	Polygamous     bool `json:"polygamous"`

	Members       []MemberOutput       `json:"members"`
	Marriages     []MarriageOutput     `json:"marriages"`
	Houses        []HouseOutput        `json:"houses"`
	Relationships []RelationshipOutput `json:"relationships"`
	Cohabitations []CohabitationOutput `json:"cohabitations"`
	Adoptions     []AdoptionOutput     `json:"adoptions"`
}

// FamilySummaryOutput is the list-view read model.
type FamilySummaryOutput struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	County      string    `json:"county"`
	Status      string    `json:"status"`
	MemberCount int       `json:"memberCount"`
	Polygamous  bool      `json:"polygamous"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MemberOutput is the read model of one member.
type MemberOutput struct {
	ID                    uuid.UUID  `json:"id"`
	Name                  string     `json:"name"`
	Gender                string     `json:"gender"`
	Vital                 string     `json:"vital"`
	BirthDate             *time.Time `json:"birthDate,omitempty"`
	BirthDateEstimated    bool       `json:"birthDateEstimated"`
	DeathDate             *time.Time `json:"deathDate,omitempty"`
	IsMinor               bool       `json:"isMinor"`
	HasDisability         bool       `json:"hasDisability"`
	MentallyIncapacitated bool       `json:"mentallyIncapacitated"`
	Identity              string     `json:"identity"`
}

// MarriageOutput is the read model of one marriage.
type MarriageOutput struct {
	ID                   uuid.UUID  `json:"id"`
	Spouse1ID            uuid.UUID  `json:"spouse1Id"`
	Spouse2ID            uuid.UUID  `json:"spouse2Id"`
	Type                 string     `json:"type"`
	Status               string     `json:"status"`
	MarriageDate         time.Time  `json:"marriageDate"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	CertificateNumber    string     `json:"certificateNumber,omitempty"`
	BridePriceDocumented bool       `json:"bridePriceDocumented"`
}

// HouseOutput is the read model of one polygamous house.
type HouseOutput struct {
	ID                 uuid.UUID   `json:"id"`
	Order              int         `json:"order"`
	WifeID             uuid.UUID   `json:"wifeId"`
	MemberIDs          []uuid.UUID `json:"memberIds"`
	Status             string      `json:"status"`
	AllocationWeight   float64     `json:"allocationWeight"`
	Certified          bool        `json:"certified"`
	ConsentEvidenceRef string      `json:"consentEvidenceRef,omitempty"`
	EstablishedAt      time.Time   `json:"establishedAt"`
}

// RelationshipOutput is the read model of one kinship edge.
type RelationshipOutput struct {
	ID           uuid.UUID `json:"id"`
	FromMemberID uuid.UUID `json:"fromMemberId"`
	ToMemberID   uuid.UUID `json:"toMemberId"`
	Type         string    `json:"type"`
	Verification string    `json:"verification"`
	LegalBasis   string    `json:"legalBasis,omitempty"`
}

// CohabitationOutput is the read model of one cohabitation record.
type CohabitationOutput struct {
	ID           uuid.UUID  `json:"id"`
	Partner1ID   uuid.UUID  `json:"partner1Id"`
	Partner2ID   uuid.UUID  `json:"partner2Id"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Witnesses    []string   `json:"witnesses"`
	EvidenceRefs []string   `json:"evidenceRefs,omitempty"`
}

// AdoptionOutput is the read model of one adoption record.
type AdoptionOutput struct {
	ID               uuid.UUID `json:"id"`
	AdoptiveParentID uuid.UUID `json:"adoptiveParentId"`
	AdopteeID        uuid.UUID `json:"adopteeId"`
	LegalBasis       string    `json:"legalBasis,omitempty"`
	CourtOrderNumber string    `json:"courtOrderNumber,omitempty"`
	ConsentObtained  bool      `json:"consentObtained"`
	AdoptionDate     time.Time `json:"adoptionDate"`
}

// NewFamilyOutput maps an aggregate snapshot to the read model.
func NewFamilyOutput(snap *entity.FamilySnapshot) *FamilyOutput {
	out := &FamilyOutput{
		ID:             snap.ID,
		Name:           snap.Name,
		County:         snap.County,
		Status:         snap.Status.String(),
		Version:        snap.Version,
		CreatedAt:      snap.CreatedAt,
		UpdatedAt:      snap.UpdatedAt,
		MemberCount:    snap.MemberCount,
		LivingCount:    snap.LivingCount,
		MinorCount:     snap.MinorCount,
		DependantCount: snap.DependantCount,
		Polygamous:     snap.Polygamous,
		Members:        make([]MemberOutput, 0, len(snap.Members)),
		Marriages:      make([]MarriageOutput, 0, len(snap.Marriages)),
		Houses:         make([]HouseOutput, 0, len(snap.Houses)),
		Relationships:  make([]RelationshipOutput, 0, len(snap.Relationships)),
		Cohabitations:  make([]CohabitationOutput, 0, len(snap.Cohabitations)),
		Adoptions:      make([]AdoptionOutput, 0, len(snap.Adoptions)),
	}

	for _, m := range snap.Members {
		out.Members = append(out.Members, MemberOutput{
			ID:                    m.ID,
			Name:                  m.Name,
			Gender:                string(m.Gender),
			Vital:                 m.Vital.String(),
			BirthDate:             m.BirthDate,
			BirthDateEstimated:    m.BirthDateEstimated,
			DeathDate:             m.DeathDate,
			IsMinor:               m.IsMinor,
			HasDisability:         m.HasDisability,
			MentallyIncapacitated: m.MentallyIncapacitated,
			Identity:              m.Identity.String(),
		})
	}
	for _, m := range snap.Marriages {
		out.Marriages = append(out.Marriages, MarriageOutput{
			ID:                   m.ID,
			Spouse1ID:            m.Spouse1ID,
			Spouse2ID:            m.Spouse2ID,
			Type:                 m.Type.String(),
			Status:               m.Status.String(),
			MarriageDate:         m.MarriageDate,
			EndDate:              m.EndDate,
			CertificateNumber:    m.CertificateNumber,
			BridePriceDocumented: m.BridePriceDocumented,
		})
	}
	for _, h := range snap.Houses {
		out.Houses = append(out.Houses, HouseOutput{
			ID:                 h.ID,
			Order:              h.Order,
			WifeID:             h.WifeID,
			MemberIDs:          h.MemberIDs,
			Status:             h.Status.String(),
			AllocationWeight:   h.AllocationWeight,
			Certified:          h.Certified,
			ConsentEvidenceRef: h.ConsentEvidenceRef,
			EstablishedAt:      h.EstablishedAt,
		})
	}
	for _, r := range snap.Relationships {
		out.Relationships = append(out.Relationships, RelationshipOutput{
			ID:           r.ID,
			FromMemberID: r.FromMemberID,
			ToMemberID:   r.ToMemberID,
			Type:         string(r.Type),
			Verification: r.Verification.String(),
			LegalBasis:   r.LegalBasis,
		})
	}
	for _, c := range snap.Cohabitations {
		out.Cohabitations = append(out.Cohabitations, CohabitationOutput{
			ID:           c.ID,
			Partner1ID:   c.Partner1ID,
			Partner2ID:   c.Partner2ID,
			StartDate:    c.StartDate,
			EndDate:      c.EndDate,
			Witnesses:    c.Witnesses,
			EvidenceRefs: c.EvidenceRefs,
		})
	}
	for _, a := range snap.Adoptions {
		out.Adoptions = append(out.Adoptions, AdoptionOutput{
			ID:               a.ID,
			AdoptiveParentID: a.AdoptiveParentID,
			AdopteeID:        a.AdopteeID,
			LegalBasis:       a.LegalBasis,
			CourtOrderNumber: a.CourtOrderNumber,
			ConsentObtained:  a.ConsentObtained,
			AdoptionDate:     a.AdoptionDate,
		})
	}

	return out
}

// NewFamilySummaryOutput maps a snapshot to the list-view read model.
func NewFamilySummaryOutput(snap *entity.FamilySnapshot) *FamilySummaryOutput {
	return &FamilySummaryOutput{
		ID:          snap.ID,
		Name:        snap.Name,
		County:      snap.County,
		Status:      snap.Status.String(),
		MemberCount: snap.MemberCount,
		Polygamous:  snap.Polygamous,
		UpdatedAt:   snap.UpdatedAt,
	}
}

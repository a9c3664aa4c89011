// Package usecase defines the application service interfaces and their
// input/output structures. Implementations live under usecase/impl.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateFamilyInput carries the data for opening a new family record.
// The founder is optional; a record can be opened empty and populated
// member by member.
type CreateFamilyInput struct {
	Name    string
	County  string
	Founder *MemberInput
}

// MemberInput carries the data for one member.
type MemberInput struct {
	Name                  string
	Gender                string
	BirthDate             *time.Time
	BirthDateEstimated    bool
	IsMinor               bool
	HasDisability         bool
	MentallyIncapacitated bool
	IdentityVerified      bool
}

// AddMemberInput attaches a member to an existing family.
type AddMemberInput struct {
	FamilyID uuid.UUID
	Member   MemberInput
}

// MarkDeceasedInput records a member's death.
type MarkDeceasedInput struct {
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	DeathDate time.Time
}

// RegisterMarriageInput registers a union between two recorded members.
type RegisterMarriageInput struct {
	FamilyID             uuid.UUID
	Spouse1ID            uuid.UUID
	Spouse2ID            uuid.UUID
	Type                 string
	MarriageDate         time.Time
	CertificateNumber    string
	BridePriceDocumented bool
}

// EndMarriageInput moves a marriage to a terminated or separated status.
type EndMarriageInput struct {
	FamilyID   uuid.UUID
	MarriageID uuid.UUID
	Status     string
	EndDate    time.Time
}

// EstablishHouseInput records a polygamous house.
type EstablishHouseInput struct {
	FamilyID           uuid.UUID
	Order              int
	WifeID             uuid.UUID
	MemberIDs          []uuid.UUID
	AllocationWeight   float64
	Certified          bool
	ConsentEvidenceRef string
}

// DissolveHouseInput moves a house to the dissolved status.
type DissolveHouseInput struct {
	FamilyID uuid.UUID
	HouseID  uuid.UUID
}

// DefineRelationshipInput adds a directed kinship edge.
type DefineRelationshipInput struct {
	FamilyID     uuid.UUID
	FromMemberID uuid.UUID
	ToMemberID   uuid.UUID
	Type         string
	Verification string
	LegalBasis   string
}

// RecordCohabitationInput records a durable partnership.
type RecordCohabitationInput struct {
	FamilyID     uuid.UUID
	Partner1ID   uuid.UUID
	Partner2ID   uuid.UUID
	StartDate    time.Time
	EndDate      *time.Time
	Witnesses    []string
	EvidenceRefs []string
}

// RecordAdoptionInput records an adoption.
type RecordAdoptionInput struct {
	FamilyID         uuid.UUID
	AdoptiveParentID uuid.UUID
	AdopteeID        uuid.UUID
	LegalBasis       string
	CourtOrderNumber string
	ConsentObtained  bool
	AdoptionDate     time.Time
}

// ListFamiliesInput pages through family summaries for one county.
type ListFamiliesInput struct {
	County string
	Limit  int
	Offset int
}

// FamilyUsecase is the application service for mutating and reading
// family records. Every mutation runs inside a transaction, commits
// the aggregate under an optimistic version check, and publishes the
// facts the aggregate recorded.
type FamilyUsecase interface {
	CreateFamily(ctx context.Context, input *CreateFamilyInput) (*FamilyOutput, error)
	GetFamily(ctx context.Context, familyID uuid.UUID) (*FamilyOutput, error)
	ListFamilies(ctx context.Context, input *ListFamiliesInput) ([]*FamilySummaryOutput, error)

	AddMember(ctx context.Context, input *AddMemberInput) (*FamilyOutput, error)
	MarkMemberDeceased(ctx context.Context, input *MarkDeceasedInput) (*FamilyOutput, error)
	RegisterMarriage(ctx context.Context, input *RegisterMarriageInput) (*FamilyOutput, error)
	EndMarriage(ctx context.Context, input *EndMarriageInput) (*FamilyOutput, error)
	EstablishHouse(ctx context.Context, input *EstablishHouseInput) (*FamilyOutput, error)
	DissolveHouse(ctx context.Context, input *DissolveHouseInput) (*FamilyOutput, error)
	DefineRelationship(ctx context.Context, input *DefineRelationshipInput) (*FamilyOutput, error)
	RecordCohabitation(ctx context.Context, input *RecordCohabitationInput) (*FamilyOutput, error)
	RecordAdoption(ctx context.Context, input *RecordAdoptionInput) (*FamilyOutput, error)
	ArchiveFamily(ctx context.Context, familyID uuid.UUID) error
}

// Package model holds the GORM table mappings for the family record
// store. Exported so the GORM Gen tool can reference them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// FamilyModel mirrors the 'families' table and carries the aggregate
// header: identity, status, optimistic version and the denormalized
// counters. Child tables hang off FamilyID.
type FamilyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	County    string    `gorm:"type:varchar(100);index"`
	Status    int16     `gorm:"not null"`
	Version   int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	MemberCount    int
	LivingCount    int
	MinorCount     int
	DependantCount int
	Polygamous     bool

	Members       []MemberModel       `gorm:"foreignKey:FamilyID"`
	Marriages     []MarriageModel     `gorm:"foreignKey:FamilyID"`
	Houses        []HouseModel        `gorm:"foreignKey:FamilyID"`
	Relationships []RelationshipModel `gorm:"foreignKey:FamilyID"`
	Cohabitations []CohabitationModel `gorm:"foreignKey:FamilyID"`
	Adoptions     []AdoptionModel     `gorm:"foreignKey:FamilyID"`
}

// TableName explicitly sets the table name for GORM.
func (FamilyModel) TableName() string {
	return "families"
}

// MemberModel mirrors the 'family_members' table.
type MemberModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key"`
	FamilyID              uuid.UUID `gorm:"type:uuid;index;not null"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	Gender                string    `gorm:"type:varchar(16)"`
	Vital                 int16     `gorm:"not null"`
	BirthDate             *time.Time
	BirthDateEstimated    bool
	DeathDate             *time.Time
	IsMinor               bool
	HasDisability         bool
	MentallyIncapacitated bool
	Identity              int16
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "family_members"
}

// MarriageModel mirrors the 'marriages' table.
type MarriageModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	FamilyID             uuid.UUID `gorm:"type:uuid;index;not null"`
	Spouse1ID            uuid.UUID `gorm:"type:uuid;not null"`
	Spouse2ID            uuid.UUID `gorm:"type:uuid;not null"`
	Type                 int16     `gorm:"not null"`
	Status               int16     `gorm:"not null"`
	MarriageDate         time.Time
	EndDate              *time.Time
	CertificateNumber    string `gorm:"type:varchar(100)"`
	BridePriceDocumented bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (MarriageModel) TableName() string {
	return "marriages"
}

// HouseModel mirrors the 'polygamous_houses' table. The member list is
// stored as a JSON document; houses are small and never queried by
// member.
type HouseModel struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primary_key"`
	FamilyID           uuid.UUID   `gorm:"type:uuid;index;not null"`
	HouseOrder         int         `gorm:"not null"`
	WifeID             uuid.UUID   `gorm:"type:uuid;not null"`
	MemberIDs          []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	Status             int16       `gorm:"not null"`
	AllocationWeight   float64
	Certified          bool
	ConsentEvidenceRef string `gorm:"type:varchar(512)"`
	EstablishedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (HouseModel) TableName() string {
	return "polygamous_houses"
}

// RelationshipModel mirrors the 'family_relationships' table.
type RelationshipModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	FamilyID     uuid.UUID `gorm:"type:uuid;index;not null"`
	FromMemberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_relationship_edge"`
	ToMemberID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_relationship_edge"`
	Type         string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_relationship_edge"`
	Verification int16
	LegalBasis   string `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RelationshipModel) TableName() string {
	return "family_relationships"
}

// CohabitationModel mirrors the 'cohabitation_records' table.
// Witness and evidence lists are JSON documents.
type CohabitationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	FamilyID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Partner1ID   uuid.UUID `gorm:"type:uuid;not null"`
	Partner2ID   uuid.UUID `gorm:"type:uuid;not null"`
	StartDate    time.Time
	EndDate      *time.Time
	Witnesses    []string `gorm:"type:jsonb;serializer:json"`
	EvidenceRefs []string `gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CohabitationModel) TableName() string {
	return "cohabitation_records"
}

// AdoptionModel mirrors the 'adoption_records' table.
type AdoptionModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	FamilyID         uuid.UUID `gorm:"type:uuid;index;not null"`
	AdoptiveParentID uuid.UUID `gorm:"type:uuid;not null"`
	AdopteeID        uuid.UUID `gorm:"type:uuid;not null"`
	LegalBasis       string    `gorm:"type:text"`
	CourtOrderNumber string    `gorm:"type:varchar(100)"`
	ConsentObtained  bool
	AdoptionDate     time.Time
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdoptionModel) TableName() string {
	return "adoption_records"
}

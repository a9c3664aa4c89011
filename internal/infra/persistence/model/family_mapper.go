package model

import (
	"mirathi/internal/domain/entity"
)

// FromFamilySnapshot maps an aggregate snapshot to the table models.
func FromFamilySnapshot(snap *entity.FamilySnapshot) *FamilyModel {
	m := &FamilyModel{
		ID:             snap.ID,
		Name:           snap.Name,
		County:         snap.County,
		Status:         int16(snap.Status),
		Version:        snap.Version,
		CreatedAt:      snap.CreatedAt,
		UpdatedAt:      snap.UpdatedAt,
		MemberCount:    snap.MemberCount,
		LivingCount:    snap.LivingCount,
		MinorCount:     snap.MinorCount,
		DependantCount: snap.DependantCount,
		Polygamous:     snap.Polygamous,
	}

	for _, member := range snap.Members {
		m.Members = append(m.Members, MemberModel{
			ID:                    member.ID,
			FamilyID:              member.FamilyID,
			Name:                  member.Name,
			Gender:                string(member.Gender),
			Vital:                 int16(member.Vital),
			BirthDate:             member.BirthDate,
			BirthDateEstimated:    member.BirthDateEstimated,
			DeathDate:             member.DeathDate,
			IsMinor:               member.IsMinor,
			HasDisability:         member.HasDisability,
			MentallyIncapacitated: member.MentallyIncapacitated,
			Identity:              int16(member.Identity),
			CreatedAt:             member.CreatedAt,
			UpdatedAt:             member.UpdatedAt,
		})
	}
	for _, marriage := range snap.Marriages {
		m.Marriages = append(m.Marriages, MarriageModel{
			ID:                   marriage.ID,
			FamilyID:             marriage.FamilyID,
			Spouse1ID:            marriage.Spouse1ID,
			Spouse2ID:            marriage.Spouse2ID,
			Type:                 int16(marriage.Type),
			Status:               int16(marriage.Status),
			MarriageDate:         marriage.MarriageDate,
			EndDate:              marriage.EndDate,
			CertificateNumber:    marriage.CertificateNumber,
			BridePriceDocumented: marriage.BridePriceDocumented,
			CreatedAt:            marriage.CreatedAt,
			UpdatedAt:            marriage.UpdatedAt,
		})
	}
	for _, house := range snap.Houses {
		m.Houses = append(m.Houses, HouseModel{
			ID:                 house.ID,
			FamilyID:           house.FamilyID,
			HouseOrder:         house.Order,
			WifeID:             house.WifeID,
			MemberIDs:          house.MemberIDs,
			Status:             int16(house.Status),
			AllocationWeight:   house.AllocationWeight,
			Certified:          house.Certified,
			ConsentEvidenceRef: house.ConsentEvidenceRef,
			EstablishedAt:      house.EstablishedAt,
		})
	}
	for _, rel := range snap.Relationships {
		m.Relationships = append(m.Relationships, RelationshipModel{
			ID:           rel.ID,
			FamilyID:     rel.FamilyID,
			FromMemberID: rel.FromMemberID,
			ToMemberID:   rel.ToMemberID,
			Type:         string(rel.Type),
			Verification: int16(rel.Verification),
			LegalBasis:   rel.LegalBasis,
			CreatedAt:    rel.CreatedAt,
		})
	}
	for _, cohab := range snap.Cohabitations {
		m.Cohabitations = append(m.Cohabitations, CohabitationModel{
			ID:           cohab.ID,
			FamilyID:     cohab.FamilyID,
			Partner1ID:   cohab.Partner1ID,
			Partner2ID:   cohab.Partner2ID,
			StartDate:    cohab.StartDate,
			EndDate:      cohab.EndDate,
			Witnesses:    cohab.Witnesses,
			EvidenceRefs: cohab.EvidenceRefs,
			CreatedAt:    cohab.CreatedAt,
		})
	}
	for _, adoption := range snap.Adoptions {
		m.Adoptions = append(m.Adoptions, AdoptionModel{
			ID:               adoption.ID,
			FamilyID:         adoption.FamilyID,
			AdoptiveParentID: adoption.AdoptiveParentID,
			AdopteeID:        adoption.AdopteeID,
			LegalBasis:       adoption.LegalBasis,
			CourtOrderNumber: adoption.CourtOrderNumber,
			ConsentObtained:  adoption.ConsentObtained,
			AdoptionDate:     adoption.AdoptionDate,
			CreatedAt:        adoption.CreatedAt,
		})
	}

	return m
}

// ToSnapshot maps the table models back to an aggregate snapshot.
func (m *FamilyModel) ToSnapshot() *entity.FamilySnapshot {
	snap := &entity.FamilySnapshot{
		ID:             m.ID,
		Name:           m.Name,
		County:         m.County,
		Status:         entity.FamilyStatus(m.Status),
		Version:        m.Version,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		MemberCount:    m.MemberCount,
		LivingCount:    m.LivingCount,
		MinorCount:     m.MinorCount,
		DependantCount: m.DependantCount,
		Polygamous:     m.Polygamous,
	}

	for i := range m.Members {
		member := &m.Members[i]
		snap.Members = append(snap.Members, &entity.Member{
			ID:                    member.ID,
			FamilyID:              member.FamilyID,
			Name:                  member.Name,
			Gender:                entity.Gender(member.Gender),
			Vital:                 entity.VitalStatus(member.Vital),
			BirthDate:             member.BirthDate,
			BirthDateEstimated:    member.BirthDateEstimated,
			DeathDate:             member.DeathDate,
			IsMinor:               member.IsMinor,
			HasDisability:         member.HasDisability,
			MentallyIncapacitated: member.MentallyIncapacitated,
			Identity:              entity.IdentityVerification(member.Identity),
			CreatedAt:             member.CreatedAt,
			UpdatedAt:             member.UpdatedAt,
		})
	}
	for i := range m.Marriages {
		marriage := &m.Marriages[i]
		snap.Marriages = append(snap.Marriages, &entity.Marriage{
			ID:                   marriage.ID,
			FamilyID:             marriage.FamilyID,
			Spouse1ID:            marriage.Spouse1ID,
			Spouse2ID:            marriage.Spouse2ID,
			Type:                 entity.MarriageType(marriage.Type),
			Status:               entity.MarriageStatus(marriage.Status),
			MarriageDate:         marriage.MarriageDate,
			EndDate:              marriage.EndDate,
			CertificateNumber:    marriage.CertificateNumber,
			BridePriceDocumented: marriage.BridePriceDocumented,
			CreatedAt:            marriage.CreatedAt,
			UpdatedAt:            marriage.UpdatedAt,
		})
	}
	for i := range m.Houses {
		house := &m.Houses[i]
		snap.Houses = append(snap.Houses, &entity.PolygamousHouse{
			ID:                 house.ID,
			FamilyID:           house.FamilyID,
			Order:              house.HouseOrder,
			WifeID:             house.WifeID,
			MemberIDs:          house.MemberIDs,
			Status:             entity.HouseStatus(house.Status),
			AllocationWeight:   house.AllocationWeight,
			Certified:          house.Certified,
			ConsentEvidenceRef: house.ConsentEvidenceRef,
			EstablishedAt:      house.EstablishedAt,
		})
	}
	for i := range m.Relationships {
		rel := &m.Relationships[i]
		snap.Relationships = append(snap.Relationships, &entity.FamilyRelationship{
			ID:           rel.ID,
			FamilyID:     rel.FamilyID,
			FromMemberID: rel.FromMemberID,
			ToMemberID:   rel.ToMemberID,
			Type:         entity.RelationshipType(rel.Type),
			Verification: entity.VerificationLevel(rel.Verification),
			LegalBasis:   rel.LegalBasis,
			CreatedAt:    rel.CreatedAt,
		})
	}
	for i := range m.Cohabitations {
		cohab := &m.Cohabitations[i]
		snap.Cohabitations = append(snap.Cohabitations, &entity.CohabitationRecord{
			ID:           cohab.ID,
			FamilyID:     cohab.FamilyID,
			Partner1ID:   cohab.Partner1ID,
			Partner2ID:   cohab.Partner2ID,
			StartDate:    cohab.StartDate,
			EndDate:      cohab.EndDate,
			Witnesses:    cohab.Witnesses,
			EvidenceRefs: cohab.EvidenceRefs,
			CreatedAt:    cohab.CreatedAt,
		})
	}
	for i := range m.Adoptions {
		adoption := &m.Adoptions[i]
		snap.Adoptions = append(snap.Adoptions, &entity.AdoptionRecord{
			ID:               adoption.ID,
			FamilyID:         adoption.FamilyID,
			AdoptiveParentID: adoption.AdoptiveParentID,
			AdopteeID:        adoption.AdopteeID,
			LegalBasis:       adoption.LegalBasis,
			CourtOrderNumber: adoption.CourtOrderNumber,
			ConsentObtained:  adoption.ConsentObtained,
			AdoptionDate:     adoption.AdoptionDate,
			CreatedAt:        adoption.CreatedAt,
		})
	}

	return snap
}

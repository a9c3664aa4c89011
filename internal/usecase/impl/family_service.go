// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"mirathi/internal/domain/entity"
	domainerrors "mirathi/internal/domain/errors"
	"mirathi/internal/domain/repository"
	"mirathi/internal/domain/service"
	"mirathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// familyService implements the FamilyUsecase interface.
type familyService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewFamilyService is the constructor for familyService.
func NewFamilyService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.FamilyUsecase {
	return &familyService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateFamily opens a new family record, optionally seeded with a
// founding member.
func (srv *familyService) CreateFamily(ctx context.Context, input *usecase.CreateFamilyInput) (*usecase.FamilyOutput, error) {
	srv.logger.Info("Creating family record", "name", input.Name, "county", input.County)

	var founder *entity.Member
	if input.Founder != nil {
		founder = newMemberFromInput(uuid.Nil, input.Founder)
	}

	family, err := entity.NewFamily(input.Name, input.County, founder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create family")
	}

	facts := family.DrainEvents()
	advisories := family.DrainAdvisories()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		familyRepo := repoFactory.NewFamilyRepository()

		if err := familyRepo.Create(ctx, family); err != nil {
			return errors.Wrap(err, "failed to persist family")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create family")
	}

	srv.publishFacts(ctx, facts)
	srv.logAdvisories(family.ID(), advisories)

	return usecase.NewFamilyOutput(family.Snapshot()), nil
}

// GetFamily returns the full read model for one family.
func (srv *familyService) GetFamily(ctx context.Context, familyID uuid.UUID) (*usecase.FamilyOutput, error) {
	srv.logger.Debug("Getting family record", "familyID", familyID)

	var out *usecase.FamilyOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		family, err := srv.loadFamily(ctx, repoFactory, familyID)
		if err != nil {
			return err
		}
		out = usecase.NewFamilyOutput(family.Snapshot())

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get family")
	}

	return out, nil
}

// ListFamilies pages through summaries for one registry county.
func (srv *familyService) ListFamilies(ctx context.Context, input *usecase.ListFamiliesInput) ([]*usecase.FamilySummaryOutput, error) {
	srv.logger.Debug("Listing family records", "county", input.County)

	var out []*usecase.FamilySummaryOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		familyRepo := repoFactory.NewFamilyRepository()

		snaps, err := familyRepo.ListByCounty(ctx, input.County, input.Limit, input.Offset)
		if err != nil {
			return errors.Wrap(err, "failed to list families")
		}
		for _, snap := range snaps {
			out = append(out, usecase.NewFamilySummaryOutput(snap))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list families")
	}

	return out, nil
}

// AddMember attaches a member to an existing family.
func (srv *familyService) AddMember(ctx context.Context, input *usecase.AddMemberInput) (*usecase.FamilyOutput, error) {
	srv.logger.Info("Adding family member", "familyID", input.FamilyID, "name", input.Member.Name)

	return srv.commit(ctx, input.FamilyID, "add member", func(family *entity.Family) error {
		return family.AddMember(newMemberFromInput(family.ID(), &input.Member))
	})
}

// MarkMemberDeceased records a member's death.
func (srv *familyService) MarkMemberDeceased(ctx context.Context, input *usecase.MarkDeceasedInput) (*usecase.FamilyOutput, error) {
	srv.logger.Info("Marking member deceased", "familyID", input.FamilyID, "memberID", input.MemberID)

	return srv.commit(ctx, input.FamilyID, "mark member deceased", func(family *entity.Family) error {
		return family.MarkMemberDeceased(input.MemberID, input.DeathDate)
	})
}

// RegisterMarriage registers a union between two recorded members.
func (srv *familyService) RegisterMarriage(ctx context.Context, input *usecase.RegisterMarriageInput) (*usecase.FamilyOutput, error) {
	srv.logger.Info("Registering marriage", "familyID", input.FamilyID)

	marriageType, err := entity.ParseMarriageType(input.Type)
	if err != nil {
		return nil, err
	}

	return srv.commit(ctx, input.FamilyID, "register marriage", func(family *entity.Family) error {
		return family.RegisterMarriage(&entity.Marriage{
			ID:                   uuid.New(),
			FamilyID:             family.ID(),
			Spouse1ID:            input.Spouse1ID,
			Spouse2ID:            input.Spouse2ID,
			Type:                 marriageType,
			Status:               entity.StatusMarried,
			MarriageDate:         input.MarriageDate,
			CertificateNumber:    input.CertificateNumber,
			BridePriceDocumented: input.BridePriceDocumented,
		})
	})
}

// EndMarriage moves a marriage to a terminated or separated status.
func (srv *familyService) EndMarriage(ctx context.Context, input *usecase.EndMarriageInput) (*usecase.FamilyOutput, error) {
	srv.logger.Info("Ending marriage", "familyID", input.FamilyID, "marriageID", input.MarriageID)

	status, err := entity.ParseMarriageStatus(input.Status)
	if err != nil {
		return nil, err
	}

	return srv.commit(ctx, input.FamilyID, "end marriage", func(family *entity.Family) error {
		return family.EndMarriage(input.MarriageID, status, input.EndDate)
	})
}

// EstablishHouse records a polygamous house.
func (srv *familyService) EstablishHouse(ctx context.Context, input *usecase.EstablishHouseInput) (*usecase.FamilyOutput, error) {
	srv.logger.Info("Establishing house", "familyID", input.FamilyID, "order", input.Order)

	return srv.commit(ctx, input.FamilyID, "establish house", func(family *entity.Family) error {
		return family.EstablishHouse(&entity.PolygamousHouse{
			ID:                 uuid.New(),
			FamilyID:           family.ID(),
			Order:              input.Order,
			WifeID:             input.WifeID,
			MemberIDs:          input.MemberIDs,
			Status:             entity.HouseActive,
			AllocationWeight:   input.AllocationWeight,
			Certified:          input.Certified,
			ConsentEvidenceRef: input.ConsentEvidenceRef,
		})
	})
}

// DissolveHouse moves a house to the dissolved status.
func (srv *familyService) DissolveHouse(ctx context.Context, input *usecase.DissolveHouseInput) (*usecase.FamilyOutput, error) {
	srv.logger.Info("Dissolving house", "familyID", input.FamilyID, "houseID", input.HouseID)

	return srv.commit(ctx, input.FamilyID, "dissolve house", func(family *entity.Family) error {
		return family.DissolveHouse(input.HouseID)
	})
}

// DefineRelationship adds a directed kinship edge.
func (srv *familyService) DefineRelationship(ctx context.Context, input *usecase.DefineRelationshipInput) (*usecase.FamilyOutput, error) {
	srv.logger.Info("Defining relationship", "familyID", input.FamilyID, "type", input.Type)

	relType, err := entity.ParseRelationshipType(input.Type)
	if err != nil {
		return nil, err
	}
	verification, err := entity.ParseVerificationLevel(input.Verification)
	if err != nil {
		return nil, err
	}

	return srv.commit(ctx, input.FamilyID, "define relationship", func(family *entity.Family) error {
		return family.DefineRelationship(&entity.FamilyRelationship{
			ID:           uuid.New(),
			FamilyID:     family.ID(),
			FromMemberID: input.FromMemberID,
			ToMemberID:   input.ToMemberID,
			Type:         relType,
			Verification: verification,
			LegalBasis:   input.LegalBasis,
		})
	})
}

// RecordCohabitation records a durable partnership.
func (srv *familyService) RecordCohabitation(ctx context.Context, input *usecase.RecordCohabitationInput) (*usecase.FamilyOutput, error) {
	srv.logger.Info("Recording cohabitation", "familyID", input.FamilyID)

	return srv.commit(ctx, input.FamilyID, "record cohabitation", func(family *entity.Family) error {
		return family.RecordCohabitation(&entity.CohabitationRecord{
			ID:           uuid.New(),
			FamilyID:     family.ID(),
			Partner1ID:   input.Partner1ID,
			Partner2ID:   input.Partner2ID,
			StartDate:    input.StartDate,
			EndDate:      input.EndDate,
			Witnesses:    input.Witnesses,
			EvidenceRefs: input.EvidenceRefs,
		})
	})
}

// RecordAdoption records an adoption and its certified parent edge.
func (srv *familyService) RecordAdoption(ctx context.Context, input *usecase.RecordAdoptionInput) (*usecase.FamilyOutput, error) {
	srv.logger.Info("Recording adoption", "familyID", input.FamilyID)

	return srv.commit(ctx, input.FamilyID, "record adoption", func(family *entity.Family) error {
		return family.RecordAdoption(&entity.AdoptionRecord{
			ID:               uuid.New(),
			FamilyID:         family.ID(),
			AdoptiveParentID: input.AdoptiveParentID,
			AdopteeID:        input.AdopteeID,
			LegalBasis:       input.LegalBasis,
			CourtOrderNumber: input.CourtOrderNumber,
			ConsentObtained:  input.ConsentObtained,
			AdoptionDate:     input.AdoptionDate,
		})
	})
}

// ArchiveFamily soft-terminates a family record.
func (srv *familyService) ArchiveFamily(ctx context.Context, familyID uuid.UUID) error {
	srv.logger.Info("Archiving family record", "familyID", familyID)

	_, err := srv.commit(ctx, familyID, "archive family", func(family *entity.Family) error {
		return family.Archive()
	})

	return err
}

// commit is the shared mutation path: load the aggregate inside a
// transaction, apply the mutation, persist under the optimistic
// version check, then publish the drained facts after the transaction
// commits. Facts are never published for a rolled-back mutation.
func (srv *familyService) commit(
	ctx context.Context,
	familyID uuid.UUID,
	op string,
	mutate func(family *entity.Family) error,
) (*usecase.FamilyOutput, error) {
	var (
		out        *usecase.FamilyOutput
		facts      []entity.FamilyEvent
		advisories []string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		familyRepo := repoFactory.NewFamilyRepository()

		family, err := srv.loadFamily(ctx, repoFactory, familyID)
		if err != nil {
			return err
		}

		loadedVersion := family.Version()

		if err := mutate(family); err != nil {
			return err
		}

		// An idempotent no-op leaves the version untouched; there is
		// nothing to persist.
		if family.Version() != loadedVersion {
			if err := familyRepo.Update(ctx, family); err != nil {
				if errors.Is(err, repository.ErrVersionConflict) {
					return errors.Wrap(domainerrors.ErrVersionConflict, "family was modified concurrently")
				}

				return errors.Wrap(err, "failed to persist family")
			}
		}

		out = usecase.NewFamilyOutput(family.Snapshot())
		facts = family.DrainEvents()
		advisories = family.DrainAdvisories()

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s", op)
	}

	srv.publishFacts(ctx, facts)
	srv.logAdvisories(familyID, advisories)

	return out, nil
}

func (srv *familyService) loadFamily(ctx context.Context, repoFactory repository.RepositoryFactory, familyID uuid.UUID) (*entity.Family, error) {
	family, err := repoFactory.NewFamilyRepository().FindByID(ctx, familyID)
	if err != nil {
		if errors.Is(err, repository.ErrFamilyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFamilyNotFound, familyID.String())
		}

		return nil, errors.Wrap(err, "failed to find family")
	}

	return family, nil
}

// publishFacts delivers committed facts best-effort. Delivery failure
// is logged, not surfaced: the mutation already committed and the
// audit consumers reconcile from storage.
func (srv *familyService) publishFacts(ctx context.Context, facts []entity.FamilyEvent) {
	for _, fact := range facts {
		err := srv.publisher.PublishFamilyFact(ctx, &service.FamilyFact{
			FamilyID:   fact.FamilyID,
			EntityID:   fact.EntityID,
			Name:       string(fact.Name),
			OccurredAt: fact.OccurredAt,
		})
		if err != nil {
			srv.logger.Error("Failed to publish family fact",
				"familyID", fact.FamilyID, "fact", fact.Name, "error", err)
		}
	}
}

func (srv *familyService) logAdvisories(familyID uuid.UUID, advisories []string) {
	for _, note := range advisories {
		srv.logger.Warn("Family record advisory", "familyID", familyID, "advisory", note)
	}
}

func newMemberFromInput(familyID uuid.UUID, input *usecase.MemberInput) *entity.Member {
	identity := entity.IdentityUnverified
	if input.IdentityVerified {
		identity = entity.IdentityVerified
	}

	return &entity.Member{
		ID:                    uuid.New(),
		FamilyID:              familyID,
		Name:                  input.Name,
		Gender:                entity.Gender(input.Gender),
		Vital:                 entity.VitalAlive,
		BirthDate:             input.BirthDate,
		BirthDateEstimated:    input.BirthDateEstimated,
		IsMinor:               input.IsMinor,
		HasDisability:         input.HasDisability,
		MentallyIncapacitated: input.MentallyIncapacitated,
		Identity:              identity,
	}
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"mirathi/internal/domain/analysis"
	"mirathi/internal/domain/entity"
	domainerrors "mirathi/internal/domain/errors"
	"mirathi/internal/domain/repository"
	"mirathi/internal/domain/service"
	"mirathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	txManager     repository.TransactionManager
	qrService     service.QRCodeService
	timelineLimit int
	logger        *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	txManager repository.TransactionManager,
	qrService service.QRCodeService,
	timelineLimit int,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		txManager:     txManager,
		qrService:     qrService,
		timelineLimit: timelineLimit,
		logger:        logger,
	}
}

// GetDashboard composes the read-only projection for one family.
func (srv *dashboardService) GetDashboard(ctx context.Context, familyID uuid.UUID) (*analysis.Dashboard, error) {
	srv.logger.Debug("Building family dashboard", "familyID", familyID)

	snap, err := srv.loadSnapshot(ctx, familyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build dashboard")
	}

	dashboard := analysis.BuildDashboard(snap, srv.timelineLimit, time.Now())

	return &dashboard, nil
}

// GetClassification returns the structural summary alone.
func (srv *dashboardService) GetClassification(ctx context.Context, familyID uuid.UUID) (*analysis.Classification, error) {
	snap, err := srv.loadSnapshot(ctx, familyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to classify family")
	}

	classification := analysis.Classify(snap)

	return &classification, nil
}

// GetHealth returns the data-quality indicators alone.
func (srv *dashboardService) GetHealth(ctx context.Context, familyID uuid.UUID) (*analysis.Health, error) {
	snap, err := srv.loadSnapshot(ctx, familyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate family health")
	}

	health := analysis.Evaluate(snap)

	return &health, nil
}

// GetReadiness returns the succession-readiness assessment alone.
func (srv *dashboardService) GetReadiness(ctx context.Context, familyID uuid.UUID) (*analysis.Readiness, error) {
	snap, err := srv.loadSnapshot(ctx, familyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to assess readiness")
	}

	readiness := analysis.AssessReadiness(snap, time.Now())

	return &readiness, nil
}

func (srv *dashboardService) loadSnapshot(ctx context.Context, familyID uuid.UUID) (*entity.FamilySnapshot, error) {
	var snap *entity.FamilySnapshot

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		family, err := repoFactory.NewFamilyRepository().FindByID(ctx, familyID)
		if err != nil {
			if errors.Is(err, repository.ErrFamilyNotFound) {
				return errors.Wrap(domainerrors.ErrFamilyNotFound, familyID.String())
			}

			return errors.Wrap(err, "failed to find family")
		}

		snap = family.Snapshot()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// GenerateExtractQR renders the QR code printed on record extracts.
// The family must exist; the code itself only embeds the family ID.
func (srv *dashboardService) GenerateExtractQR(ctx context.Context, familyID uuid.UUID) ([]byte, error) {
	srv.logger.Debug("Generating extract QR", "familyID", familyID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewFamilyRepository().FindByID(ctx, familyID); err != nil {
			if errors.Is(err, repository.ErrFamilyNotFound) {
				return errors.Wrap(domainerrors.ErrFamilyNotFound, familyID.String())
			}

			return errors.Wrap(err, "failed to find family")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate extract QR")
	}

	png, err := srv.qrService.GenerateExtractQR(familyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate extract QR")
	}

	return png, nil
}

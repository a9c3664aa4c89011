package impl

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"mirathi/internal/domain/analysis"
	domainerrors "mirathi/internal/domain/errors"
	"mirathi/internal/infra/persistence/memory"
	"mirathi/internal/infra/qrcode"
	"mirathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardTestServices(t *testing.T) (usecase.FamilyUsecase, usecase.DashboardUsecase) {
	t.Helper()

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	logger := slog.New(slog.DiscardHandler)

	familySvc := NewFamilyService(txManager, &capturingPublisher{}, logger)
	dashboardSvc := NewDashboardService(txManager, qrcode.NewQRCodeService(256, "M"), 5, logger)

	return familySvc, dashboardSvc
}

func TestDashboardService_GetDashboard(t *testing.T) {
	familySvc, dashboardSvc := newDashboardTestServices(t)
	ctx := context.Background()

	family := createFamily(t, familySvc)
	addMember(t, familySvc, family.ID, "Otieno", false)
	addMember(t, familySvc, family.ID, "Junior", true)

	d, err := dashboardSvc.GetDashboard(ctx, family.ID)
	require.NoError(t, err)

	assert.Equal(t, family.ID, d.FamilyID)
	assert.Equal(t, "Omondi", d.FamilyName)
	assert.Equal(t, 3, d.MemberCount)
	assert.Equal(t, 1, d.MinorCount)
	assert.Equal(t, analysis.PolygamyNone, d.Classification.PolygamyTier)
	assert.NotEmpty(t, d.Timeline)
	assert.LessOrEqual(t, len(d.Timeline), 5)
}

func TestDashboardService_GetDashboard_NotFound(t *testing.T) {
	_, dashboardSvc := newDashboardTestServices(t)

	_, err := dashboardSvc.GetDashboard(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFamilyNotFound))
}

func TestDashboardService_StandaloneReads(t *testing.T) {
	familySvc, dashboardSvc := newDashboardTestServices(t)
	ctx := context.Background()

	family := createFamily(t, familySvc)
	addMember(t, familySvc, family.ID, "Otieno", false)

	classification, err := dashboardSvc.GetClassification(ctx, family.ID)
	require.NoError(t, err)
	assert.Equal(t, analysis.PolygamyNone, classification.PolygamyTier)
	assert.False(t, classification.RegimePermitsPolygamy)

	health, err := dashboardSvc.GetHealth(ctx, family.ID)
	require.NoError(t, err)
	assert.Positive(t, health.CompletenessScore)

	readiness, err := dashboardSvc.GetReadiness(ctx, family.ID)
	require.NoError(t, err)
	assert.Equal(t, analysis.Ready, readiness.DependencyClaims)
	assert.Equal(t, analysis.NotReady, readiness.LegalClarity)
	assert.NotEmpty(t, readiness.MissingElements)

	_, err = dashboardSvc.GetClassification(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFamilyNotFound))
}

func TestDashboardService_GenerateExtractQR(t *testing.T) {
	familySvc, dashboardSvc := newDashboardTestServices(t)
	ctx := context.Background()

	family := createFamily(t, familySvc)

	png, err := dashboardSvc.GenerateExtractQR(ctx, family.ID)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])

	_, err = dashboardSvc.GenerateExtractQR(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFamilyNotFound))
}

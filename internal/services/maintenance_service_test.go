package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/listview"
	"github.com/dwellfront/dashboard-service/internal/middleware"
	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/repositories"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

func listConfigAll() listview.Config {
	return listview.Config{}
}

func newMaintenanceFixture(t *testing.T) (*MaintenanceService, repositories.MaintenanceRepository) {
	t.Helper()
	repo := repositories.NewMaintenanceRepository()
	svc := NewMaintenanceService(repo, NewExportService(t.TempDir()))
	return svc, repo
}

func seedRequests(t *testing.T, repo repositories.MaintenanceRepository, statuses []models.RequestStatusType) []*models.MaintenanceRequest {
	t.Helper()
	out := make([]*models.MaintenanceRequest, 0, len(statuses))
	for i, st := range statuses {
		m := &models.MaintenanceRequest{
			PropertyID:    uuid.New(),
			UnitNumber:    "1A",
			TenantID:      uuid.New(),
			Title:         "request",
			Category:      models.RequestCategoryGeneral,
			Priority:      models.RequestPriorityMedium,
			Status:        st,
			EstimatedCost: "$100.00",
		}
		m.ID = uuid.New()
		require.NoError(t, repo.Create(context.Background(), m), "record %d", i)
		out = append(out, m)
	}
	return out
}

func TestStatsPartitionsByStatus(t *testing.T) {
	svc, repo := newMaintenanceFixture(t)
	seedRequests(t, repo, []models.RequestStatusType{
		models.RequestStatusOpen,
		models.RequestStatusOpen,
		models.RequestStatusInProgress,
		models.RequestStatusCompleted,
		models.RequestStatusPending,
	})

	stats, err := svc.Stats(context.Background(), uuid.New(), middleware.RolePropertyManager)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalRequests)
	assert.Equal(t, 2, stats.ByStatus.Counts["OPEN"])
	assert.Equal(t, 1, stats.ByStatus.Counts["IN_PROGRESS"])
	assert.Equal(t, 1, stats.ByStatus.Counts["COMPLETED"])
	assert.Equal(t, 1, stats.ByStatus.Counts["PENDING"])
	assert.Equal(t, 0, stats.ByStatus.Counts["CANCELED"])
	assert.Equal(t, 0, stats.ByStatus.Other)
	assert.InDelta(t, 500.0, stats.TotalEstimatedCost, 0.001)
	assert.InDelta(t, 20.0, stats.CompletionRate, 0.001)
}

func TestStatsReflectStatusChange(t *testing.T) {
	svc, repo := newMaintenanceFixture(t)
	records := seedRequests(t, repo, []models.RequestStatusType{
		models.RequestStatusOpen,
		models.RequestStatusOpen,
		models.RequestStatusInProgress,
		models.RequestStatusCompleted,
		models.RequestStatusPending,
	})

	// complete the in-progress request
	_, err := svc.SetStatus(context.Background(), records[2].ID, models.RequestStatusCompleted)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background(), uuid.New(), middleware.RolePropertyManager)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.ByStatus.Counts["OPEN"])
	assert.Equal(t, 0, stats.ByStatus.Counts["IN_PROGRESS"])
	assert.Equal(t, 2, stats.ByStatus.Counts["COMPLETED"])
	assert.Equal(t, 1, stats.ByStatus.Counts["PENDING"])
	assert.Equal(t, 5, stats.TotalRequests)
}

func TestSetStatusRejectsIllegalTransition(t *testing.T) {
	svc, repo := newMaintenanceFixture(t)
	records := seedRequests(t, repo, []models.RequestStatusType{models.RequestStatusCompleted})

	_, err := svc.SetStatus(context.Background(), records[0].ID, models.RequestStatusOpen)
	require.ErrorIs(t, err, utils.ErrInvalidTransition)

	got, err := repo.GetByID(context.Background(), records[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, got.Status)
}

func TestSetStatusUnknownIDReportsNotFound(t *testing.T) {
	svc, _ := newMaintenanceFixture(t)

	_, err := svc.SetStatus(context.Background(), uuid.New(), models.RequestStatusOpen)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestTenantScopingOnListAndStats(t *testing.T) {
	svc, repo := newMaintenanceFixture(t)
	ctx := context.Background()

	tenantID := uuid.New()
	mine := &models.MaintenanceRequest{
		PropertyID: uuid.New(), UnitNumber: "2B", TenantID: tenantID,
		Title: "mine", Category: models.RequestCategoryGeneral,
		Priority: models.RequestPriorityLow, Status: models.RequestStatusOpen,
	}
	mine.ID = uuid.New()
	require.NoError(t, repo.Create(ctx, mine))
	seedRequests(t, repo, []models.RequestStatusType{models.RequestStatusOpen, models.RequestStatusPending})

	list, err := svc.List(ctx, tenantID, middleware.RoleTenant, listConfigAll())
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "mine", list.Results[0].Title)

	stats, err := svc.Stats(ctx, tenantID, middleware.RoleTenant)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRequests)

	all, err := svc.List(ctx, uuid.New(), middleware.RoleLandlord, listConfigAll())
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
}

func TestCreateAssignsIDAndPendingStatus(t *testing.T) {
	svc, _ := newMaintenanceFixture(t)
	tenantID := uuid.New()

	created, err := svc.Create(context.Background(), tenantID, middleware.RoleTenant, dtos.CreateMaintenanceRequest{
		PropertyID: uuid.New(),
		UnitNumber: "3C",
		Title:      "No hot water",
		Category:   "PLUMBING",
		Priority:   "HIGH",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.RequestStatusPending, created.Status)
	assert.Equal(t, tenantID, created.TenantID)
	assert.EqualValues(t, 1, created.GetRowVersion())
}

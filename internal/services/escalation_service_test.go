package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/repositories"
)

func TestEscalationFlagsOnlyStaleActiveRequests(t *testing.T) {
	repo := repositories.NewMaintenanceRepository()
	ctx := context.Background()

	statuses := []models.RequestStatusType{
		models.RequestStatusOpen,       // stale, should flag
		models.RequestStatusInProgress, // stale, should flag
		models.RequestStatusCompleted,  // stale but terminal
		models.RequestStatusOpen,       // fresh
	}
	var ids []uuid.UUID
	for _, st := range statuses {
		m := &models.MaintenanceRequest{
			PropertyID: uuid.New(), UnitNumber: "1A", Title: "r",
			Category: models.RequestCategoryGeneral,
			Priority: models.RequestPriorityMedium, Status: st,
		}
		m.ID = uuid.New()
		require.NoError(t, repo.Create(ctx, m))
		ids = append(ids, m.ID)
	}

	svc := NewEscalationService(repo, 72*time.Hour)
	// everything but the last record was created "four days ago"
	now := time.Now().UTC()
	svc.now = func() time.Time { return now }
	for _, id := range ids[:3] {
		require.NoError(t, repo.UpdateWithRetry(ctx, id, func(m *models.MaintenanceRequest) error {
			m.CreatedAt = now.Add(-96 * time.Hour)
			return nil
		}))
	}

	flagged, err := svc.RunEscalationCheck(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, flagged)

	for i, id := range ids {
		m, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		wantFlag := i == 0 || i == 1
		assert.Equal(t, wantFlag, m.FlaggedForReview, "record %d", i)
	}
}

func TestEscalationIsIdempotentAcrossRuns(t *testing.T) {
	repo := repositories.NewMaintenanceRepository()
	ctx := context.Background()

	m := &models.MaintenanceRequest{
		PropertyID: uuid.New(), UnitNumber: "1A", Title: "stale",
		Category: models.RequestCategoryGeneral,
		Priority: models.RequestPriorityHigh, Status: models.RequestStatusOpen,
	}
	m.ID = uuid.New()
	require.NoError(t, repo.Create(ctx, m))
	require.NoError(t, repo.UpdateWithRetry(ctx, m.ID, func(cur *models.MaintenanceRequest) error {
		cur.CreatedAt = time.Now().UTC().Add(-200 * time.Hour)
		return nil
	}))

	svc := NewEscalationService(repo, 72*time.Hour)

	first, err := svc.RunEscalationCheck(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := svc.RunEscalationCheck(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second)
}

package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

func newRequest(title string) *models.MaintenanceRequest {
	m := &models.MaintenanceRequest{
		PropertyID: uuid.New(),
		UnitNumber: "1A",
		Title:      title,
		Category:   models.RequestCategoryGeneral,
		Priority:   models.RequestPriorityMedium,
		Status:     models.RequestStatusPending,
	}
	m.ID = uuid.New()
	return m
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	col := NewCollection[*models.MaintenanceRequest]()
	ctx := context.Background()

	m := newRequest("Leaky faucet")
	require.NoError(t, col.Create(ctx, m))

	assert.EqualValues(t, 1, m.GetRowVersion())
	assert.False(t, m.CreatedAt.IsZero())

	got, err := col.GetByID(ctx, m.GetID())
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestReadsReturnClones(t *testing.T) {
	col := NewCollection[*models.MaintenanceRequest]()
	ctx := context.Background()

	m := newRequest("Leaky faucet")
	require.NoError(t, col.Create(ctx, m))

	got, err := col.GetByID(ctx, m.GetID())
	require.NoError(t, err)
	got.Title = "scribbled over"

	again, err := col.GetByID(ctx, m.GetID())
	require.NoError(t, err)
	assert.Equal(t, "Leaky faucet", again.Title)
}

func TestCreateDuplicateIDRejected(t *testing.T) {
	col := NewCollection[*models.MaintenanceRequest]()
	ctx := context.Background()

	m := newRequest("first")
	require.NoError(t, col.Create(ctx, m))

	dup := m.Clone()
	dup.Title = "second"
	err := col.Create(ctx, dup)
	require.ErrorIs(t, err, utils.ErrDuplicateID)
	assert.Equal(t, 1, col.Len())
}

func TestListPreservesInsertionOrder(t *testing.T) {
	col := NewCollection[*models.MaintenanceRequest]()
	ctx := context.Background()

	titles := []string{"a", "b", "c", "d"}
	for _, title := range titles {
		require.NoError(t, col.Create(ctx, newRequest(title)))
	}

	all, err := col.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(titles))
	for i, m := range all {
		assert.Equal(t, titles[i], m.Title)
	}
}

func TestGetMissingIDFails(t *testing.T) {
	col := NewCollection[*models.MaintenanceRequest]()
	_, err := col.GetByID(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestUpdateBumpsRowVersion(t *testing.T) {
	col := NewCollection[*models.MaintenanceRequest]()
	ctx := context.Background()

	m := newRequest("v1")
	require.NoError(t, col.Create(ctx, m))

	m.Title = "v2"
	require.NoError(t, col.Update(ctx, m))
	assert.EqualValues(t, 2, m.GetRowVersion())

	got, err := col.GetByID(ctx, m.GetID())
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Title)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestUpdateIfVersionDetectsConflict(t *testing.T) {
	col := NewCollection[*models.MaintenanceRequest]()
	ctx := context.Background()

	m := newRequest("contested")
	require.NoError(t, col.Create(ctx, m))

	stale, err := col.GetByID(ctx, m.GetID())
	require.NoError(t, err)

	m.Title = "winner"
	require.NoError(t, col.Update(ctx, m))

	stale.Title = "loser"
	err = col.UpdateIfVersion(ctx, stale, 1)
	require.ErrorIs(t, err, utils.ErrRowVersionConflict)

	got, err := col.GetByID(ctx, m.GetID())
	require.NoError(t, err)
	assert.Equal(t, "winner", got.Title)
}

func TestUpdateWithRetryUnderContention(t *testing.T) {
	col := NewCollection[*models.MaintenanceRequest]()
	ctx := context.Background()

	m := newRequest("counter")
	require.NoError(t, col.Create(ctx, m))

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = col.UpdateWithRetry(ctx, m.GetID(), func(cur *models.MaintenanceRequest) error {
				cur.Title = cur.Title + "."
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := col.GetByID(ctx, m.GetID())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.GetRowVersion(), int64(2))
}

func TestDeleteMissingIDReportsNotFound(t *testing.T) {
	col := NewCollection[*models.MaintenanceRequest]()
	ctx := context.Background()

	m := newRequest("doomed")
	require.NoError(t, col.Create(ctx, m))
	require.NoError(t, col.Delete(ctx, m.GetID()))

	// second delete of the same id is an error, not a no-op
	err := col.Delete(ctx, m.GetID())
	require.ErrorIs(t, err, utils.ErrNotFound)
	assert.Equal(t, 0, col.Len())
}

func TestCanceledContextShortCircuits(t *testing.T) {
	col := NewCollection[*models.MaintenanceRequest]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := col.Create(ctx, newRequest("never stored"))
	require.ErrorIs(t, err, context.Canceled)

	_, err = col.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

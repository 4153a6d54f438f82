package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/repositories"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

func newReviewFixture(t *testing.T) *ReviewService {
	t.Helper()
	return NewReviewService(repositories.NewReviewRepository(), NewExportService(t.TempDir()))
}

func createReview(t *testing.T, svc *ReviewService, rating int) *models.Review {
	t.Helper()
	rv, err := svc.Create(context.Background(), uuid.New(), "Demo Tenant", dtos.CreateReviewRequest{
		PropertyID: uuid.New(),
		Rating:     rating,
		Title:      "title",
		Comment:    "comment",
	})
	require.NoError(t, err)
	return rv
}

func TestRespondMovesReviewToResponded(t *testing.T) {
	svc := newReviewFixture(t)
	rv := createReview(t, svc, 4)
	managerID := uuid.New()

	updated, err := svc.Respond(context.Background(), rv.ID, managerID, "Thanks for the feedback!")
	require.NoError(t, err)

	assert.Equal(t, models.ReviewStatusResponded, updated.Status)
	assert.Equal(t, "Thanks for the feedback!", updated.Response)
	require.NotNil(t, updated.RespondedBy)
	assert.Equal(t, managerID, *updated.RespondedBy)
	assert.NotNil(t, updated.RespondedAt)
}

func TestRespondTwiceRejected(t *testing.T) {
	svc := newReviewFixture(t)
	rv := createReview(t, svc, 4)

	_, err := svc.Respond(context.Background(), rv.ID, uuid.New(), "first")
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), rv.ID, uuid.New(), "second")
	require.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestReviewStatsAverageAndResponseRate(t *testing.T) {
	svc := newReviewFixture(t)
	ctx := context.Background()

	createReview(t, svc, 5)
	createReview(t, svc, 3)
	responded := createReview(t, svc, 4)
	_, err := svc.Respond(ctx, responded.ID, uuid.New(), "noted")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalReviews)
	assert.InDelta(t, 4.0, stats.AverageRating, 0.001)
	assert.InDelta(t, 100.0/3.0, stats.ResponseRate, 0.001)
	assert.Equal(t, 2, stats.ByStatus.Counts["PUBLISHED"])
	assert.Equal(t, 1, stats.ByStatus.Counts["RESPONDED"])
}

func TestHiddenReviewCannotBeAnswered(t *testing.T) {
	svc := newReviewFixture(t)
	ctx := context.Background()

	rv := createReview(t, svc, 1)
	_, err := svc.Hide(ctx, rv.ID)
	require.NoError(t, err)

	_, err = svc.Respond(ctx, rv.ID, uuid.New(), "too late")
	require.ErrorIs(t, err, utils.ErrInvalidTransition)
}

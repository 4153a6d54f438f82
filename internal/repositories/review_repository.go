package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *models.Review) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	List(ctx context.Context) ([]*models.Review, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Review, error)

	Update(ctx context.Context, rv *models.Review) error
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Review) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepo struct {
	col *Collection[*models.Review]
}

func NewReviewRepository() ReviewRepository {
	return &reviewRepo{col: NewCollection[*models.Review]()}
}

func (r *reviewRepo) Create(ctx context.Context, rv *models.Review) error {
	return r.col.Create(ctx, rv)
}

func (r *reviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return r.col.GetByID(ctx, id.String())
}

func (r *reviewRepo) List(ctx context.Context) ([]*models.Review, error) {
	return r.col.List(ctx)
}

func (r *reviewRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Review, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Review
	for _, rv := range all {
		if rv.PropertyID == propertyID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *reviewRepo) Update(ctx context.Context, rv *models.Review) error {
	return r.col.Update(ctx, rv)
}

func (r *reviewRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Review) error) error {
	return r.col.UpdateWithRetry(ctx, id.String(), mutate)
}

func (r *reviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.Delete(ctx, id.String())
}

package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type SavedFilterRepository interface {
	Create(ctx context.Context, sf *models.SavedFilter) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SavedFilter, error)
	ListByOwnerAndFeature(ctx context.Context, ownerID uuid.UUID, feature string) ([]*models.SavedFilter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type savedFilterRepo struct {
	col *Collection[*models.SavedFilter]
}

func NewSavedFilterRepository() SavedFilterRepository {
	return &savedFilterRepo{col: NewCollection[*models.SavedFilter]()}
}

func (r *savedFilterRepo) Create(ctx context.Context, sf *models.SavedFilter) error {
	return r.col.Create(ctx, sf)
}

func (r *savedFilterRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SavedFilter, error) {
	return r.col.GetByID(ctx, id.String())
}

func (r *savedFilterRepo) ListByOwnerAndFeature(ctx context.Context, ownerID uuid.UUID, feature string) ([]*models.SavedFilter, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.SavedFilter
	for _, sf := range all {
		if sf.OwnerID == ownerID && sf.Feature == feature {
			out = append(out, sf)
		}
	}
	return out, nil
}

func (r *savedFilterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.Delete(ctx, id.String())
}

package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type InspectionRepository interface {
	Create(ctx context.Context, ins *models.Inspection) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Inspection, error)
	List(ctx context.Context) ([]*models.Inspection, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Inspection, error)

	Update(ctx context.Context, ins *models.Inspection) error
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Inspection) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type inspectionRepo struct {
	col *Collection[*models.Inspection]
}

func NewInspectionRepository() InspectionRepository {
	return &inspectionRepo{col: NewCollection[*models.Inspection]()}
}

func (r *inspectionRepo) Create(ctx context.Context, ins *models.Inspection) error {
	return r.col.Create(ctx, ins)
}

func (r *inspectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	return r.col.GetByID(ctx, id.String())
}

func (r *inspectionRepo) List(ctx context.Context) ([]*models.Inspection, error) {
	return r.col.List(ctx)
}

func (r *inspectionRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Inspection, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Inspection
	for _, ins := range all {
		if ins.PropertyID == propertyID {
			out = append(out, ins)
		}
	}
	return out, nil
}

func (r *inspectionRepo) Update(ctx context.Context, ins *models.Inspection) error {
	return r.col.Update(ctx, ins)
}

func (r *inspectionRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Inspection) error) error {
	return r.col.UpdateWithRetry(ctx, id.String(), mutate)
}

func (r *inspectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.Delete(ctx, id.String())
}

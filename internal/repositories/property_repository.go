package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	List(ctx context.Context) ([]*models.Property, error)
	ListByManagerID(ctx context.Context, managerID uuid.UUID) ([]*models.Property, error)
	ListByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*models.Property, error)

	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyRepo struct {
	col *Collection[*models.Property]
}

func NewPropertyRepository() PropertyRepository {
	return &propertyRepo{col: NewCollection[*models.Property]()}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	return r.col.Create(ctx, p)
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return r.col.GetByID(ctx, id.String())
}

func (r *propertyRepo) List(ctx context.Context) ([]*models.Property, error) {
	return r.col.List(ctx)
}

func (r *propertyRepo) ListByManagerID(ctx context.Context, managerID uuid.UUID) ([]*models.Property, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Property
	for _, p := range all {
		if p.ManagerID == managerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *propertyRepo) ListByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*models.Property, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Property
	for _, p := range all {
		if p.LandlordID == landlordID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	return r.col.Update(ctx, p)
}

func (r *propertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.Delete(ctx, id.String())
}

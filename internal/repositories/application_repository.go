package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a *models.TenantApplication) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.TenantApplication, error)
	List(ctx context.Context) ([]*models.TenantApplication, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.TenantApplication, error)

	Update(ctx context.Context, a *models.TenantApplication) error
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.TenantApplication) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type applicationRepo struct {
	col *Collection[*models.TenantApplication]
}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepo{col: NewCollection[*models.TenantApplication]()}
}

func (r *applicationRepo) Create(ctx context.Context, a *models.TenantApplication) error {
	return r.col.Create(ctx, a)
}

func (r *applicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.TenantApplication, error) {
	return r.col.GetByID(ctx, id.String())
}

func (r *applicationRepo) List(ctx context.Context) ([]*models.TenantApplication, error) {
	return r.col.List(ctx)
}

func (r *applicationRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.TenantApplication, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.TenantApplication
	for _, a := range all {
		if a.PropertyID == propertyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *applicationRepo) Update(ctx context.Context, a *models.TenantApplication) error {
	return r.col.Update(ctx, a)
}

func (r *applicationRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.TenantApplication) error) error {
	return r.col.UpdateWithRetry(ctx, id.String(), mutate)
}

func (r *applicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.Delete(ctx, id.String())
}

package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type MaintenanceRepository interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error)
	List(ctx context.Context) ([]*models.MaintenanceRequest, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.MaintenanceRequest, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.MaintenanceRequest, error)

	Update(ctx context.Context, m *models.MaintenanceRequest) error
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type maintenanceRepo struct {
	col *Collection[*models.MaintenanceRequest]
}

func NewMaintenanceRepository() MaintenanceRepository {
	return &maintenanceRepo{col: NewCollection[*models.MaintenanceRequest]()}
}

func (r *maintenanceRepo) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	return r.col.Create(ctx, m)
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error) {
	return r.col.GetByID(ctx, id.String())
}

func (r *maintenanceRepo) List(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	return r.col.List(ctx)
}

func (r *maintenanceRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.MaintenanceRequest, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.MaintenanceRequest
	for _, m := range all {
		if m.PropertyID == propertyID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *maintenanceRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.MaintenanceRequest, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.MaintenanceRequest
	for _, m := range all {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *maintenanceRepo) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	return r.col.Update(ctx, m)
}

func (r *maintenanceRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) error {
	return r.col.UpdateWithRetry(ctx, id.String(), mutate)
}

func (r *maintenanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.Delete(ctx, id.String())
}

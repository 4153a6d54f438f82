package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Payment, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.Payment, error)

	Update(ctx context.Context, p *models.Payment) error
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Payment) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentRepo struct {
	col *Collection[*models.Payment]
}

func NewPaymentRepository() PaymentRepository {
	return &paymentRepo{col: NewCollection[*models.Payment]()}
}

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	return r.col.Create(ctx, p)
}

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return r.col.GetByID(ctx, id.String())
}

func (r *paymentRepo) List(ctx context.Context) ([]*models.Payment, error) {
	return r.col.List(ctx)
}

func (r *paymentRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Payment, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Payment
	for _, p := range all {
		if p.PropertyID == propertyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *paymentRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.Payment, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Payment
	for _, p := range all {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *paymentRepo) Update(ctx context.Context, p *models.Payment) error {
	return r.col.Update(ctx, p)
}

func (r *paymentRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Payment) error) error {
	return r.col.UpdateWithRetry(ctx, id.String(), mutate)
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.Delete(ctx, id.String())
}

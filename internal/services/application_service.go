package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/listview"
	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/repositories"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type ApplicationService struct {
	repo repositories.ApplicationRepository
}

func NewApplicationService(repo repositories.ApplicationRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

func applicationPipeline() listview.Pipeline[*models.TenantApplication] {
	return listview.Pipeline[*models.TenantApplication]{
		Facets: []listview.Facet[*models.TenantApplication]{
			{Name: "status", Value: func(a *models.TenantApplication) string { return string(a.Status) }},
			{Name: "property_id", Value: func(a *models.TenantApplication) string { return a.PropertyID.String() }},
		},
		SearchFields: []func(*models.TenantApplication) string{
			func(a *models.TenantApplication) string { return a.ApplicantName },
			func(a *models.TenantApplication) string { return a.Email },
			func(a *models.TenantApplication) string { return a.UnitNumber },
		},
		DateOf: func(a *models.TenantApplication) time.Time { return a.CreatedAt },
	}
}

func (s *ApplicationService) List(ctx context.Context, cfg listview.Config) (*dtos.ApplicationListResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	view := applicationPipeline().View(records, cfg)
	return &dtos.ApplicationListResponse{Results: view, Total: len(view)}, nil
}

func (s *ApplicationService) GetByID(ctx context.Context, id uuid.UUID) (*models.TenantApplication, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ApplicationService) Submit(ctx context.Context, req dtos.SubmitApplicationRequest) (*models.TenantApplication, error) {
	a := &models.TenantApplication{
		PropertyID:    req.PropertyID,
		UnitNumber:    req.UnitNumber,
		ApplicantName: req.ApplicantName,
		Email:         req.Email,
		Phone:         req.Phone,
		MonthlyIncome: req.MonthlyIncome,
		Notes:         req.Notes,
		Status:        models.ApplicationStatusSubmitted,
	}
	a.ID = uuid.New()
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Decide moves the application along its review lifecycle. Terminal
// applications reject further decisions.
func (s *ApplicationService) Decide(ctx context.Context, id uuid.UUID, req dtos.DecideApplicationRequest) (*models.TenantApplication, error) {
	newStatus := models.ApplicationStatusType(req.Status)
	err := s.repo.UpdateWithRetry(ctx, id, func(a *models.TenantApplication) error {
		if !a.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%s -> %s: %w", a.Status, newStatus, utils.ErrInvalidTransition)
		}
		a.Status = newStatus
		if req.DecisionNote != "" {
			a.DecisionNote = req.DecisionNote
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ApplicationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

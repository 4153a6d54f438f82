package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/constants"
	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/listview"
	"github.com/dwellfront/dashboard-service/internal/middleware"
	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/repositories"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type MaintenanceService struct {
	repo      repositories.MaintenanceRepository
	exportSvc *ExportService
}

func NewMaintenanceService(repo repositories.MaintenanceRepository, exportSvc *ExportService) *MaintenanceService {
	return &MaintenanceService{repo: repo, exportSvc: exportSvc}
}

func maintenancePipeline() listview.Pipeline[*models.MaintenanceRequest] {
	return listview.Pipeline[*models.MaintenanceRequest]{
		Facets: []listview.Facet[*models.MaintenanceRequest]{
			{Name: "status", Value: func(m *models.MaintenanceRequest) string { return string(m.Status) }},
			{Name: "priority", Value: func(m *models.MaintenanceRequest) string { return string(m.Priority) }},
			{Name: "category", Value: func(m *models.MaintenanceRequest) string { return string(m.Category) }},
			{Name: "property_id", Value: func(m *models.MaintenanceRequest) string { return m.PropertyID.String() }},
		},
		SearchFields: []func(*models.MaintenanceRequest) string{
			func(m *models.MaintenanceRequest) string { return m.Title },
			func(m *models.MaintenanceRequest) string { return m.Description },
			func(m *models.MaintenanceRequest) string { return m.UnitNumber },
			func(m *models.MaintenanceRequest) string { return m.AssignedVendor },
		},
		DateOf: func(m *models.MaintenanceRequest) time.Time { return m.CreatedAt },
	}
}

// scoped returns the records the actor may see: tenants only their own
// requests, managers and landlords everything.
func (s *MaintenanceService) scoped(ctx context.Context, actorID uuid.UUID, role string) ([]*models.MaintenanceRequest, error) {
	if role == middleware.RoleTenant {
		return s.repo.ListByTenantID(ctx, actorID)
	}
	return s.repo.List(ctx)
}

func (s *MaintenanceService) List(ctx context.Context, actorID uuid.UUID, role string, cfg listview.Config) (*dtos.MaintenanceListResponse, error) {
	records, err := s.scoped(ctx, actorID, role)
	if err != nil {
		return nil, err
	}
	view := maintenancePipeline().View(records, cfg)
	return &dtos.MaintenanceListResponse{Results: view, Total: len(view)}, nil
}

// Stats folds the full scoped collection, never the filtered view.
func (s *MaintenanceService) Stats(ctx context.Context, actorID uuid.UUID, role string) (*dtos.MaintenanceStatsResponse, error) {
	records, err := s.scoped(ctx, actorID, role)
	if err != nil {
		return nil, err
	}

	enum := make([]string, 0, len(models.RequestStatuses()))
	for _, st := range models.RequestStatuses() {
		enum = append(enum, string(st))
	}
	byStatus := listview.CountByStatus(records, func(m *models.MaintenanceRequest) string { return string(m.Status) }, enum)

	flagged := 0
	for _, m := range records {
		if m.FlaggedForReview {
			flagged++
		}
	}

	return &dtos.MaintenanceStatsResponse{
		ByStatus:           dtos.NewStatusCountsDTO(byStatus),
		TotalRequests:      byStatus.Total,
		TotalEstimatedCost: listview.SumAmount(records, func(m *models.MaintenanceRequest) string { return m.EstimatedCost }),
		CompletionRate:     listview.Percentage(byStatus.Counts[string(models.RequestStatusCompleted)], byStatus.Total),
		FlaggedForReview:   flagged,
	}, nil
}

func (s *MaintenanceService) Create(ctx context.Context, actorID uuid.UUID, role string, req dtos.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	m := &models.MaintenanceRequest{
		PropertyID:  req.PropertyID,
		UnitNumber:  req.UnitNumber,
		Title:       req.Title,
		Description: req.Description,
		Category:    models.RequestCategoryType(req.Category),
		Priority:    models.RequestPriorityType(req.Priority),
		Status:      models.RequestStatusPending,
	}
	m.ID = uuid.New()
	if role == middleware.RoleTenant {
		m.TenantID = actorID
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaintenanceService) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	err := s.repo.UpdateWithRetry(ctx, id, func(m *models.MaintenanceRequest) error {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Description != nil {
			m.Description = *req.Description
		}
		if req.Priority != nil {
			m.Priority = models.RequestPriorityType(*req.Priority)
		}
		if req.EstimatedCost != nil {
			m.EstimatedCost = *req.EstimatedCost
		}
		if req.AssignedVendor != nil {
			m.AssignedVendor = *req.AssignedVendor
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// SetStatus validates the transition against the request lifecycle
// table before applying it.
func (s *MaintenanceService) SetStatus(ctx context.Context, id uuid.UUID, newStatus models.RequestStatusType) (*models.MaintenanceRequest, error) {
	err := s.repo.UpdateWithRetry(ctx, id, func(m *models.MaintenanceRequest) error {
		if !m.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%s -> %s: %w", m.Status, newStatus, utils.ErrInvalidTransition)
		}
		m.Status = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Export serializes either the full scoped collection or the current
// filtered view, caller's choice.
func (s *MaintenanceService) Export(ctx context.Context, actorID uuid.UUID, role string, cfg listview.Config, filtered bool) ([]string, error) {
	records, err := s.scoped(ctx, actorID, role)
	if err != nil {
		return nil, err
	}
	if filtered {
		records = maintenancePipeline().View(records, cfg)
	}

	stats, err := s.Stats(ctx, actorID, role)
	if err != nil {
		return nil, err
	}

	view := ExportView{
		Feature: constants.FeatureMaintenance,
		Columns: []string{"ID", "Title", "Category", "Priority", "Status", "Unit", "Estimated Cost", "Created"},
		Summary: []SummaryRow{
			{Label: "Total requests", Value: stats.TotalRequests},
			{Label: "Completed", Value: stats.ByStatus.Counts[string(models.RequestStatusCompleted)]},
			{Label: "Completion rate (%)", Value: stats.CompletionRate},
			{Label: "Total estimated cost", Value: stats.TotalEstimatedCost},
		},
		Projection: listview.MonthlySeries(records,
			func(m *models.MaintenanceRequest) time.Time { return m.CreatedAt },
			func(m *models.MaintenanceRequest) string { return m.EstimatedCost },
		),
	}
	for _, m := range records {
		view.Rows = append(view.Rows, []any{
			m.ID.String(), m.Title, string(m.Category), string(m.Priority),
			string(m.Status), m.UnitNumber, m.EstimatedCost,
			m.CreatedAt.Format("2006-01-02"),
		})
	}

	return s.exportSvc.Export(ctx, view)
}

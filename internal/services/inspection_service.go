package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/constants"
	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/listview"
	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/repositories"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type InspectionService struct {
	repo      repositories.InspectionRepository
	exportSvc *ExportService
}

func NewInspectionService(repo repositories.InspectionRepository, exportSvc *ExportService) *InspectionService {
	return &InspectionService{repo: repo, exportSvc: exportSvc}
}

func inspectionPipeline() listview.Pipeline[*models.Inspection] {
	return listview.Pipeline[*models.Inspection]{
		Facets: []listview.Facet[*models.Inspection]{
			{Name: "status", Value: func(i *models.Inspection) string { return string(i.Status) }},
			{Name: "kind", Value: func(i *models.Inspection) string { return string(i.Kind) }},
			{Name: "property_id", Value: func(i *models.Inspection) string { return i.PropertyID.String() }},
		},
		SearchFields: []func(*models.Inspection) string{
			func(i *models.Inspection) string { return i.UnitNumber },
			func(i *models.Inspection) string { return i.InspectorName },
			func(i *models.Inspection) string { return i.Findings },
		},
		DateOf: func(i *models.Inspection) time.Time { return i.ScheduledFor },
	}
}

func (s *InspectionService) List(ctx context.Context, cfg listview.Config) (*dtos.InspectionListResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	view := inspectionPipeline().View(records, cfg)
	return &dtos.InspectionListResponse{Results: view, Total: len(view)}, nil
}

func (s *InspectionService) Stats(ctx context.Context) (*dtos.InspectionStatsResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	enum := make([]string, 0, len(models.InspectionStatuses()))
	for _, st := range models.InspectionStatuses() {
		enum = append(enum, string(st))
	}
	byStatus := listview.CountByStatus(records, func(i *models.Inspection) string { return string(i.Status) }, enum)

	var scoreSum, completed int
	for _, i := range records {
		if i.Status == models.InspectionStatusCompleted {
			completed++
			scoreSum += i.Score
		}
	}
	avgScore := 0.0
	if completed > 0 {
		avgScore = float64(scoreSum) / float64(completed)
	}

	return &dtos.InspectionStatsResponse{
		ByStatus:         dtos.NewStatusCountsDTO(byStatus),
		TotalInspections: byStatus.Total,
		CompletionRate:   listview.Percentage(completed, byStatus.Total),
		AverageScore:     avgScore,
	}, nil
}

func (s *InspectionService) Schedule(ctx context.Context, req dtos.ScheduleInspectionRequest) (*models.Inspection, error) {
	ins := &models.Inspection{
		PropertyID:    req.PropertyID,
		UnitNumber:    req.UnitNumber,
		InspectorName: req.InspectorName,
		Kind:          models.InspectionKindType(req.Kind),
		Status:        models.InspectionStatusScheduled,
		ScheduledFor:  req.ScheduledFor,
	}
	ins.ID = uuid.New()
	if err := s.repo.Create(ctx, ins); err != nil {
		return nil, err
	}
	return ins, nil
}

func (s *InspectionService) SetStatus(ctx context.Context, id uuid.UUID, req dtos.SetInspectionStatusRequest) (*models.Inspection, error) {
	newStatus := models.InspectionStatusType(req.Status)
	err := s.repo.UpdateWithRetry(ctx, id, func(ins *models.Inspection) error {
		if !ins.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%s -> %s: %w", ins.Status, newStatus, utils.ErrInvalidTransition)
		}
		ins.Status = newStatus
		if newStatus == models.InspectionStatusCompleted {
			ins.Findings = req.Findings
			ins.Score = req.Score
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *InspectionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *InspectionService) Export(ctx context.Context, cfg listview.Config, filtered bool) ([]string, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filtered {
		records = inspectionPipeline().View(records, cfg)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	view := ExportView{
		Feature: constants.FeatureInspections,
		Columns: []string{"ID", "Unit", "Inspector", "Kind", "Status", "Scheduled", "Score"},
		Summary: []SummaryRow{
			{Label: "Total inspections", Value: stats.TotalInspections},
			{Label: "Completion rate (%)", Value: stats.CompletionRate},
			{Label: "Average score", Value: stats.AverageScore},
		},
	}
	for _, ins := range records {
		view.Rows = append(view.Rows, []any{
			ins.ID.String(), ins.UnitNumber, ins.InspectorName, string(ins.Kind),
			string(ins.Status), ins.ScheduledFor.Format("2006-01-02"), ins.Score,
		})
	}

	return s.exportSvc.Export(ctx, view)
}

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

type ReportService struct {
	repo      repositories.PaymentRepository
	exportSvc *ExportService
	now       func() time.Time
}

func NewReportService(repo repositories.PaymentRepository, exportSvc *ExportService) *ReportService {
	return &ReportService{repo: repo, exportSvc: exportSvc, now: time.Now}
}

func paymentPipeline() listview.Pipeline[*models.Payment] {
	return listview.Pipeline[*models.Payment]{
		Facets: []listview.Facet[*models.Payment]{
			{Name: "status", Value: func(p *models.Payment) string { return string(p.Status) }},
			{Name: "period", Value: func(p *models.Payment) string { return p.Period }},
			{Name: "property_id", Value: func(p *models.Payment) string { return p.PropertyID.String() }},
		},
		SearchFields: []func(*models.Payment) string{
			func(p *models.Payment) string { return p.UnitNumber },
			func(p *models.Payment) string { return p.Method },
			func(p *models.Payment) string { return p.Period },
		},
		DateOf: func(p *models.Payment) time.Time { return p.CreatedAt },
	}
}

func (s *ReportService) scoped(ctx context.Context, actorID uuid.UUID, role string) ([]*models.Payment, error) {
	if role == middleware.RoleTenant {
		return s.repo.ListByTenantID(ctx, actorID)
	}
	return s.repo.List(ctx)
}

func (s *ReportService) List(ctx context.Context, actorID uuid.UUID, role string, cfg listview.Config) (*dtos.PaymentListResponse, error) {
	records, err := s.scoped(ctx, actorID, role)
	if err != nil {
		return nil, err
	}
	view := paymentPipeline().View(records, cfg)
	return &dtos.PaymentListResponse{Results: view, Total: len(view)}, nil
}

func (s *ReportService) Stats(ctx context.Context, actorID uuid.UUID, role string) (*dtos.ReportStatsResponse, error) {
	records, err := s.scoped(ctx, actorID, role)
	if err != nil {
		return nil, err
	}

	enum := make([]string, 0, len(models.PaymentStatuses()))
	for _, st := range models.PaymentStatuses() {
		enum = append(enum, string(st))
	}
	byStatus := listview.CountByStatus(records, func(p *models.Payment) string { return string(p.Status) }, enum)

	var paid []*models.Payment
	for _, p := range records {
		if p.Status == models.PaymentStatusPaid {
			paid = append(paid, p)
		}
	}
	amount := func(p *models.Payment) string { return p.Amount }

	return &dtos.ReportStatsResponse{
		ByStatus:       dtos.NewStatusCountsDTO(byStatus),
		TotalPayments:  byStatus.Total,
		TotalCollected: listview.SumAmount(paid, amount),
		TotalBilled:    listview.SumAmount(records, amount),
		CollectionRate: listview.Percentage(len(paid), byStatus.Total),
	}, nil
}

// Series buckets collected rent by month for the dashboard chart.
func (s *ReportService) Series(ctx context.Context, actorID uuid.UUID, role string) (*dtos.ReportSeriesResponse, error) {
	records, err := s.scoped(ctx, actorID, role)
	if err != nil {
		return nil, err
	}

	var paid []*models.Payment
	for _, p := range records {
		if p.Status == models.PaymentStatusPaid {
			paid = append(paid, p)
		}
	}

	series := listview.MonthlySeries(paid,
		func(p *models.Payment) time.Time {
			if p.PaidAt != nil {
				return *p.PaidAt
			}
			return p.CreatedAt
		},
		func(p *models.Payment) string { return p.Amount },
	)
	return &dtos.ReportSeriesResponse{Collected: series}, nil
}

// SetStatus applies a payment lifecycle transition. Marking PAID also
// stamps the settlement time and method.
func (s *ReportService) SetStatus(ctx context.Context, id uuid.UUID, req dtos.SetPaymentStatusRequest) (*models.Payment, error) {
	newStatus := models.PaymentStatusType(req.Status)
	err := s.repo.UpdateWithRetry(ctx, id, func(p *models.Payment) error {
		if !p.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%s -> %s: %w", p.Status, newStatus, utils.ErrInvalidTransition)
		}
		p.Status = newStatus
		if newStatus == models.PaymentStatusPaid {
			now := s.now().UTC()
			p.PaidAt = &now
			p.Method = req.Method
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ReportService) Export(ctx context.Context, actorID uuid.UUID, role string, cfg listview.Config, filtered bool) ([]string, error) {
	records, err := s.scoped(ctx, actorID, role)
	if err != nil {
		return nil, err
	}
	if filtered {
		records = paymentPipeline().View(records, cfg)
	}

	stats, err := s.Stats(ctx, actorID, role)
	if err != nil {
		return nil, err
	}
	series, err := s.Series(ctx, actorID, role)
	if err != nil {
		return nil, err
	}

	view := ExportView{
		Feature: constants.FeatureReports,
		Columns: []string{"ID", "Unit", "Period", "Amount", "Status", "Method", "Paid At"},
		Summary: []SummaryRow{
			{Label: "Total payments", Value: stats.TotalPayments},
			{Label: "Total billed", Value: stats.TotalBilled},
			{Label: "Total collected", Value: stats.TotalCollected},
			{Label: "Collection rate (%)", Value: stats.CollectionRate},
		},
		Projection: series.Collected,
	}
	for _, p := range records {
		paidAt := ""
		if p.PaidAt != nil {
			paidAt = p.PaidAt.Format("2006-01-02")
		}
		view.Rows = append(view.Rows, []any{
			p.ID.String(), p.UnitNumber, p.Period, p.Amount,
			string(p.Status), p.Method, paidAt,
		})
	}

	return s.exportSvc.Export(ctx, view)
}

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

type ReviewService struct {
	repo      repositories.ReviewRepository
	exportSvc *ExportService
	now       func() time.Time
}

func NewReviewService(repo repositories.ReviewRepository, exportSvc *ExportService) *ReviewService {
	return &ReviewService{repo: repo, exportSvc: exportSvc, now: time.Now}
}

func reviewPipeline() listview.Pipeline[*models.Review] {
	return listview.Pipeline[*models.Review]{
		Facets: []listview.Facet[*models.Review]{
			{Name: "status", Value: func(r *models.Review) string { return string(r.Status) }},
			{Name: "rating", Value: func(r *models.Review) string { return fmt.Sprint(r.Rating) }},
			{Name: "property_id", Value: func(r *models.Review) string { return r.PropertyID.String() }},
		},
		SearchFields: []func(*models.Review) string{
			func(r *models.Review) string { return r.Title },
			func(r *models.Review) string { return r.Comment },
			func(r *models.Review) string { return r.TenantName },
			func(r *models.Review) string { return r.Response },
		},
		DateOf: func(r *models.Review) time.Time { return r.CreatedAt },
	}
}

func (s *ReviewService) List(ctx context.Context, cfg listview.Config) (*dtos.ReviewListResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	view := reviewPipeline().View(records, cfg)
	return &dtos.ReviewListResponse{Results: view, Total: len(view)}, nil
}

func (s *ReviewService) Stats(ctx context.Context) (*dtos.ReviewStatsResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	enum := make([]string, 0, len(models.ReviewStatuses()))
	for _, st := range models.ReviewStatuses() {
		enum = append(enum, string(st))
	}
	byStatus := listview.CountByStatus(records, func(r *models.Review) string { return string(r.Status) }, enum)

	var ratingSum int
	for _, r := range records {
		ratingSum += r.Rating
	}
	avg := 0.0
	if len(records) > 0 {
		avg = float64(ratingSum) / float64(len(records))
	}

	return &dtos.ReviewStatsResponse{
		ByStatus:      dtos.NewStatusCountsDTO(byStatus),
		TotalReviews:  byStatus.Total,
		AverageRating: avg,
		ResponseRate:  listview.Percentage(byStatus.Counts[string(models.ReviewStatusResponded)], byStatus.Total),
	}, nil
}

func (s *ReviewService) Create(ctx context.Context, tenantID uuid.UUID, tenantName string, req dtos.CreateReviewRequest) (*models.Review, error) {
	rv := &models.Review{
		PropertyID: req.PropertyID,
		TenantID:   tenantID,
		TenantName: tenantName,
		Rating:     req.Rating,
		Title:      req.Title,
		Comment:    req.Comment,
		Status:     models.ReviewStatusPublished,
	}
	rv.ID = uuid.New()
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// Respond records the manager's answer and moves the review to
// RESPONDED. Answering an already-responded or hidden review is a
// transition error, not a silent overwrite.
func (s *ReviewService) Respond(ctx context.Context, id, responderID uuid.UUID, response string) (*models.Review, error) {
	err := s.repo.UpdateWithRetry(ctx, id, func(rv *models.Review) error {
		if !rv.Status.CanTransitionTo(models.ReviewStatusResponded) {
			return fmt.Errorf("%s -> %s: %w", rv.Status, models.ReviewStatusResponded, utils.ErrInvalidTransition)
		}
		now := s.now().UTC()
		rv.Status = models.ReviewStatusResponded
		rv.Response = response
		rv.RespondedBy = &responderID
		rv.RespondedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ReviewService) Hide(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	err := s.repo.UpdateWithRetry(ctx, id, func(rv *models.Review) error {
		if !rv.Status.CanTransitionTo(models.ReviewStatusHidden) {
			return fmt.Errorf("%s -> %s: %w", rv.Status, models.ReviewStatusHidden, utils.ErrInvalidTransition)
		}
		rv.Status = models.ReviewStatusHidden
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *ReviewService) Export(ctx context.Context, cfg listview.Config, filtered bool) ([]string, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filtered {
		records = reviewPipeline().View(records, cfg)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	view := ExportView{
		Feature: constants.FeatureReviews,
		Columns: []string{"ID", "Tenant", "Rating", "Title", "Status", "Response", "Created"},
		Summary: []SummaryRow{
			{Label: "Total reviews", Value: stats.TotalReviews},
			{Label: "Average rating", Value: stats.AverageRating},
			{Label: "Response rate (%)", Value: stats.ResponseRate},
		},
	}
	for _, rv := range records {
		view.Rows = append(view.Rows, []any{
			rv.ID.String(), rv.TenantName, rv.Rating, rv.Title,
			string(rv.Status), rv.Response, rv.CreatedAt.Format("2006-01-02"),
		})
	}

	return s.exportSvc.Export(ctx, view)
}

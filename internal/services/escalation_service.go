package services

import (
	"context"
	"time"

	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/repositories"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

// EscalationService flags maintenance requests that have sat in OPEN or
// IN_PROGRESS past the configured age so managers see them first.
type EscalationService struct {
	repo   repositories.MaintenanceRepository
	maxAge time.Duration
	now    func() time.Time
}

func NewEscalationService(repo repositories.MaintenanceRepository, maxAge time.Duration) *EscalationService {
	return &EscalationService{repo: repo, maxAge: maxAge, now: time.Now}
}

func (s *EscalationService) isStale(m *models.MaintenanceRequest) bool {
	if m.Status != models.RequestStatusOpen && m.Status != models.RequestStatusInProgress {
		return false
	}
	return s.now().UTC().Sub(m.CreatedAt) > s.maxAge
}

// RunEscalationCheck is invoked by the scheduler. It returns the number
// of requests it flagged on this pass.
func (s *EscalationService) RunEscalationCheck(ctx context.Context) (int, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	flagged := 0
	for _, m := range records {
		if m.FlaggedForReview || !s.isStale(m) {
			continue
		}
		err := s.repo.UpdateWithRetry(ctx, m.ID, func(cur *models.MaintenanceRequest) error {
			if s.isStale(cur) {
				cur.FlaggedForReview = true
			}
			return nil
		})
		if err != nil {
			utils.Logger.WithError(err).WithField("request_id", m.ID).Warn("escalation update failed")
			continue
		}
		flagged++
	}

	if flagged > 0 {
		utils.Logger.WithField("flagged", flagged).Info("escalated stale maintenance requests")
	}
	return flagged, nil
}

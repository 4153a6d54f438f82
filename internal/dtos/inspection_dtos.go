package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type ScheduleInspectionRequest struct {
	PropertyID    uuid.UUID `json:"property_id" validate:"required"`
	UnitNumber    string    `json:"unit_number" validate:"required"`
	InspectorName string    `json:"inspector_name" validate:"required,max=120"`
	Kind          string    `json:"kind" validate:"required,oneof=MOVE_IN MOVE_OUT ROUTINE"`
	ScheduledFor  time.Time `json:"scheduled_for" validate:"required"`
}

// SetInspectionStatusRequest moves an inspection through its lifecycle.
// Findings and score are only meaningful on completion.
type SetInspectionStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELED"`
	Findings string `json:"findings,omitempty" validate:"max=2000"`
	Score    int    `json:"score,omitempty" validate:"min=0,max=100"`
}

type InspectionListResponse struct {
	Results []*models.Inspection `json:"results"`
	Total   int                  `json:"total"`
}

type InspectionStatsResponse struct {
	ByStatus         StatusCountsDTO `json:"by_status"`
	TotalInspections int             `json:"total_inspections"`
	CompletionRate   float64         `json:"completion_rate"`
	AverageScore     float64         `json:"average_score"`
}

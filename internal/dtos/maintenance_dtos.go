package dtos

import (
	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type CreateMaintenanceRequest struct {
	PropertyID  uuid.UUID `json:"property_id" validate:"required"`
	UnitNumber  string    `json:"unit_number" validate:"required"`
	Title       string    `json:"title" validate:"required,max=120"`
	Description string    `json:"description" validate:"max=2000"`
	Category    string    `json:"category" validate:"required,oneof=PLUMBING ELECTRICAL HVAC APPLIANCE GENERAL"`
	Priority    string    `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
}

// UpdateMaintenanceRequest is a partial patch; nil fields are left
// untouched. Status changes go through the status endpoint.
type UpdateMaintenanceRequest struct {
	Title          *string `json:"title,omitempty" validate:"omitempty,max=120"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Priority       *string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	EstimatedCost  *string `json:"estimated_cost,omitempty"`
	AssignedVendor *string `json:"assigned_vendor,omitempty"`
}

type SetRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING OPEN IN_PROGRESS COMPLETED CANCELED"`
}

type MaintenanceListResponse struct {
	Results []*models.MaintenanceRequest `json:"results"`
	Total   int                          `json:"total"`
}

type MaintenanceStatsResponse struct {
	ByStatus           StatusCountsDTO `json:"by_status"`
	TotalRequests      int             `json:"total_requests"`
	TotalEstimatedCost float64         `json:"total_estimated_cost"`
	CompletionRate     float64         `json:"completion_rate"`
	FlaggedForReview   int             `json:"flagged_for_review"`
}

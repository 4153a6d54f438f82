package models

import (
	"github.com/google/uuid"
)

type RequestStatusType string

const (
	RequestStatusPending    RequestStatusType = "PENDING"
	RequestStatusOpen       RequestStatusType = "OPEN"
	RequestStatusInProgress RequestStatusType = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatusType = "COMPLETED"
	RequestStatusCanceled   RequestStatusType = "CANCELED"
)

type RequestPriorityType string

const (
	RequestPriorityLow    RequestPriorityType = "LOW"
	RequestPriorityMedium RequestPriorityType = "MEDIUM"
	RequestPriorityHigh   RequestPriorityType = "HIGH"
	RequestPriorityUrgent RequestPriorityType = "URGENT"
)

type RequestCategoryType string

const (
	RequestCategoryPlumbing   RequestCategoryType = "PLUMBING"
	RequestCategoryElectrical RequestCategoryType = "ELECTRICAL"
	RequestCategoryHVAC       RequestCategoryType = "HVAC"
	RequestCategoryAppliance  RequestCategoryType = "APPLIANCE"
	RequestCategoryGeneral    RequestCategoryType = "GENERAL"
)

// requestTransitions is the allowed-next table for maintenance request
// statuses. Cancellation is reachable from every non-terminal state.
var requestTransitions = map[RequestStatusType][]RequestStatusType{
	RequestStatusPending:    {RequestStatusOpen, RequestStatusCanceled},
	RequestStatusOpen:       {RequestStatusInProgress, RequestStatusCanceled},
	RequestStatusInProgress: {RequestStatusCompleted, RequestStatusCanceled},
	RequestStatusCompleted:  {},
	RequestStatusCanceled:   {},
}

func (s RequestStatusType) CanTransitionTo(next RequestStatusType) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RequestStatuses returns the declared enum in display order, used by
// the stats reducers to partition counts.
func RequestStatuses() []RequestStatusType {
	return []RequestStatusType{
		RequestStatusPending,
		RequestStatusOpen,
		RequestStatusInProgress,
		RequestStatusCompleted,
		RequestStatusCanceled,
	}
}

type MaintenanceRequest struct {
	Record

	PropertyID  uuid.UUID           `json:"property_id"`
	UnitNumber  string              `json:"unit_number"`
	TenantID    uuid.UUID           `json:"tenant_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    RequestCategoryType `json:"category"`
	Priority    RequestPriorityType `json:"priority"`
	Status      RequestStatusType   `json:"status"`

	// EstimatedCost keeps the display form entered by the manager
	// ("$1,250.00"); the stats reducer parses it tolerantly.
	EstimatedCost  string `json:"estimated_cost,omitempty"`
	AssignedVendor string `json:"assigned_vendor,omitempty"`

	FlaggedForReview bool `json:"flagged_for_review"`
}

func (m *MaintenanceRequest) Clone() *MaintenanceRequest {
	cp := *m
	return &cp
}

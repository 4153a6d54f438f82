package models

import (
	"github.com/google/uuid"
)

type ApplicationStatusType string

const (
	ApplicationStatusSubmitted   ApplicationStatusType = "SUBMITTED"
	ApplicationStatusUnderReview ApplicationStatusType = "UNDER_REVIEW"
	ApplicationStatusApproved    ApplicationStatusType = "APPROVED"
	ApplicationStatusRejected    ApplicationStatusType = "REJECTED"
	ApplicationStatusWithdrawn   ApplicationStatusType = "WITHDRAWN"
)

var applicationTransitions = map[ApplicationStatusType][]ApplicationStatusType{
	ApplicationStatusSubmitted:   {ApplicationStatusUnderReview, ApplicationStatusWithdrawn},
	ApplicationStatusUnderReview: {ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusApproved:    {},
	ApplicationStatusRejected:    {},
	ApplicationStatusWithdrawn:   {},
}

func (s ApplicationStatusType) CanTransitionTo(next ApplicationStatusType) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ApplicationStatuses() []ApplicationStatusType {
	return []ApplicationStatusType{
		ApplicationStatusSubmitted,
		ApplicationStatusUnderReview,
		ApplicationStatusApproved,
		ApplicationStatusRejected,
		ApplicationStatusWithdrawn,
	}
}

// TenantApplication is a prospective tenant's application for a unit.
type TenantApplication struct {
	Record

	PropertyID    uuid.UUID             `json:"property_id"`
	UnitNumber    string                `json:"unit_number"`
	ApplicantName string                `json:"applicant_name"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	MonthlyIncome string                `json:"monthly_income,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Status        ApplicationStatusType `json:"status"`
	DecisionNote  string                `json:"decision_note,omitempty"`
}

func (a *TenantApplication) Clone() *TenantApplication {
	cp := *a
	return &cp
}

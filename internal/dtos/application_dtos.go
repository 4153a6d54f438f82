package dtos

import (
	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type SubmitApplicationRequest struct {
	PropertyID    uuid.UUID `json:"property_id" validate:"required"`
	UnitNumber    string    `json:"unit_number" validate:"required"`
	ApplicantName string    `json:"applicant_name" validate:"required,max=120"`
	Email         string    `json:"email" validate:"required,email"`
	Phone         string    `json:"phone,omitempty" validate:"max=20"`
	MonthlyIncome string    `json:"monthly_income,omitempty" validate:"max=20"`
	Notes         string    `json:"notes,omitempty" validate:"max=2000"`
}

type DecideApplicationRequest struct {
	Status       string `json:"status" validate:"required,oneof=UNDER_REVIEW APPROVED REJECTED WITHDRAWN"`
	DecisionNote string `json:"decision_note,omitempty" validate:"max=2000"`
}

type ApplicationListResponse struct {
	Results []*models.TenantApplication `json:"results"`
	Total   int                         `json:"total"`
}

package dtos

import (
	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type CreateReviewRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Title      string    `json:"title" validate:"required,max=120"`
	Comment    string    `json:"comment" validate:"max=2000"`
}

type RespondReviewRequest struct {
	Response string `json:"response" validate:"required,max=2000"`
}

type ReviewListResponse struct {
	Results []*models.Review `json:"results"`
	Total   int              `json:"total"`
}

type ReviewStatsResponse struct {
	ByStatus      StatusCountsDTO `json:"by_status"`
	TotalReviews  int             `json:"total_reviews"`
	AverageRating float64         `json:"average_rating"`
	ResponseRate  float64         `json:"response_rate"`
}

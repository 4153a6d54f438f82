package dtos

import (
	"github.com/dwellfront/dashboard-service/internal/models"
)

type SaveFilterRequest struct {
	Feature string            `json:"feature" validate:"required,oneof=maintenance reviews inspections reports"`
	Name    string            `json:"name" validate:"required,max=80"`
	Facets  map[string]string `json:"facets,omitempty"`
	Search  string            `json:"search,omitempty" validate:"max=200"`
}

type SavedFilterListResponse struct {
	Results []*models.SavedFilter `json:"results"`
	Total   int                   `json:"total"`
}

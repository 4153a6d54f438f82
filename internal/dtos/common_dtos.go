package dtos

import "github.com/dwellfront/dashboard-service/internal/listview"

// StatusCountsDTO mirrors listview.StatusCounts for responses.
type StatusCountsDTO struct {
	Counts map[string]int `json:"counts"`
	Other  int            `json:"other"`
	Total  int            `json:"total"`
}

func NewStatusCountsDTO(sc listview.StatusCounts) StatusCountsDTO {
	return StatusCountsDTO{Counts: sc.Counts, Other: sc.Other, Total: sc.Total}
}

// ExportResponse returns the generated filenames for the UI toast.
type ExportResponse struct {
	Files []string `json:"files"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

package dtos

import (
	"github.com/dwellfront/dashboard-service/internal/listview"
	"github.com/dwellfront/dashboard-service/internal/models"
)

type SetPaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DUE PAID OVERDUE REFUNDED"`
	Method string `json:"method,omitempty" validate:"max=40"`
}

type PaymentListResponse struct {
	Results []*models.Payment `json:"results"`
	Total   int               `json:"total"`
}

type ReportStatsResponse struct {
	ByStatus       StatusCountsDTO `json:"by_status"`
	TotalPayments  int             `json:"total_payments"`
	TotalCollected float64         `json:"total_collected"`
	TotalBilled    float64         `json:"total_billed"`
	CollectionRate float64         `json:"collection_rate"`
}

type ReportSeriesResponse struct {
	Collected []listview.SeriesPoint `json:"collected"`
}

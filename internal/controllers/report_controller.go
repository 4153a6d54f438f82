package controllers

import (
	"net/http"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/services"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type ReportController struct {
	reportService *services.ReportService
}

func NewReportController(s *services.ReportService) *ReportController {
	return &ReportController{reportService: s}
}

func paymentFacetNames() []string {
	return []string{"status", "period", "property_id"}
}

// GET /api/v1/dashboard/reports/payments
func (c *ReportController) ListHandler(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actor(w, r)
	if !ok {
		return
	}
	cfg := listConfigFromQuery(r, paymentFacetNames()...)
	resp, err := c.reportService.List(r.Context(), actorID, role, cfg)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/dashboard/reports/stats
func (c *ReportController) StatsHandler(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actor(w, r)
	if !ok {
		return
	}
	resp, err := c.reportService.Stats(r.Context(), actorID, role)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/dashboard/reports/series
func (c *ReportController) SeriesHandler(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actor(w, r)
	if !ok {
		return
	}
	resp, err := c.reportService.Series(r.Context(), actorID, role)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PUT /api/v1/dashboard/reports/payments/{id}/status
func (c *ReportController) SetStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.SetPaymentStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.reportService.SetStatus(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// GET /api/v1/dashboard/reports/export
func (c *ReportController) ExportHandler(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actor(w, r)
	if !ok {
		return
	}
	cfg := listConfigFromQuery(r, paymentFacetNames()...)
	files, err := c.reportService.Export(r.Context(), actorID, role, cfg, exportFiltered(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ExportResponse{Files: files})
}

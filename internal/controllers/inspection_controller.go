package controllers

import (
	"net/http"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/services"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type InspectionController struct {
	inspectionService *services.InspectionService
}

func NewInspectionController(s *services.InspectionService) *InspectionController {
	return &InspectionController{inspectionService: s}
}

func inspectionFacetNames() []string {
	return []string{"status", "kind", "property_id"}
}

// GET /api/v1/dashboard/inspections
func (c *InspectionController) ListHandler(w http.ResponseWriter, r *http.Request) {
	cfg := listConfigFromQuery(r, inspectionFacetNames()...)
	resp, err := c.inspectionService.List(r.Context(), cfg)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/dashboard/inspections/stats
func (c *InspectionController) StatsHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.inspectionService.Stats(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// POST /api/v1/dashboard/inspections
func (c *InspectionController) ScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ScheduleInspectionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.inspectionService.Schedule(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// PUT /api/v1/dashboard/inspections/{id}/status
func (c *InspectionController) SetStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.SetInspectionStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.inspectionService.SetStatus(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/dashboard/inspections/{id}
func (c *InspectionController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.inspectionService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteResponse{Deleted: true})
}

// GET /api/v1/dashboard/inspections/export
func (c *InspectionController) ExportHandler(w http.ResponseWriter, r *http.Request) {
	cfg := listConfigFromQuery(r, inspectionFacetNames()...)
	files, err := c.inspectionService.Export(r.Context(), cfg, exportFiltered(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ExportResponse{Files: files})
}

package controllers

import (
	"net/http"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/services"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
}

func NewMaintenanceController(s *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{maintenanceService: s}
}

func maintenanceFacetNames() []string {
	return []string{"status", "priority", "category", "property_id"}
}

// GET /api/v1/dashboard/maintenance
func (c *MaintenanceController) ListHandler(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actor(w, r)
	if !ok {
		return
	}
	cfg := listConfigFromQuery(r, maintenanceFacetNames()...)
	resp, err := c.maintenanceService.List(r.Context(), actorID, role, cfg)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/dashboard/maintenance/stats
func (c *MaintenanceController) StatsHandler(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actor(w, r)
	if !ok {
		return
	}
	resp, err := c.maintenanceService.Stats(r.Context(), actorID, role)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// POST /api/v1/dashboard/maintenance
func (c *MaintenanceController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actor(w, r)
	if !ok {
		return
	}
	var req dtos.CreateMaintenanceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.maintenanceService.Create(r.Context(), actorID, role, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// PATCH /api/v1/dashboard/maintenance/{id}
func (c *MaintenanceController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateMaintenanceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.maintenanceService.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// PUT /api/v1/dashboard/maintenance/{id}/status
func (c *MaintenanceController) SetStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.SetRequestStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.maintenanceService.SetStatus(r.Context(), id, models.RequestStatusType(req.Status))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/dashboard/maintenance/{id}
func (c *MaintenanceController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.maintenanceService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteResponse{Deleted: true})
}

// GET /api/v1/dashboard/maintenance/export
func (c *MaintenanceController) ExportHandler(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actor(w, r)
	if !ok {
		return
	}
	cfg := listConfigFromQuery(r, maintenanceFacetNames()...)
	files, err := c.maintenanceService.Export(r.Context(), actorID, role, cfg, exportFiltered(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ExportResponse{Files: files})
}

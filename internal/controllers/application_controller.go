package controllers

import (
	"net/http"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/services"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type ApplicationController struct {
	applicationService *services.ApplicationService
}

func NewApplicationController(s *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: s}
}

func applicationFacetNames() []string {
	return []string{"status", "property_id"}
}

// GET /api/v1/dashboard/applications
func (c *ApplicationController) ListHandler(w http.ResponseWriter, r *http.Request) {
	cfg := listConfigFromQuery(r, applicationFacetNames()...)
	resp, err := c.applicationService.List(r.Context(), cfg)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/dashboard/applications/{id}
func (c *ApplicationController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	app, err := c.applicationService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, app)
}

// POST /api/v1/dashboard/applications
func (c *ApplicationController) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.SubmitApplicationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.applicationService.Submit(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// PUT /api/v1/dashboard/applications/{id}/decision
func (c *ApplicationController) DecideHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.DecideApplicationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.applicationService.Decide(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/dashboard/applications/{id}
func (c *ApplicationController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.applicationService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteResponse{Deleted: true})
}

package controllers

import (
	"net/http"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/services"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: s}
}

func reviewFacetNames() []string {
	return []string{"status", "rating", "property_id"}
}

// GET /api/v1/dashboard/reviews
func (c *ReviewController) ListHandler(w http.ResponseWriter, r *http.Request) {
	cfg := listConfigFromQuery(r, reviewFacetNames()...)
	resp, err := c.reviewService.List(r.Context(), cfg)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/dashboard/reviews/stats
func (c *ReviewController) StatsHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.reviewService.Stats(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// POST /api/v1/dashboard/reviews
func (c *ReviewController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actor(w, r)
	if !ok {
		return
	}
	var req dtos.CreateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	// Display name comes from the tenant's profile in the full product;
	// here the id doubles as the name.
	created, err := c.reviewService.Create(r.Context(), actorID, actorID.String(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// POST /api/v1/dashboard/reviews/{id}/respond
func (c *ReviewController) RespondHandler(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.RespondReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.reviewService.Respond(r.Context(), id, actorID, req.Response)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// PUT /api/v1/dashboard/reviews/{id}/hide
func (c *ReviewController) HideHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	updated, err := c.reviewService.Hide(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/dashboard/reviews/{id}
func (c *ReviewController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.reviewService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteResponse{Deleted: true})
}

// GET /api/v1/dashboard/reviews/export
func (c *ReviewController) ExportHandler(w http.ResponseWriter, r *http.Request) {
	cfg := listConfigFromQuery(r, reviewFacetNames()...)
	files, err := c.reviewService.Export(r.Context(), cfg, exportFiltered(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ExportResponse{Files: files})
}

package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/repositories"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

// SavedFilterController persists named filter configurations per user
// and feature. Thin enough that it talks to the repository directly.
type SavedFilterController struct {
	repo repositories.SavedFilterRepository
}

func NewSavedFilterController(repo repositories.SavedFilterRepository) *SavedFilterController {
	return &SavedFilterController{repo: repo}
}

// GET /api/v1/dashboard/filters?feature=maintenance
func (c *SavedFilterController) ListHandler(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actor(w, r)
	if !ok {
		return
	}
	feature := r.URL.Query().Get("feature")
	results, err := c.repo.ListByOwnerAndFeature(r.Context(), actorID, feature)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if results == nil {
		results = []*models.SavedFilter{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SavedFilterListResponse{Results: results, Total: len(results)})
}

// POST /api/v1/dashboard/filters
func (c *SavedFilterController) SaveHandler(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actor(w, r)
	if !ok {
		return
	}
	var req dtos.SaveFilterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	sf := &models.SavedFilter{
		OwnerID: actorID,
		Feature: req.Feature,
		Name:    req.Name,
		Facets:  req.Facets,
		Search:  req.Search,
	}
	sf.ID = uuid.New()
	if err := c.repo.Create(r.Context(), sf); err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, sf)
}

// DELETE /api/v1/dashboard/filters/{id}
func (c *SavedFilterController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sf, err := c.repo.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if sf.OwnerID != actorID {
		handleServiceError(w, utils.ErrForbidden)
		return
	}
	if err := c.repo.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteResponse{Deleted: true})
}

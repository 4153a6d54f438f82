package controllers

import (
	"net/http"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/services"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type DocumentController struct {
	documentService *services.DocumentService
}

func NewDocumentController(s *services.DocumentService) *DocumentController {
	return &DocumentController{documentService: s}
}

// GET /api/v1/dashboard/documents/folders
func (c *DocumentController) ListFoldersHandler(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actor(w, r)
	if !ok {
		return
	}
	resp, err := c.documentService.ListFolders(r.Context(), actorID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// POST /api/v1/dashboard/documents/folders
func (c *DocumentController) CreateFolderHandler(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actor(w, r)
	if !ok {
		return
	}
	var req dtos.CreateFolderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.documentService.CreateFolder(r.Context(), actorID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// GET /api/v1/dashboard/documents/folders/{id}/files
// Protected folders take the access password via X-Folder-Password so
// it never lands in access logs as a query string.
func (c *DocumentController) OpenFolderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	password := r.Header.Get("X-Folder-Password")
	resp, err := c.documentService.OpenFolder(r.Context(), id, password)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DELETE /api/v1/dashboard/documents/folders/{id}
func (c *DocumentController) DeleteFolderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.documentService.DeleteFolder(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteResponse{Deleted: true})
}

// POST /api/v1/dashboard/documents/upload
func (c *DocumentController) UploadHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UploadDocumentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	doc, err := c.documentService.Upload(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, doc)
}

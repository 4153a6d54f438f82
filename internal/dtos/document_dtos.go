package dtos

import (
	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type CreateFolderRequest struct {
	Name            string `json:"name" validate:"required,max=80"`
	Password        string `json:"password,omitempty" validate:"omitempty,min=4"`
	ConfirmPassword string `json:"confirm_password,omitempty" validate:"eqfield=Password"`
}

type UploadDocumentRequest struct {
	FolderID  uuid.UUID `json:"folder_id" validate:"required"`
	FileName  string    `json:"file_name" validate:"required,max=200"`
	SizeBytes int64     `json:"size_bytes" validate:"min=0"`
}

type FolderListResponse struct {
	Results []*models.DocumentFolder `json:"results"`
	Total   int                      `json:"total"`
}

type DocumentListResponse struct {
	Results []*models.Document `json:"results"`
	Total   int                `json:"total"`
}

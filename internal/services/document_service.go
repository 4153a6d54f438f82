package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/repositories"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type DocumentService struct {
	folders     repositories.DocumentFolderRepository
	documents   repositories.DocumentRepository
	uploadDelay time.Duration
}

func NewDocumentService(folders repositories.DocumentFolderRepository, documents repositories.DocumentRepository, uploadDelay time.Duration) *DocumentService {
	return &DocumentService{folders: folders, documents: documents, uploadDelay: uploadDelay}
}

func hashFolderPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *DocumentService) CreateFolder(ctx context.Context, ownerID uuid.UUID, req dtos.CreateFolderRequest) (*models.DocumentFolder, error) {
	f := &models.DocumentFolder{
		OwnerID: ownerID,
		Name:    req.Name,
	}
	f.ID = uuid.New()
	if req.Password != "" {
		f.Protected = true
		f.PasswordHash = hashFolderPassword(req.Password)
	}
	if err := s.folders.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *DocumentService) ListFolders(ctx context.Context, ownerID uuid.UUID) (*dtos.FolderListResponse, error) {
	folders, err := s.folders.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if folders == nil {
		folders = []*models.DocumentFolder{}
	}
	return &dtos.FolderListResponse{Results: folders, Total: len(folders)}, nil
}

// OpenFolder returns the folder's documents. Protected folders require
// the access password; a wrong or missing password is a forbidden
// error, not an empty listing.
func (s *DocumentService) OpenFolder(ctx context.Context, folderID uuid.UUID, password string) (*dtos.DocumentListResponse, error) {
	folder, err := s.folders.GetByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder.Protected && hashFolderPassword(password) != folder.PasswordHash {
		return nil, utils.ErrForbidden
	}

	docs, err := s.documents.ListByFolderID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []*models.Document{}
	}
	return &dtos.DocumentListResponse{Results: docs, Total: len(docs)}, nil
}

func (s *DocumentService) DeleteFolder(ctx context.Context, folderID uuid.UUID) error {
	docs, err := s.documents.ListByFolderID(ctx, folderID)
	if err != nil {
		return err
	}
	for _, d := range docs {
		if err := s.documents.Delete(ctx, d.ID); err != nil {
			return err
		}
	}
	return s.folders.Delete(ctx, folderID)
}

// Upload registers the document as UPLOADING, waits out the simulated
// transfer, then settles it. Cancellation mid-transfer marks the record
// CANCELED rather than leaving it stuck in UPLOADING.
func (s *DocumentService) Upload(ctx context.Context, req dtos.UploadDocumentRequest) (*models.Document, error) {
	if _, err := s.folders.GetByID(ctx, req.FolderID); err != nil {
		return nil, err
	}

	doc := &models.Document{
		FolderID:  req.FolderID,
		FileName:  req.FileName,
		SizeBytes: req.SizeBytes,
		Status:    models.UploadStatusUploading,
	}
	doc.ID = uuid.New()
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	timer := time.NewTimer(s.uploadDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		settleCtx := context.WithoutCancel(ctx)
		_ = s.documents.UpdateWithRetry(settleCtx, doc.ID, func(d *models.Document) error {
			if d.Status.CanTransitionTo(models.UploadStatusCanceled) {
				d.Status = models.UploadStatusCanceled
			}
			return nil
		})
		return nil, ctx.Err()
	}

	err := s.documents.UpdateWithRetry(ctx, doc.ID, func(d *models.Document) error {
		if d.Status.CanTransitionTo(models.UploadStatusAvailable) {
			d.Status = models.UploadStatusAvailable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.documents.GetByID(ctx, doc.ID)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	return s.documents.Delete(ctx, id)
}

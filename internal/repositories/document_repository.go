package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
)

type DocumentFolderRepository interface {
	Create(ctx context.Context, f *models.DocumentFolder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DocumentFolder, error)
	List(ctx context.Context) ([]*models.DocumentFolder, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.DocumentFolder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DocumentRepository interface {
	Create(ctx context.Context, d *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	ListByFolderID(ctx context.Context, folderID uuid.UUID) ([]*models.Document, error)
	Update(ctx context.Context, d *models.Document) error
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Document) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentFolderRepo struct {
	col *Collection[*models.DocumentFolder]
}

func NewDocumentFolderRepository() DocumentFolderRepository {
	return &documentFolderRepo{col: NewCollection[*models.DocumentFolder]()}
}

func (r *documentFolderRepo) Create(ctx context.Context, f *models.DocumentFolder) error {
	return r.col.Create(ctx, f)
}

func (r *documentFolderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.DocumentFolder, error) {
	return r.col.GetByID(ctx, id.String())
}

func (r *documentFolderRepo) List(ctx context.Context) ([]*models.DocumentFolder, error) {
	return r.col.List(ctx)
}

func (r *documentFolderRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.DocumentFolder, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.DocumentFolder
	for _, f := range all {
		if f.OwnerID == ownerID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *documentFolderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.Delete(ctx, id.String())
}

type documentRepo struct {
	col *Collection[*models.Document]
}

func NewDocumentRepository() DocumentRepository {
	return &documentRepo{col: NewCollection[*models.Document]()}
}

func (r *documentRepo) Create(ctx context.Context, d *models.Document) error {
	return r.col.Create(ctx, d)
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	return r.col.GetByID(ctx, id.String())
}

func (r *documentRepo) ListByFolderID(ctx context.Context, folderID uuid.UUID) ([]*models.Document, error) {
	all, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Document
	for _, d := range all {
		if d.FolderID == folderID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *documentRepo) Update(ctx context.Context, d *models.Document) error {
	return r.col.Update(ctx, d)
}

func (r *documentRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Document) error) error {
	return r.col.UpdateWithRetry(ctx, id.String(), mutate)
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.Delete(ctx, id.String())
}

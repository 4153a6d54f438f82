package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellfront/dashboard-service/internal/dtos"
	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/repositories"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

func newDocumentFixture(t *testing.T, delay time.Duration) (*DocumentService, repositories.DocumentRepository) {
	t.Helper()
	folders := repositories.NewDocumentFolderRepository()
	documents := repositories.NewDocumentRepository()
	return NewDocumentService(folders, documents, delay), documents
}

func TestUploadSettlesAvailable(t *testing.T) {
	svc, _ := newDocumentFixture(t, 0)
	ctx := context.Background()

	folder, err := svc.CreateFolder(ctx, uuid.New(), dtos.CreateFolderRequest{Name: "Leases"})
	require.NoError(t, err)

	doc, err := svc.Upload(ctx, dtos.UploadDocumentRequest{
		FolderID:  folder.ID,
		FileName:  "lease.pdf",
		SizeBytes: 1024,
	})
	require.NoError(t, err)
	assert.Equal(t, models.UploadStatusAvailable, doc.Status)
}

func TestUploadCancellationMarksCanceled(t *testing.T) {
	svc, documents := newDocumentFixture(t, 5*time.Second)

	folder, err := svc.CreateFolder(context.Background(), uuid.New(), dtos.CreateFolderRequest{Name: "Leases"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = svc.Upload(ctx, dtos.UploadDocumentRequest{
		FolderID:  folder.ID,
		FileName:  "big-scan.pdf",
		SizeBytes: 50 << 20,
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// the record is settled as CANCELED, not stuck UPLOADING
	docs, err := documents.ListByFolderID(context.Background(), folder.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, models.UploadStatusCanceled, docs[0].Status)
}

func TestUploadIntoMissingFolderFails(t *testing.T) {
	svc, _ := newDocumentFixture(t, 0)

	_, err := svc.Upload(context.Background(), dtos.UploadDocumentRequest{
		FolderID: uuid.New(),
		FileName: "orphan.pdf",
	})
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestProtectedFolderRequiresPassword(t *testing.T) {
	svc, _ := newDocumentFixture(t, 0)
	ctx := context.Background()
	ownerID := uuid.New()

	folder, err := svc.CreateFolder(ctx, ownerID, dtos.CreateFolderRequest{
		Name:            "Tax documents",
		Password:        "hunter2",
		ConfirmPassword: "hunter2",
	})
	require.NoError(t, err)
	assert.True(t, folder.Protected)
	assert.NotEmpty(t, folder.PasswordHash)
	assert.NotContains(t, folder.PasswordHash, "hunter2")

	_, err = svc.OpenFolder(ctx, folder.ID, "wrong")
	require.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.OpenFolder(ctx, folder.ID, "")
	require.ErrorIs(t, err, utils.ErrForbidden)

	resp, err := svc.OpenFolder(ctx, folder.ID, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
}

func TestDeleteFolderRemovesDocuments(t *testing.T) {
	svc, documents := newDocumentFixture(t, 0)
	ctx := context.Background()

	folder, err := svc.CreateFolder(ctx, uuid.New(), dtos.CreateFolderRequest{Name: "Scratch"})
	require.NoError(t, err)

	_, err = svc.Upload(ctx, dtos.UploadDocumentRequest{FolderID: folder.ID, FileName: "a.pdf"})
	require.NoError(t, err)
	_, err = svc.Upload(ctx, dtos.UploadDocumentRequest{FolderID: folder.ID, FileName: "b.pdf"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFolder(ctx, folder.ID))

	docs, err := documents.ListByFolderID(ctx, folder.ID)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = svc.OpenFolder(ctx, folder.ID, "")
	require.ErrorIs(t, err, utils.ErrNotFound)
}

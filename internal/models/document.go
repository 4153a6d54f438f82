package models

import (
	"github.com/google/uuid"
)

type UploadStatusType string

const (
	UploadStatusUploading UploadStatusType = "UPLOADING"
	UploadStatusAvailable UploadStatusType = "AVAILABLE"
	UploadStatusFailed    UploadStatusType = "FAILED"
	UploadStatusCanceled  UploadStatusType = "CANCELED"
)

var uploadTransitions = map[UploadStatusType][]UploadStatusType{
	UploadStatusUploading: {UploadStatusAvailable, UploadStatusFailed, UploadStatusCanceled},
	UploadStatusAvailable: {},
	UploadStatusFailed:    {},
	UploadStatusCanceled:  {},
}

func (s UploadStatusType) CanTransitionTo(next UploadStatusType) bool {
	for _, allowed := range uploadTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DocumentFolder is a vault folder. Protected folders keep a hash of the
// access password, never the password itself.
type DocumentFolder struct {
	Record

	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	Protected    bool      `json:"protected"`
	PasswordHash string    `json:"-"`
}

func (f *DocumentFolder) Clone() *DocumentFolder {
	cp := *f
	return &cp
}

type Document struct {
	Record

	FolderID  uuid.UUID        `json:"folder_id"`
	FileName  string           `json:"file_name"`
	SizeBytes int64            `json:"size_bytes"`
	Status    UploadStatusType `json:"status"`
}

func (d *Document) Clone() *Document {
	cp := *d
	return &cp
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Record carries the identity and bookkeeping fields shared by every
// collection entity. Embed it anonymously.
type Record struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Versioned
}

func (r *Record) GetID() string { return r.ID.String() }

func (r *Record) StampCreated(t time.Time) {
	r.CreatedAt = t
	r.UpdatedAt = t
}

func (r *Record) StampUpdated(t time.Time) {
	r.UpdatedAt = t
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type ReviewStatusType string

const (
	ReviewStatusPublished ReviewStatusType = "PUBLISHED"
	ReviewStatusResponded ReviewStatusType = "RESPONDED"
	ReviewStatusHidden    ReviewStatusType = "HIDDEN"
)

var reviewTransitions = map[ReviewStatusType][]ReviewStatusType{
	ReviewStatusPublished: {ReviewStatusResponded, ReviewStatusHidden},
	ReviewStatusResponded: {ReviewStatusHidden},
	ReviewStatusHidden:    {},
}

func (s ReviewStatusType) CanTransitionTo(next ReviewStatusType) bool {
	for _, allowed := range reviewTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ReviewStatuses() []ReviewStatusType {
	return []ReviewStatusType{
		ReviewStatusPublished,
		ReviewStatusResponded,
		ReviewStatusHidden,
	}
}

// Review is a tenant rating of a property, optionally answered by the
// manager or landlord.
type Review struct {
	Record

	PropertyID uuid.UUID        `json:"property_id"`
	TenantID   uuid.UUID        `json:"tenant_id"`
	TenantName string           `json:"tenant_name"`
	Rating     int              `json:"rating"` // 1..5
	Title      string           `json:"title"`
	Comment    string           `json:"comment"`
	Status     ReviewStatusType `json:"status"`

	Response    string     `json:"response,omitempty"`
	RespondedBy *uuid.UUID `json:"responded_by,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func (r *Review) Clone() *Review {
	cp := *r
	if r.RespondedBy != nil {
		id := *r.RespondedBy
		cp.RespondedBy = &id
	}
	if r.RespondedAt != nil {
		t := *r.RespondedAt
		cp.RespondedAt = &t
	}
	return &cp
}

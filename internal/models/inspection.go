package models

import (
	"time"

	"github.com/google/uuid"
)

type InspectionStatusType string

const (
	InspectionStatusScheduled  InspectionStatusType = "SCHEDULED"
	InspectionStatusInProgress InspectionStatusType = "IN_PROGRESS"
	InspectionStatusCompleted  InspectionStatusType = "COMPLETED"
	InspectionStatusCanceled   InspectionStatusType = "CANCELED"
)

type InspectionKindType string

const (
	InspectionKindMoveIn  InspectionKindType = "MOVE_IN"
	InspectionKindMoveOut InspectionKindType = "MOVE_OUT"
	InspectionKindRoutine InspectionKindType = "ROUTINE"
)

var inspectionTransitions = map[InspectionStatusType][]InspectionStatusType{
	InspectionStatusScheduled:  {InspectionStatusInProgress, InspectionStatusCanceled},
	InspectionStatusInProgress: {InspectionStatusCompleted, InspectionStatusCanceled},
	InspectionStatusCompleted:  {},
	InspectionStatusCanceled:   {},
}

func (s InspectionStatusType) CanTransitionTo(next InspectionStatusType) bool {
	for _, allowed := range inspectionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func InspectionStatuses() []InspectionStatusType {
	return []InspectionStatusType{
		InspectionStatusScheduled,
		InspectionStatusInProgress,
		InspectionStatusCompleted,
		InspectionStatusCanceled,
	}
}

type Inspection struct {
	Record

	PropertyID    uuid.UUID            `json:"property_id"`
	UnitNumber    string               `json:"unit_number"`
	InspectorName string               `json:"inspector_name"`
	Kind          InspectionKindType   `json:"kind"`
	Status        InspectionStatusType `json:"status"`
	ScheduledFor  time.Time            `json:"scheduled_for"`

	Findings string `json:"findings,omitempty"`
	Score    int    `json:"score,omitempty"` // 0..100, set on completion
}

func (i *Inspection) Clone() *Inspection {
	cp := *i
	return &cp
}

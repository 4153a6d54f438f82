package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatusType string

const (
	PaymentStatusDue      PaymentStatusType = "DUE"
	PaymentStatusPaid     PaymentStatusType = "PAID"
	PaymentStatusOverdue  PaymentStatusType = "OVERDUE"
	PaymentStatusRefunded PaymentStatusType = "REFUNDED"
)

var paymentTransitions = map[PaymentStatusType][]PaymentStatusType{
	PaymentStatusDue:      {PaymentStatusPaid, PaymentStatusOverdue},
	PaymentStatusOverdue:  {PaymentStatusPaid},
	PaymentStatusPaid:     {PaymentStatusRefunded},
	PaymentStatusRefunded: {},
}

func (s PaymentStatusType) CanTransitionTo(next PaymentStatusType) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func PaymentStatuses() []PaymentStatusType {
	return []PaymentStatusType{
		PaymentStatusDue,
		PaymentStatusPaid,
		PaymentStatusOverdue,
		PaymentStatusRefunded,
	}
}

// Payment is one rent charge for a unit in a billing period. Amount keeps
// the display form ("$2,100.00"); reducers parse it tolerantly.
type Payment struct {
	Record

	PropertyID uuid.UUID         `json:"property_id"`
	TenantID   uuid.UUID         `json:"tenant_id"`
	UnitNumber string            `json:"unit_number"`
	Period     string            `json:"period"` // "2026-08"
	Amount     string            `json:"amount"`
	Method     string            `json:"method,omitempty"`
	Status     PaymentStatusType `json:"status"`
	PaidAt     *time.Time        `json:"paid_at,omitempty"`
}

func (p *Payment) Clone() *Payment {
	cp := *p
	if p.PaidAt != nil {
		t := *p.PaidAt
		cp.PaidAt = &t
	}
	return &cp
}

package models

import (
	"github.com/google/uuid"
)

type Property struct {
	Record

	LandlordID   uuid.UUID `json:"landlord_id"`
	ManagerID    uuid.UUID `json:"manager_id"`
	PropertyName string    `json:"property_name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	UnitCount    int       `json:"unit_count"`
	IsDemo       bool      `json:"is_demo"`
}

func (p *Property) Clone() *Property {
	cp := *p
	return &cp
}

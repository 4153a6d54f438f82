package models

import (
	"github.com/google/uuid"
)

// SavedFilter is a named filter configuration a user pinned for one of
// the list screens. Facets holds facet name -> selected value; an empty
// value means unconstrained.
type SavedFilter struct {
	Record

	OwnerID uuid.UUID         `json:"owner_id"`
	Feature string            `json:"feature"` // "maintenance", "reviews", ...
	Name    string            `json:"name"`
	Facets  map[string]string `json:"facets"`
	Search  string            `json:"search,omitempty"`
}

func (s *SavedFilter) Clone() *SavedFilter {
	cp := *s
	if s.Facets != nil {
		cp.Facets = make(map[string]string, len(s.Facets))
		for k, v := range s.Facets {
			cp.Facets[k] = v
		}
	}
	return &cp
}

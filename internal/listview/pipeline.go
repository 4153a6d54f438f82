package listview

import "time"

// Pipeline is one screen's wiring of the generic stages: its facet
// extractors, its searched fields, and the date field used for range
// filtering and chronological sort.
type Pipeline[T any] struct {
	Facets       []Facet[T]
	SearchFields []func(T) string
	DateOf       func(T) time.Time
}

// View computes the derived view for the current filter state:
// facet filter, then date range, then search, then newest-first sort.
// Filter and search commute, so the staging order is a convention, not
// a semantic choice.
func (p Pipeline[T]) View(records []T, cfg Config) []T {
	out := Filter(records, p.Facets, cfg.Facets)
	if p.DateOf != nil {
		out = FilterDateRange(out, p.DateOf, cfg.FromISO, cfg.ToISO)
	}
	out = Search(out, cfg.Search, p.SearchFields)
	if p.DateOf != nil {
		out = SortNewestFirst(out, p.DateOf)
	}
	return out
}

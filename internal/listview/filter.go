// Package listview implements the shared list-screen pipeline: facet
// filter, text search, sort, and aggregate stats over an in-memory
// collection. Every stage is pure and order-preserving; screens differ
// only in their facet and field extractors.
package listview

import (
	"strings"
	"time"
)

// Facet is one named filter dimension (category, status, priority, ...)
// with an extractor producing the record's value for that dimension.
type Facet[T any] struct {
	Name  string
	Value func(T) string
}

// Config is the flat filter state for one screen. An empty facet value
// means unconstrained. FromISO/ToISO bound an optional date facet,
// inclusive on both ends, as "2006-01-02" strings.
type Config struct {
	Facets  map[string]string
	Search  string
	FromISO string
	ToISO   string
}

// Unconstrained reports whether a selected facet value places no
// constraint. The canonical neutral value is ""; the legacy "All X"
// sentinel from the UI layer is honored as well so both conventions
// behave identically.
func Unconstrained(v string) bool {
	return v == "" || strings.HasPrefix(v, "All ")
}

// Filter reduces records to those matching every selected facet value.
// Conjunctive across facets; facet values compare as exact strings after
// trimming, so numeric-looking values must be rendered consistently by
// the extractor. Relative order is preserved.
func Filter[T any](records []T, facets []Facet[T], selected map[string]string) []T {
	active := make([]Facet[T], 0, len(facets))
	want := make([]string, 0, len(facets))
	for _, f := range facets {
		v, ok := selected[f.Name]
		if !ok || Unconstrained(v) {
			continue
		}
		active = append(active, f)
		want = append(want, strings.TrimSpace(v))
	}
	if len(active) == 0 {
		out := make([]T, 0, len(records))
		return append(out, records...)
	}

	var out []T
	for _, rec := range records {
		match := true
		for i, f := range active {
			if strings.TrimSpace(f.Value(rec)) != want[i] {
				match = false
				break
			}
		}
		if match {
			out = append(out, rec)
		}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// FilterDateRange keeps records whose date falls inside the inclusive
// [from, to] day range. An empty or unparseable bound is treated as
// unconstrained on that side.
func FilterDateRange[T any](records []T, dateOf func(T) time.Time, fromISO, toISO string) []T {
	from, haveFrom := parseISODate(fromISO)
	to, haveTo := parseISODate(toISO)
	if !haveFrom && !haveTo {
		out := make([]T, 0, len(records))
		return append(out, records...)
	}
	// half-open upper bound: to + 1 day
	if haveTo {
		to = to.AddDate(0, 0, 1)
	}

	out := []T{}
	for _, rec := range records {
		d := dateOf(rec)
		if haveFrom && d.Before(from) {
			continue
		}
		if haveTo && !d.Before(to) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func parseISODate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

package listview

import (
	"sort"
	"time"
)

// SortNewestFirst returns a copy of records ordered by descending date.
// The sort is stable, so records sharing a date keep their collection
// order.
func SortNewestFirst[T any](records []T, dateOf func(T) time.Time) []T {
	out := make([]T, 0, len(records))
	out = append(out, records...)
	sort.SliceStable(out, func(i, j int) bool {
		return dateOf(out[i]).After(dateOf(out[j]))
	})
	return out
}

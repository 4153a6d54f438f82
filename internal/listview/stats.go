package listview

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// StatusCounts partitions a collection by status. Statuses outside the
// declared enum land in Other so the buckets always sum to Total.
type StatusCounts struct {
	Counts map[string]int `json:"counts"`
	Other  int            `json:"other"`
	Total  int            `json:"total"`
}

// CountByStatus folds the full collection into per-status buckets
// against the declared enum.
func CountByStatus[T any](records []T, statusOf func(T) string, enum []string) StatusCounts {
	sc := StatusCounts{
		Counts: make(map[string]int, len(enum)),
		Total:  len(records),
	}
	for _, s := range enum {
		sc.Counts[s] = 0
	}
	known := make(map[string]bool, len(enum))
	for _, s := range enum {
		known[s] = true
	}
	for _, rec := range records {
		s := statusOf(rec)
		if known[s] {
			sc.Counts[s]++
		} else {
			sc.Other++
		}
	}
	return sc
}

var nonNumericRe = regexp.MustCompile(`[^0-9.\-]`)

// ParseAmount parses a currency-like display string ("$1,250.00") into
// a float. Missing or unparseable values contribute zero.
func ParseAmount(raw string) float64 {
	stripped := nonNumericRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if stripped == "" {
		return 0
	}
	v, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0
	}
	return v
}

// SumAmount folds a currency-like string field over the full
// collection.
func SumAmount[T any](records []T, amountOf func(T) string) float64 {
	var total float64
	for _, rec := range records {
		total += ParseAmount(amountOf(rec))
	}
	return total
}

// Percentage computes part/total*100 with a zero-denominator guard.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// MonthlySeries folds records into {x,y} points per "2006-01" month,
// summing the amount field, sorted chronologically. Chart layers
// consume it directly.
type SeriesPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

func MonthlySeries[T any](records []T, dateOf func(T) time.Time, amountOf func(T) string) []SeriesPoint {
	sums := make(map[string]float64)
	for _, rec := range records {
		key := dateOf(rec).Format("2006-01")
		sums[key] += ParseAmount(amountOf(rec))
	}
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	// lexicographic order is chronological for "2006-01" keys
	sort.Strings(keys)

	out := make([]SeriesPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, SeriesPoint{X: k, Y: sums[k]})
	}
	return out
}

package listview

import "strings"

// Search keeps records where the query is a case-insensitive substring
// of at least one searched field (OR across fields). The query is
// trimmed before matching; an empty query passes everything. Relative
// order is preserved.
func Search[T any](records []T, query string, fields []func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]T, 0, len(records))
		return append(out, records...)
	}

	out := []T{}
	for _, rec := range records {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(rec)), q) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

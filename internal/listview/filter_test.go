package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID       int
	Title    string
	Status   string
	Priority string
	Date     time.Time
}

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func testFacets() []Facet[testRecord] {
	return []Facet[testRecord]{
		{Name: "status", Value: func(r testRecord) string { return r.Status }},
		{Name: "priority", Value: func(r testRecord) string { return r.Priority }},
	}
}

func testSearchFields() []func(testRecord) string {
	return []func(testRecord) string{
		func(r testRecord) string { return r.Title },
		func(r testRecord) string { return r.Status },
	}
}

func sampleRecords() []testRecord {
	return []testRecord{
		{ID: 1, Title: "Leaky faucet", Status: "OPEN", Priority: "HIGH", Date: day(1)},
		{ID: 2, Title: "Broken heater", Status: "OPEN", Priority: "LOW", Date: day(3)},
		{ID: 3, Title: "Paint hallway", Status: "IN_PROGRESS", Priority: "LOW", Date: day(2)},
		{ID: 4, Title: "Replace lock", Status: "COMPLETED", Priority: "HIGH", Date: day(5)},
		{ID: 5, Title: "Inspect roof", Status: "PENDING", Priority: "MEDIUM", Date: day(4)},
	}
}

func ids(records []testRecord) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterIsOrderPreservingSubset(t *testing.T) {
	records := sampleRecords()

	got := Filter(records, testFacets(), map[string]string{"status": "OPEN"})

	require.Equal(t, []int{1, 2}, ids(got))
	for _, r := range got {
		assert.Equal(t, "OPEN", r.Status)
	}
}

func TestFilterConjunctiveAcrossFacets(t *testing.T) {
	records := sampleRecords()

	got := Filter(records, testFacets(), map[string]string{
		"status":   "OPEN",
		"priority": "LOW",
	})

	require.Equal(t, []int{2}, ids(got))
}

func TestAllSentinelIsNeutral(t *testing.T) {
	records := sampleRecords()

	withSentinel := Filter(records, testFacets(), map[string]string{"status": "All Statuses"})
	withEmpty := Filter(records, testFacets(), map[string]string{"status": ""})
	withNothing := Filter(records, testFacets(), map[string]string{})

	assert.Equal(t, ids(withNothing), ids(withSentinel))
	assert.Equal(t, ids(withNothing), ids(withEmpty))
	assert.Equal(t, ids(records), ids(withNothing))
}

func TestSearchCommutesWithFilter(t *testing.T) {
	records := sampleRecords()
	facets := testFacets()
	fields := testSearchFields()
	selected := map[string]string{"priority": "LOW"}

	for _, query := range []string{"", "e", "heater", "open", "zzz"} {
		searchThenFilter := Filter(Search(records, query, fields), facets, selected)
		filterThenSearch := Search(Filter(records, facets, selected), query, fields)
		assert.Equal(t, ids(filterThenSearch), ids(searchThenFilter), "query %q", query)
	}
}

func TestSearchTrimsWhitespaceQuery(t *testing.T) {
	records := sampleRecords()

	// "  heater " matches like "heater"; a pure-whitespace query is
	// treated as empty rather than matching every record with a space.
	assert.Equal(t, []int{2}, ids(Search(records, "  heater ", testSearchFields())))
	assert.Equal(t, ids(records), ids(Search(records, "   ", testSearchFields())))
}

func TestSearchCaseInsensitiveAcrossFields(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, []int{1}, ids(Search(records, "FAUCET", testSearchFields())))
	// matches Status field, not Title
	assert.Equal(t, []int{5}, ids(Search(records, "pending", testSearchFields())))
}

func TestSearchNoMatchYieldsEmptyNotNil(t *testing.T) {
	got := Search(sampleRecords(), "nothing-here", testSearchFields())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDateRangeInclusiveBounds(t *testing.T) {
	records := sampleRecords()
	dateOf := func(r testRecord) time.Time { return r.Date }

	got := FilterDateRange(records, dateOf, "2026-08-02", "2026-08-04")
	assert.Equal(t, []int{2, 3, 5}, ids(got))

	// open-ended sides
	assert.Equal(t, []int{4, 5}, ids(FilterDateRange(records, dateOf, "2026-08-04", "")))
	assert.Equal(t, []int{1, 3}, ids(FilterDateRange(records, dateOf, "", "2026-08-02")))

	// unparseable bounds are unconstrained
	assert.Equal(t, ids(records), ids(FilterDateRange(records, dateOf, "not-a-date", "also-bad")))
}

func TestSortNewestFirstIsStable(t *testing.T) {
	records := []testRecord{
		{ID: 1, Date: day(2)},
		{ID: 2, Date: day(2)},
		{ID: 3, Date: day(7)},
		{ID: 4, Date: day(2)},
	}

	got := SortNewestFirst(records, func(r testRecord) time.Time { return r.Date })

	assert.Equal(t, []int{3, 1, 2, 4}, ids(got))
	// input untouched
	assert.Equal(t, []int{1, 2, 3, 4}, ids(records))
}

func TestPipelineView(t *testing.T) {
	p := Pipeline[testRecord]{
		Facets:       testFacets(),
		SearchFields: testSearchFields(),
		DateOf:       func(r testRecord) time.Time { return r.Date },
	}

	got := p.View(sampleRecords(), Config{
		Facets: map[string]string{"priority": "All Priorities"},
		Search: "e",
	})

	// everything matches "e"; newest first
	assert.Equal(t, []int{4, 5, 2, 3, 1}, ids(got))
}

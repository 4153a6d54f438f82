package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statusEnum = []string{"PENDING", "OPEN", "IN_PROGRESS", "COMPLETED", "CANCELED"}

func TestCountByStatusPartitionsCollection(t *testing.T) {
	records := []testRecord{
		{ID: 1, Status: "OPEN"},
		{ID: 2, Status: "OPEN"},
		{ID: 3, Status: "IN_PROGRESS"},
		{ID: 4, Status: "COMPLETED"},
		{ID: 5, Status: "PENDING"},
	}

	sc := CountByStatus(records, func(r testRecord) string { return r.Status }, statusEnum)

	assert.Equal(t, 5, sc.Total)
	assert.Equal(t, 2, sc.Counts["OPEN"])
	assert.Equal(t, 1, sc.Counts["IN_PROGRESS"])
	assert.Equal(t, 1, sc.Counts["COMPLETED"])
	assert.Equal(t, 1, sc.Counts["PENDING"])
	assert.Equal(t, 0, sc.Counts["CANCELED"])
	assert.Equal(t, 0, sc.Other)

	sum := sc.Other
	for _, n := range sc.Counts {
		sum += n
	}
	assert.Equal(t, sc.Total, sum)
}

func TestCountByStatusBucketsUnknownStatuses(t *testing.T) {
	records := []testRecord{
		{ID: 1, Status: "OPEN"},
		{ID: 2, Status: "REOPENED"}, // drifted status string
	}

	sc := CountByStatus(records, func(r testRecord) string { return r.Status }, statusEnum)

	assert.Equal(t, 2, sc.Total)
	assert.Equal(t, 1, sc.Counts["OPEN"])
	assert.Equal(t, 1, sc.Other)
}

func TestStatusCountsAfterTransition(t *testing.T) {
	records := []testRecord{
		{ID: 1, Status: "OPEN"},
		{ID: 2, Status: "OPEN"},
		{ID: 3, Status: "IN_PROGRESS"},
		{ID: 4, Status: "COMPLETED"},
		{ID: 5, Status: "PENDING"},
	}
	statusOf := func(r testRecord) string { return r.Status }

	records[2].Status = "COMPLETED"
	sc := CountByStatus(records, statusOf, statusEnum)

	assert.Equal(t, 5, sc.Total)
	assert.Equal(t, 2, sc.Counts["OPEN"])
	assert.Equal(t, 0, sc.Counts["IN_PROGRESS"])
	assert.Equal(t, 2, sc.Counts["COMPLETED"])
	assert.Equal(t, 1, sc.Counts["PENDING"])
}

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"$1,250.00": 1250,
		"2100":      2100,
		" $99.50 ":  99.5,
		"":          0,
		"n/a":       0,
		"TBD":       0,
		"-45.25":    -45.25,
	}
	for raw, want := range cases {
		assert.InDelta(t, want, ParseAmount(raw), 0.001, "raw %q", raw)
	}
}

func TestSumAmountTreatsGarbageAsZero(t *testing.T) {
	records := []testRecord{
		{Title: "$100.00"},
		{Title: "not a number"},
		{Title: "$1,400.50"},
		{Title: ""},
	}

	got := SumAmount(records, func(r testRecord) string { return r.Title })
	assert.InDelta(t, 1500.5, got, 0.001)
}

func TestPercentageGuardsZeroDenominator(t *testing.T) {
	assert.Equal(t, float64(0), Percentage(0, 0))
	assert.Equal(t, float64(0), Percentage(5, 0))
	assert.InDelta(t, 50, Percentage(1, 2), 0.001)
	assert.InDelta(t, 100, Percentage(3, 3), 0.001)
}

func TestMonthlySeriesSortedChronologically(t *testing.T) {
	records := []testRecord{
		{Title: "$100", Date: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{Title: "$50", Date: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "$25", Date: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)},
	}

	got := MonthlySeries(records,
		func(r testRecord) time.Time { return r.Date },
		func(r testRecord) string { return r.Title },
	)

	require.Len(t, got, 2)
	assert.Equal(t, SeriesPoint{X: "2026-01", Y: 50}, got[0])
	assert.Equal(t, SeriesPoint{X: "2026-03", Y: 125}, got[1])
}

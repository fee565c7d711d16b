package health_test

import (
	"testing"
	"time"

	"db-converter/internal/health"

	"github.com/stretchr/testify/assert"
)

func TestSeriesReportNoGaps(t *testing.T) {
	got := health.SeriesReport("obs", [][]time.Time{hours(0, 1, 2, 3)}, 3, false)
	assert.Equal(t, "obs - no gaps. Last date: 2025-07-01 03:00:00\n", got)
}

func TestSeriesReportWithGaps(t *testing.T) {
	got := health.SeriesReport("obs", [][]time.Time{hours(0, 1, 2, 3, 100, 101)}, 3, false)
	assert.Equal(t, "obs - gaps found (01.07.2025-05.07.2025). Last date: 2025-07-05 05:00:00\n", got)
}

func TestSeriesReportNotEnoughData(t *testing.T) {
	assert.Equal(t, "obs - not enough data for analysis. Last date: n/a\n",
		health.SeriesReport("obs", [][]time.Time{nil}, 3, false))
}

func TestSeriesReportPerStation(t *testing.T) {
	series := [][]time.Time{
		hours(0, 1, 2, 3),
		hours(0, 1, 2, 50, 51),
		hours(7), // single observation, skipped
	}
	got := health.SeriesReport("obs", series, 3, true)
	assert.Equal(t, "obs - gaps found (01.07.2025-03.07.2025). Last date: 2025-07-03 03:00:00\n", got)
}

func TestEventReport(t *testing.T) {
	assert.Equal(t, "storms - not enough data for analysis.\n",
		health.EventReport("storms", []health.Interval{{Start: base, End: base}}, nil, 3))

	events := []health.Interval{
		{Start: base, End: base.Add(time.Hour)},
		{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)},
	}
	assert.Equal(t, "storms - no gaps. Last date: 2025-07-01 02:00:00\n", health.EventReport("storms", events, nil, 3))

	// An open event (no start yet) still moves the table's last date.
	later := base.Add(48 * time.Hour)
	assert.Equal(t, "storms - no gaps. Last date: 2025-07-03 00:00:00\n", health.EventReport("storms", events, &later, 3))
}

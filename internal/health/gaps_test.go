package health_test

import (
	"testing"
	"time"

	"db-converter/internal/health"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func hours(hs ...int) []time.Time {
	out := make([]time.Time, len(hs))
	for i, h := range hs {
		out[i] = base.Add(time.Duration(h) * time.Hour)
	}
	return out
}

func TestMinInterval(t *testing.T) {
	d, ok := health.MinInterval(hours(0, 1, 2, 3, 10))
	require.True(t, ok)
	assert.Equal(t, time.Hour, d)

	// even count: mean of the two middle values
	d, ok = health.MinInterval(hours(0, 1, 3, 6, 10))
	require.True(t, ok)
	assert.Equal(t, 150*time.Minute, d)

	_, ok = health.MinInterval(hours(5))
	assert.False(t, ok)
	_, ok = health.MinInterval(hours(5, 5))
	assert.False(t, ok)
}

func TestSignificantGapsAndGrouping(t *testing.T) {
	ts := hours(0, 1, 2, 6, 10, 11, 12)
	gaps := health.SignificantGaps(ts, time.Hour, health.DefaultGapFactor)
	require.Len(t, gaps, 2)
	assert.Equal(t, base.Add(2*time.Hour), gaps[0].Start)
	assert.Equal(t, base.Add(6*time.Hour), gaps[0].End)

	grouped := health.GroupGaps(gaps)
	require.Len(t, grouped, 1)
	assert.Equal(t, base.Add(2*time.Hour), grouped[0].Start)
	assert.Equal(t, base.Add(10*time.Hour), grouped[0].End)
	assert.Equal(t, 8*time.Hour, grouped[0].Length)

	assert.Nil(t, health.GroupGaps(nil))
}

func TestEventGaps(t *testing.T) {
	ev := func(s, e int) health.Interval {
		return health.Interval{Start: base.Add(time.Duration(s) * time.Hour), End: base.Add(time.Duration(e) * time.Hour)}
	}
	events := []health.Interval{ev(0, 1), ev(2, 3), ev(4, 5), ev(6, 7), ev(20, 21)}
	gaps := health.EventGaps(events, health.DefaultGapFactor)
	require.Len(t, gaps, 1)
	assert.Equal(t, base.Add(7*time.Hour), gaps[0].Start)
	assert.Equal(t, base.Add(20*time.Hour), gaps[0].End)

	// overlapping events have no gaps at all
	assert.Nil(t, health.EventGaps([]health.Interval{ev(0, 5), ev(3, 8)}, 3))
}

func TestFormatRanges(t *testing.T) {
	gaps := []health.Gap{
		{Start: base, End: base.AddDate(0, 0, 2)},
		{Start: base.AddDate(0, 1, 0), End: base.AddDate(0, 1, 1)},
	}
	assert.Equal(t, "(01.07.2025-03.07.2025), (01.08.2025-02.08.2025)", health.FormatRanges(gaps))
}

func TestUniqueSorted(t *testing.T) {
	assert.Equal(t, hours(1, 2, 3), health.UniqueSorted(hours(3, 1, 2, 3, 1)))
}

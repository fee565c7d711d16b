package health

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultGapFactor multiplies the typical interval to get the gap threshold.
const DefaultGapFactor = 3.0

// Gap is a hole in a time series between two observations.
type Gap struct {
	Start  time.Time
	End    time.Time
	Length time.Duration
}

// Interval is one row of an event table.
type Interval struct {
	Start time.Time
	End   time.Time
}

func median(ds []time.Duration) time.Duration {
	sorted := append([]time.Duration(nil), ds...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// MinInterval is the median of the positive differences between consecutive
// timestamps. ok is false when there is no positive difference.
func MinInterval(ts []time.Time) (d time.Duration, ok bool) {
	if len(ts) < 2 {
		return 0, false
	}
	var diffs []time.Duration
	for i := 1; i < len(ts); i++ {
		if diff := ts[i].Sub(ts[i-1]); diff > 0 {
			diffs = append(diffs, diff)
		}
	}
	if len(diffs) == 0 {
		return 0, false
	}
	return median(diffs), true
}

// SignificantGaps returns every step between consecutive timestamps longer
// than minInterval*factor.
func SignificantGaps(ts []time.Time, minInterval time.Duration, factor float64) []Gap {
	threshold := time.Duration(float64(minInterval) * factor)
	var gaps []Gap
	for i := 1; i < len(ts); i++ {
		if diff := ts[i].Sub(ts[i-1]); diff > threshold {
			gaps = append(gaps, Gap{Start: ts[i-1], End: ts[i], Length: diff})
		}
	}
	return gaps
}

// GroupGaps merges runs of gaps where one starts exactly where the previous ended.
func GroupGaps(gaps []Gap) []Gap {
	if len(gaps) == 0 {
		return nil
	}
	grouped := []Gap{gaps[0]}
	for _, g := range gaps[1:] {
		last := &grouped[len(grouped)-1]
		if g.Start.Equal(last.End) {
			last.End = g.End
			last.Length += g.Length
			continue
		}
		grouped = append(grouped, g)
	}
	return grouped
}

// EventGaps finds the holes between consecutive events (ordered by start)
// whose length exceeds the typical hole length times factor. The typical
// length is the median, or the minimum when fewer than three holes exist.
func EventGaps(events []Interval, factor float64) []Gap {
	var gaps []Gap
	for i := 1; i < len(events); i++ {
		prevEnd, start := events[i-1].End, events[i].Start
		if diff := start.Sub(prevEnd); diff > 0 {
			gaps = append(gaps, Gap{Start: prevEnd, End: start, Length: diff})
		}
	}
	if len(gaps) == 0 {
		return nil
	}

	lengths := make([]time.Duration, len(gaps))
	for i, g := range gaps {
		lengths[i] = g.Length
	}
	var typical time.Duration
	if len(lengths) < 3 {
		typical = lengths[0]
		for _, l := range lengths[1:] {
			if l < typical {
				typical = l
			}
		}
	} else {
		typical = median(lengths)
	}

	threshold := time.Duration(float64(typical) * factor)
	var significant []Gap
	for _, g := range gaps {
		if g.Length > threshold {
			significant = append(significant, g)
		}
	}
	return GroupGaps(significant)
}

// SortGaps orders gaps by start time.
func SortGaps(gaps []Gap) {
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Start.Before(gaps[j].Start) })
}

// FormatRanges renders "(02.01.2006-05.01.2006), (...)".
func FormatRanges(gaps []Gap) string {
	parts := make([]string, 0, len(gaps))
	for _, g := range gaps {
		parts = append(parts, fmt.Sprintf("(%s-%s)", g.Start.Format("02.01.2006"), g.End.Format("02.01.2006")))
	}
	return strings.Join(parts, ", ")
}

// UniqueSorted returns the distinct timestamps in ascending order.
func UniqueSorted(ts []time.Time) []time.Time {
	seen := make(map[int64]bool, len(ts))
	var out []time.Time
	for _, t := range ts {
		k := t.UnixNano()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

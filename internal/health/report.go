package health

import (
	"fmt"
	"time"
)

func formatDate(t *time.Time) string {
	if t == nil {
		return "n/a"
	}
	return t.Format(dateLayout)
}

func latest(ts []time.Time) *time.Time {
	var max *time.Time
	for i := range ts {
		if max == nil || ts[i].After(*max) {
			max = &ts[i]
		}
	}
	return max
}

func gapLine(table string, gaps []Gap, last *time.Time) string {
	if len(gaps) == 0 {
		return fmt.Sprintf("%s - no gaps. Last date: %s\n", table, formatDate(last))
	}
	return fmt.Sprintf("%s - gaps found %s. Last date: %s\n", table, FormatRanges(gaps), formatDate(last))
}

// EventReport renders the report line of an event table whose rows are
// ordered by start. last is the table's latest end date; nil falls back to
// the latest end among events.
func EventReport(table string, events []Interval, last *time.Time, factor float64) string {
	if len(events) < 2 {
		return fmt.Sprintf("%s - not enough data for analysis.\n", table)
	}
	if last == nil {
		ends := make([]time.Time, len(events))
		for i, e := range events {
			ends[i] = e.End
		}
		last = latest(ends)
	}
	return gapLine(table, EventGaps(events, factor), last)
}

// SeriesReport renders the report line of a time-series table. Each element
// of series holds the timestamps of one station (or the whole table when
// perStation is false).
func SeriesReport(table string, series [][]time.Time, factor float64, perStation bool) string {
	var (
		all  []Gap
		last *time.Time
	)
	for _, raw := range series {
		ts := UniqueSorted(raw)
		if !perStation {
			last = latest(ts)
			if len(ts) < 2 {
				return fmt.Sprintf("%s - not enough data for analysis. Last date: %s\n", table, formatDate(last))
			}
		}
		interval, ok := MinInterval(ts)
		if !ok {
			if !perStation {
				return fmt.Sprintf("%s - could not determine the minimum interval. Last date: %s\n", table, formatDate(last))
			}
			continue
		}
		all = append(all, GroupGaps(SignificantGaps(ts, interval, factor))...)
		if perStation {
			if l := latest(ts); l != nil && (last == nil || l.After(*last)) {
				last = l
			}
		}
	}
	SortGaps(all)
	return gapLine(table, GroupGaps(all), last)
}

package progress

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gosuri/uiprogress"
)

// Reporter renders an advisory progress bar for a conversion. Nothing it
// computes is consulted by the conversion itself.
type Reporter struct {
	progress *uiprogress.Progress
	bar      *uiprogress.Bar
	total    int
	started  time.Time

	line    atomic.Int64
	tables  atomic.Int64
	inserts atomic.Int64
}

// UnknownTotal marks streamed input whose line count is not known.
const UnknownTotal = -1

// New creates a reporter. A total <= 0 means the line count is unknown.
func New(total int) *Reporter {
	r := &Reporter{progress: uiprogress.New(), total: total, started: time.Now()}

	barTotal := total
	if barTotal <= 0 {
		barTotal = 1
	}
	r.bar = r.progress.AddBar(barTotal)
	r.bar.PrependFunc(func(b *uiprogress.Bar) string {
		return Position(int(r.line.Load()), r.total)
	})
	r.bar.AppendFunc(func(b *uiprogress.Bar) string {
		return Counters(int(r.tables.Load()), int(r.inserts.Load())) + " " +
			ETA(int(r.line.Load()), r.total, time.Since(r.started))
	})
	return r
}

func (r *Reporter) Start() {
	r.started = time.Now()
	r.progress.Start()
}

func (r *Reporter) Update(line, tables, inserts int) {
	r.line.Store(int64(line))
	r.tables.Store(int64(tables))
	r.inserts.Store(int64(inserts))
	if r.total > 0 && line <= r.total {
		r.bar.Set(line)
	}
}

func (r *Reporter) Stop() {
	r.progress.Stop()
}

// Position renders "Line 10 (of 200: 5.00%)" or "Line 10 (of unknown total)".
func Position(line, total int) string {
	if total <= 0 {
		return fmt.Sprintf("Line %d (of unknown total)", line)
	}
	return fmt.Sprintf("Line %d (of %d: %.2f%%)", line, total, float64(line)/float64(total)*100)
}

func Counters(tables, inserts int) string {
	return fmt.Sprintf("[%d tables] [%d inserts]", tables, inserts)
}

// ETA extrapolates the remaining time from the share of lines already read.
func ETA(line, total int, elapsed time.Duration) string {
	if total <= 0 || line <= 0 {
		return "[ETA: unknown]"
	}
	done := float64(line) / float64(total)
	left := time.Duration(float64(elapsed)/done) - elapsed
	if left < 0 {
		left = 0
	}
	secs := int(left.Seconds())
	return fmt.Sprintf("[ETA: %d min %d sec]", secs/60, secs%60)
}

package stats

import (
	"time"

	"github.com/atikulmunna/fauxlog/internal/model"
)

// Stats holds a point-in-time snapshot of what the loop has emitted.
type Stats struct {
	Uptime      string                `json:"uptime"`
	Lines       int64                 `json:"lines"`
	Bars        int64                 `json:"bars"`
	LPS         float64               `json:"lps"` // lines per second since start
	LevelCounts map[model.Level]int64 `json:"level_counts"`
}

// Counter tallies emitted lines and bars. It is owned by the driver loop
// and is not safe for concurrent use.
type Counter struct {
	startTime   time.Time
	lines       int64
	bars        int64
	levelCounts map[model.Level]int64
	now         func() time.Time
}

// New creates a Counter starting now.
func New() *Counter {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Counter {
	return &Counter{
		startTime:   now(),
		levelCounts: make(map[model.Level]int64),
		now:         now,
	}
}

// RecordLine adds one emitted line.
func (c *Counter) RecordLine(level model.Level) {
	c.lines++
	c.levelCounts[level]++
}

// RecordBar adds one completed progress bar.
func (c *Counter) RecordBar() {
	c.bars++
}

// Snapshot returns the current tallies.
func (c *Counter) Snapshot() Stats {
	// Copy level counts.
	counts := make(map[model.Level]int64, len(c.levelCounts))
	for k, v := range c.levelCounts {
		counts[k] = v
	}

	elapsed := c.now().Sub(c.startTime)
	var lps float64
	if elapsed > 0 {
		lps = float64(c.lines) / elapsed.Seconds()
	}

	return Stats{
		Uptime:      elapsed.Truncate(time.Second).String(),
		Lines:       c.lines,
		Bars:        c.bars,
		LPS:         lps,
		LevelCounts: counts,
	}
}

package stats

import (
	"testing"
	"time"

	"github.com/atikulmunna/fauxlog/internal/model"
)

func TestLevelCounts(t *testing.T) {
	c := New()

	c.RecordLine(model.LevelInfo)
	c.RecordLine(model.LevelInfo)
	c.RecordLine(model.LevelError)
	c.RecordLine(model.LevelWarn)
	c.RecordLine(model.LevelError)
	c.RecordBar()

	s := c.Snapshot()
	if s.Lines != 5 {
		t.Errorf("expected 5 lines, got %d", s.Lines)
	}
	if s.Bars != 1 {
		t.Errorf("expected 1 bar, got %d", s.Bars)
	}
	if s.LevelCounts[model.LevelInfo] != 2 {
		t.Errorf("expected 2 INFO, got %d", s.LevelCounts[model.LevelInfo])
	}
	if s.LevelCounts[model.LevelError] != 2 {
		t.Errorf("expected 2 ERROR, got %d", s.LevelCounts[model.LevelError])
	}
	if s.LevelCounts[model.LevelWarn] != 1 {
		t.Errorf("expected 1 WARN, got %d", s.LevelCounts[model.LevelWarn])
	}
}

func TestLPSCalculation(t *testing.T) {
	start := time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)
	now := start
	c := newWithClock(func() time.Time { return now })

	for i := 0; i < 10; i++ {
		c.RecordLine(model.LevelDebug)
	}
	now = start.Add(5 * time.Second)

	s := c.Snapshot()
	if s.LPS != 2 {
		t.Errorf("expected 2 lines/sec, got %f", s.LPS)
	}
	if s.Uptime != "5s" {
		t.Errorf("expected uptime 5s, got %s", s.Uptime)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := New()
	c.RecordLine(model.LevelTrace)

	s := c.Snapshot()
	s.LevelCounts[model.LevelTrace] = 99

	if got := c.Snapshot().LevelCounts[model.LevelTrace]; got != 1 {
		t.Errorf("expected internal count to stay 1, got %d", got)
	}
}

// Package driver runs the endless loop that alternates log lines and
// progress bars.
package driver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atikulmunna/fauxlog/internal/clock"
	"github.com/atikulmunna/fauxlog/internal/config"
	"github.com/atikulmunna/fauxlog/internal/dice"
	"github.com/atikulmunna/fauxlog/internal/model"
	"github.com/atikulmunna/fauxlog/internal/output"
	"github.com/atikulmunna/fauxlog/internal/progress"
	"github.com/atikulmunna/fauxlog/internal/stats"
)

// LineSource produces synthetic entries.
type LineSource interface {
	Next() model.LogEntry
}

// BarPlayer plays one progress session to completion.
type BarPlayer interface {
	Run(ctx context.Context) (*progress.Session, error)
}

// Driver alternates lines and bars until its context is done.
type Driver struct {
	lines    LineSource
	bars     BarPlayer
	renderer output.Renderer
	rng      dice.Rand
	sleeper  clock.Sleeper
	cfg      config.DriverConfig
	counter  *stats.Counter

	sinceBar int
}

// New creates a Driver. counter may be nil.
func New(lines LineSource, bars BarPlayer, r output.Renderer, rng dice.Rand, sleeper clock.Sleeper, cfg config.DriverConfig, counter *stats.Counter) *Driver {
	if counter == nil {
		counter = stats.New()
	}
	return &Driver{
		lines:    lines,
		bars:     bars,
		renderer: r,
		rng:      rng,
		sleeper:  sleeper,
		cfg:      cfg,
		counter:  counter,
	}
}

// Run loops until ctx is done, returning ctx.Err() from the suspension point
// that observed it. Any other error is a failed write.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := d.Step(ctx); err != nil {
			return err
		}
	}
}

// Step performs one iteration: either a bar followed by a pause, or a single
// line followed by a short delay.
func (d *Driver) Step(ctx context.Context) error {
	if d.sinceBar > d.cfg.BarThreshold && dice.Chance(d.rng, d.cfg.BarProbability) {
		s, err := d.bars.Run(ctx)
		if err != nil {
			return err
		}
		d.counter.RecordBar()
		slog.Debug("bar complete", "label", s.Label, "width", s.Width, "lines_before", d.sinceBar)
		d.sinceBar = 0
		return d.sleeper.Sleep(ctx, dice.Duration(d.rng, d.cfg.BarPauseMin, d.cfg.BarPauseMax))
	}

	entry := d.lines.Next()
	if err := d.renderer.Render(entry); err != nil {
		return fmt.Errorf("render line: %w", err)
	}
	d.counter.RecordLine(entry.Level)
	d.sinceBar++
	return d.sleeper.Sleep(ctx, dice.Duration(d.rng, d.cfg.LineDelayMin, d.cfg.LineDelayMax))
}

// SinceBar returns the number of lines emitted since the last bar.
func (d *Driver) SinceBar() int { return d.sinceBar }

// Stats returns a snapshot of everything emitted so far.
func (d *Driver) Stats() stats.Stats { return d.counter.Snapshot() }

// Package progress renders whimsical animated progress bars that fill along
// an organic, non-linear curve.
package progress

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/atikulmunna/fauxlog/internal/clock"
	"github.com/atikulmunna/fauxlog/internal/config"
	"github.com/atikulmunna/fauxlog/internal/dice"
	"github.com/atikulmunna/fauxlog/internal/output"
	"github.com/atikulmunna/fauxlog/internal/vocab"
)

const (
	labelColumns = 50 // top border label padding
	finalColumns = 60 // final frame padding, clears leftovers of longer frames
)

// Animator plays progress sessions to w. Like the generator it shares the
// loop's random source and is not safe for concurrent use.
type Animator struct {
	w       io.Writer
	tab     *vocab.Table
	cfg     config.ProgressConfig
	rng     dice.Rand
	sleeper clock.Sleeper
	theme   *output.Theme
}

// New creates an Animator.
func New(w io.Writer, tab *vocab.Table, cfg config.ProgressConfig, rng dice.Rand, sleeper clock.Sleeper, theme *output.Theme) *Animator {
	return &Animator{
		w:       w,
		tab:     tab,
		cfg:     cfg,
		rng:     rng,
		sleeper: sleeper,
		theme:   theme,
	}
}

// Run plays one freshly randomized session and blocks until it completes
// or ctx is done.
func (a *Animator) Run(ctx context.Context) (*Session, error) {
	s := a.NewSession()
	return s, a.Play(ctx, s)
}

// NewSession draws the label, width, glyphs, step count and timing of a bar.
func (a *Animator) NewSession() *Session {
	width := dice.IntRange(a.rng, a.cfg.MinWidth, a.cfg.MaxWidth)
	if a.cfg.WidthCap > 0 && width > a.cfg.WidthCap {
		width = a.cfg.WidthCap
	}
	s := &Session{
		Label: a.Label(),
		Width: max(width, 1),
		Fill:  a.tab.Pick(a.rng, vocab.FillGlyphs),
		Empty: " ",
		Steps: dice.IntRange(a.rng, a.cfg.MinSteps, a.cfg.MaxSteps),
	}
	if !dice.Chance(a.rng, a.cfg.BlankProbability) {
		s.Empty = a.tab.Pick(a.rng, vocab.EmptyGlyphs)
	}
	total := dice.Duration(a.rng, a.cfg.MinDuration, a.cfg.MaxDuration)
	s.StepTime = total / time.Duration(s.Steps)
	return s
}

// Label assembles a task phrase: adverb, verb, object, then an optional
// suffix and qualifier, with the first letter capitalized.
func (a *Animator) Label() string {
	parts := []string{
		a.tab.Pick(a.rng, vocab.TaskAdverbs),
		a.tab.Pick(a.rng, vocab.TaskVerbs),
		a.tab.Pick(a.rng, vocab.TaskObjects),
	}
	if dice.Chance(a.rng, 0.4) {
		parts = append(parts, a.tab.Pick(a.rng, vocab.TaskSuffixes))
	}
	if dice.Chance(a.rng, 0.2) {
		parts = append(parts, a.tab.Pick(a.rng, vocab.TaskQualifier))
	}
	return capitalize(strings.Join(parts, " "))
}

// Play animates s to completion. On cancellation the partial bar line is
// terminated and ctx.Err() is returned.
func (a *Animator) Play(ctx context.Context, s *Session) error {
	if err := a.printf("\n  %s %s %s\n",
		a.theme.Border("┌─"), runewidth.FillRight(s.Label, labelColumns), a.theme.Border("─┐")); err != nil {
		return err
	}

	for step := 0; step < s.Steps && s.Progress() < a.cfg.FinaleThreshold; step++ {
		s.Advance(a.increment(s))

		if s.Filled() == s.lastFilled() {
			if err := a.sleep(ctx, s.StepTime/4); err != nil {
				return err
			}
			continue
		}

		if err := a.frame(s); err != nil {
			return err
		}
		if err := a.sleep(ctx, scale(s.StepTime, dice.Uniform(a.rng, 0.6, 1.4))); err != nil {
			return err
		}
	}

	// Finale: either a dramatic hold or a quick snap to full.
	pause := scale(s.StepTime, dice.Uniform(a.rng, 0.1, 0.3))
	if dice.Chance(a.rng, a.cfg.DramaticProbability) {
		pause = scale(s.StepTime, dice.Uniform(a.rng, 3, 6))
	}
	if err := a.sleep(ctx, pause); err != nil {
		return err
	}

	s.Complete()
	f := s.record()
	line := fmt.Sprintf("  │ %s %3d%% │", s.Bar(), f.Percent)
	if err := a.printf("\r%s\n", a.theme.Bar(runewidth.FillRight(line, finalColumns))); err != nil {
		return err
	}
	return a.printf("  %s %s complete %s\n\n", a.theme.Border("└─"), s.Label, a.theme.Border("─┘"))
}

// increment is proportional to the remaining distance, scaled by a random
// factor and occasionally amplified (burst) or dampened (stall).
func (a *Animator) increment(s *Session) float64 {
	inc := (1 - s.Progress()) * (a.cfg.Pace / float64(s.Steps)) * dice.Uniform(a.rng, 0.6, 1.4)
	if dice.Chance(a.rng, a.cfg.BurstProbability) {
		inc *= dice.Uniform(a.rng, 2, 3.5)
	}
	if dice.Chance(a.rng, a.cfg.StallProbability) {
		inc *= dice.Uniform(a.rng, 0.05, 0.25)
	}
	return inc
}

func (a *Animator) frame(s *Session) error {
	f := s.record()
	return a.printf("  │ %s %3d%% │\r", a.theme.Bar(s.Bar()), f.Percent)
}

func (a *Animator) sleep(ctx context.Context, d time.Duration) error {
	if err := a.sleeper.Sleep(ctx, d); err != nil {
		// Leave the cursor on a fresh line for whatever prints next.
		_, _ = io.WriteString(a.w, "\n")
		return err
	}
	return nil
}

func (a *Animator) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(a.w, format, args...); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

package progress

import (
	"math"
	"strings"
	"time"
)

// Frame is one rendered state of a bar.
type Frame struct {
	Filled  int
	Percent int
}

// Session is the transient state of one bar, from 0% to 100%.
type Session struct {
	Label    string
	Width    int
	Steps    int
	StepTime time.Duration
	Fill     string
	Empty    string

	progress float64
	frames   []Frame
}

// Progress returns the current completion in [0,1].
func (s *Session) Progress() float64 { return s.progress }

// Advance adds delta to the progress. Negative deltas are ignored and the
// result is clamped to 1, so progress never moves backwards.
func (s *Session) Advance(delta float64) {
	if delta <= 0 || math.IsNaN(delta) {
		return
	}
	s.progress = math.Min(1, s.progress+delta)
}

// Complete forces progress to exactly 1.
func (s *Session) Complete() { s.progress = 1 }

// Filled returns the number of filled cells for the current progress.
func (s *Session) Filled() int {
	n := int(math.Round(s.progress * float64(s.Width)))
	return min(max(n, 0), s.Width)
}

// Percent returns the integer percentage for the current progress.
func (s *Session) Percent() int {
	return int(s.progress * 100)
}

// Bar returns the glyph string for filled cells, always Width cells long.
func (s *Session) Bar() string {
	n := s.Filled()
	return strings.Repeat(s.Fill, n) + strings.Repeat(s.Empty, s.Width-n)
}

// Frames returns a copy of every frame rendered so far.
func (s *Session) Frames() []Frame {
	return append([]Frame(nil), s.frames...)
}

func (s *Session) record() Frame {
	f := Frame{Filled: s.Filled(), Percent: s.Percent()}
	s.frames = append(s.frames, f)
	return f
}

// lastFilled returns the filled count of the last rendered frame, or -1.
func (s *Session) lastFilled() int {
	if len(s.frames) == 0 {
		return -1
	}
	return s.frames[len(s.frames)-1].Filled
}

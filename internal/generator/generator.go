// Package generator builds synthetic log entries from a vocabulary table and
// a random source.
package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/atikulmunna/fauxlog/internal/config"
	"github.com/atikulmunna/fauxlog/internal/dice"
	"github.com/atikulmunna/fauxlog/internal/model"
	"github.com/atikulmunna/fauxlog/internal/vocab"
)

// TimestampLayout renders wall-clock time to millisecond precision.
const TimestampLayout = "2006-01-02 15:04:05.000Z"

const traceAlphabet = "0123456789abcdef"

// TraceIDLength is the number of hex characters in a failure trace id.
const TraceIDLength = 16

var statusCodes = dice.NewWeighted(
	[]string{"200", "201", "204", "400", "401", "403", "404", "429", "500", "502", "503"},
	[]int{38, 9, 11, 7, 10, 12, 6, 8, 5, 3, 4},
)

// band maps the upper bound of a slice of [0,1) to a message builder.
type band struct {
	upper float64
	style model.Style
	build func(*Generator) string
}

// Generator produces one LogEntry per Next call. It is not safe for
// concurrent use; the random source is shared with the rest of the loop.
type Generator struct {
	tab   *vocab.Table
	cfg   config.LineConfig
	rng   dice.Rand
	now   func() time.Time
	bands []band
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator. cfg.StyleBands must hold three ascending bounds,
// as enforced by config.Validate.
func New(tab *vocab.Table, cfg config.LineConfig, rng dice.Rand, opts ...Option) *Generator {
	g := &Generator{
		tab: tab,
		cfg: cfg,
		rng: rng,
		now: time.Now,
	}
	g.bands = []band{
		{cfg.StyleBands[0], model.StyleComposite, (*Generator).composite},
		{cfg.StyleBands[1], model.StyleRequest, (*Generator).request},
		{cfg.StyleBands[2], model.StyleFailure, (*Generator).failure},
		{1, model.StyleFragments, (*Generator).fragments},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next builds a fresh entry. It never fails.
func (g *Generator) Next() model.LogEntry {
	e := model.LogEntry{
		Level:   g.Level(),
		Host:    g.tab.Pick(g.rng, vocab.Hosts),
		Service: g.tab.Pick(g.rng, vocab.Services),
	}
	e.Style, e.Message = g.Message()
	if dice.Chance(g.rng, g.cfg.ContinuationProbability) {
		e.Continuation = "↳ " + g.tab.PickAcross(g.rng, vocab.ErrorPatterns, vocab.Annotations)
	}
	e.Timestamp = g.Timestamp()
	return e
}

// Level draws a severity and applies the downgrade rule.
func (g *Generator) Level() model.Level {
	l := dice.Pick(g.rng, model.Levels)
	if l.Alarming() && dice.Chance(g.rng, g.cfg.DowngradeProbability) {
		l = dice.Pick(g.rng, model.BenignLevels)
	}
	return l
}

// Message draws a style band and fills its template.
func (g *Generator) Message() (model.Style, string) {
	b := g.bandFor(g.rng.Float64())
	return b.style, b.build(g)
}

// bandFor returns the band containing x; the last band takes the remainder.
func (g *Generator) bandFor(x float64) band {
	for _, b := range g.bands {
		if x < b.upper {
			return b
		}
	}
	return g.bands[len(g.bands)-1]
}

// Timestamp returns the clock reading shifted by a random jitter.
func (g *Generator) Timestamp() string {
	jitter := dice.Duration(g.rng, g.cfg.JitterMin, g.cfg.JitterMax)
	return g.now().UTC().Add(jitter).Format(TimestampLayout)
}

// TraceID returns TraceIDLength lowercase hex characters.
func (g *Generator) TraceID() string {
	var b [TraceIDLength]byte
	for i := range b {
		b[i] = traceAlphabet[g.rng.IntN(len(traceAlphabet))]
	}
	return string(b[:])
}

// Duration renders a latency in one of four shapes.
func (g *Generator) Duration() string {
	switch g.rng.IntN(4) {
	case 0:
		return fmt.Sprintf("%dms", dice.IntRange(g.rng, 8, 1200))
	case 1:
		return fmt.Sprintf("%.2fs", dice.Uniform(g.rng, 0.4, 5.9))
	case 2:
		s := dice.IntRange(g.rng, 1, 9)
		return fmt.Sprintf("%d.%03ds", s, g.rng.IntN(1000))
	default:
		return fmt.Sprintf("%dµs", dice.IntRange(g.rng, 90, 6800))
	}
}

func (g *Generator) composite() string {
	parts := []string{
		g.tab.Pick(g.rng, vocab.Services),
		g.tab.Pick(g.rng, vocab.Actions),
		g.tab.Pick(g.rng, vocab.Objects),
	}

	n := g.tab.Len(vocab.Suffixes)
	switch i := g.rng.IntN(n + 3); {
	case i < n:
		parts = append(parts, g.tab.At(vocab.Suffixes, i))
	case i == n:
		// bare
	case i == n+1:
		parts = append(parts, "duration="+g.Duration())
	default:
		parts = append(parts, "phase="+g.tab.Pick(g.rng, vocab.Phases))
	}
	return strings.Join(parts, " ")
}

func (g *Generator) request() string {
	method := g.tab.Pick(g.rng, vocab.Methods)
	path := g.tab.Pick(g.rng, vocab.Paths)
	status := statusCodes.Draw(g.rng)
	prefix := g.tab.Pick(g.rng, vocab.ClientPrefix)
	a, b := g.rng.IntN(256), g.rng.IntN(256)
	return fmt.Sprintf("request method=%s path=/api/v1/%s status=%s client=%s%d.%d latency=%s",
		method, path, status, prefix, a, b, g.Duration())
}

func (g *Generator) failure() string {
	verb := g.tab.Pick(g.rng, vocab.Actions)
	pattern := g.tab.Pick(g.rng, vocab.ErrorPatterns)
	component := g.tab.Pick(g.rng, vocab.Services)
	return fmt.Sprintf("%s failed → %s component=%s trace=%s", verb, pattern, component, g.TraceID())
}

func (g *Generator) fragments() string {
	frags := []string{
		"[" + g.tab.Pick(g.rng, vocab.FragmentTags) + "]",
		g.tab.Pick(g.rng, vocab.Services),
		g.tab.Pick(g.rng, vocab.Actions),
		fmt.Sprintf("0x%04x", g.rng.IntN(0x10000)),
		fmt.Sprintf("seq=%d", dice.IntRange(g.rng, 10000, 999999999)),
		fmt.Sprintf("shard=%d", g.rng.IntN(32)),
		fmt.Sprintf("replica=%d/%d", dice.IntRange(g.rng, 1, 5), dice.IntRange(g.rng, 3, 7)),
	}
	dice.Shuffle(g.rng, frags)
	return strings.Join(frags[:dice.IntRange(g.rng, 3, len(frags))], " ")
}

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/atikulmunna/fauxlog/internal/clock"
	"github.com/atikulmunna/fauxlog/internal/config"
	"github.com/atikulmunna/fauxlog/internal/dice"
	"github.com/atikulmunna/fauxlog/internal/generator"
	"github.com/atikulmunna/fauxlog/internal/logging"
	"github.com/atikulmunna/fauxlog/internal/output"
	"github.com/atikulmunna/fauxlog/internal/progress"
	"github.com/atikulmunna/fauxlog/internal/vocab"
)

// barChrome is the display width of "  │ " plus " 100% │" around the cells.
const barChrome = 11

// app bundles the components every command wires together.
type app struct {
	cfg      config.Config
	rng      *rand.Rand
	theme    *output.Theme
	gen      *generator.Generator
	anim     *progress.Animator
	renderer output.Renderer
}

// loadConfig resolves flags, environment and config file, and sets up
// diagnostic logging.
func loadConfig() (config.Config, error) {
	if cfgFile != "" && configErr != nil {
		return config.Config{}, fmt.Errorf("read config %s: %w", cfgFile, configErr)
	}
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	logging.Init(logging.ParseLevel(cfg.LogLevel))
	if f := viper.ConfigFileUsed(); f != "" && configErr == nil {
		slog.Debug("loaded config file", "path", f)
	}
	return cfg, nil
}

// newApp builds the generators and renderers writing to w. Progress bars go
// to barOut, which differs from w only in JSON mode.
func newApp(cfg config.Config, w, barOut io.Writer, sleeper clock.Sleeper, opts ...generator.Option) *app {
	plain := cfg.NoColor || !isTerminal(w)
	if cols := terminalWidth(barOut); cols > 0 {
		if limit := cols - barChrome; cfg.Progress.WidthCap == 0 || limit < cfg.Progress.WidthCap {
			cfg.Progress.WidthCap = max(limit, 1)
		}
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	a := &app{cfg: cfg, rng: dice.New(cfg.Seed)}
	a.theme = output.NewTheme(output.NewLipglossRenderer(w, plain))

	tab := vocab.Default()
	a.gen = generator.New(tab, cfg.Lines, a.rng, opts...)
	a.anim = progress.New(barOut, tab, cfg.Progress, a.rng, sleeper, a.theme)

	switch cfg.Output {
	case "json":
		a.renderer = output.NewJSONRenderer(w)
	default:
		a.renderer = output.NewTextRenderer(w, a.theme, cfg.Layout)
	}

	slog.Debug("components ready", "seed", cfg.Seed, "output", cfg.Output, "color", !plain, "bar_width_cap", cfg.Progress.WidthCap)
	return a
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of w, or 0 if w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return cols
}

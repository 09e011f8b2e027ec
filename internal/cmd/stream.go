package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atikulmunna/fauxlog/internal/clock"
	"github.com/atikulmunna/fauxlog/internal/driver"
	"github.com/atikulmunna/fauxlog/internal/stats"
)

// StopMessage is printed exactly once when an interrupt ends the stream.
const StopMessage = "\n\nStopped.\n"

func runStream(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// --- Interrupt cancels the context; every pause observes it ---
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	barOut := out
	if cfg.Output == "json" {
		// Keep stdout a clean JSON stream; bars and the stop message are
		// decoration only.
		barOut = cmd.ErrOrStderr()
	}

	a := newApp(cfg, out, barOut, clock.Real{})
	if cfg.Output != "json" {
		if err := printBanner(out, a); err != nil {
			return err
		}
	}

	d := driver.New(a.gen, a.anim, a.renderer, a.rng, clock.Real{}, cfg.Driver, stats.New())
	return stream(ctx, barOut, d)
}

// stream runs d until ctx is cancelled. Cancellation is the normal way out:
// it prints StopMessage once to w and returns nil.
func stream(ctx context.Context, w io.Writer, d *driver.Driver) error {
	err := d.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		return err
	}

	if _, werr := io.WriteString(w, StopMessage); werr != nil {
		return fmt.Errorf("write stop message: %w", werr)
	}
	s := d.Stats()
	slog.Debug("stream stopped", "uptime", s.Uptime, "lines", s.Lines, "bars", s.Bars, "lps", s.LPS)
	return nil
}

func printBanner(w io.Writer, a *app) error {
	rule := a.theme.Border(strings.Repeat("═", 80))
	_, err := fmt.Fprintf(w, "\n\n%s\n   FAKE LOG + PROGRESS-QUEST STYLE LOADING BARS   –  Ctrl+C to stop\n%s\n\n", rule, rule)
	if err != nil {
		return fmt.Errorf("write banner: %w", err)
	}
	return nil
}

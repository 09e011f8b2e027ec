package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atikulmunna/fauxlog/internal/clock"
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Play a single progress bar and exit",
	Args:  cobra.NoArgs,
	RunE:  runBar,
}

func init() {
	rootCmd.AddCommand(barCmd)
}

func runBar(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	a := newApp(cfg, out, out, clock.Real{})
	return playBar(ctx, out, a)
}

func playBar(ctx context.Context, w io.Writer, a *app) error {
	_, err := a.anim.Run(ctx)
	if errors.Is(err, context.Canceled) {
		_, err = io.WriteString(w, StopMessage)
	}
	return err
}

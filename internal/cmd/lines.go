package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/atikulmunna/fauxlog/internal/clock"
	"github.com/atikulmunna/fauxlog/internal/generator"
)

var (
	lineCount int
	lineAt    string
)

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Print a fixed number of lines without pacing",
	Long: `Print N synthetic lines immediately and exit. With --seed and --at the
output is byte-for-byte reproducible, which makes it usable as golden output.

Examples:
  fauxlog lines -n 50
  fauxlog lines -n 10 --seed 42 --at 2026-02-17T12:00:00Z --no-color`,
	Args: cobra.NoArgs,
	RunE: runLines,
}

func init() {
	linesCmd.Flags().IntVarP(&lineCount, "count", "n", 20, "number of lines to print")
	linesCmd.Flags().StringVar(&lineAt, "at", "", "pin the clock to this RFC3339 time")
	rootCmd.AddCommand(linesCmd)
}

func runLines(cmd *cobra.Command, args []string) error {
	if lineCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", lineCount)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var opts []generator.Option
	if lineAt != "" {
		at, err := time.Parse(time.RFC3339, lineAt)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
		opts = append(opts, generator.WithClock(func() time.Time { return at }))
	}

	out := cmd.OutOrStdout()
	a := newApp(cfg, out, out, clock.Real{}, opts...)
	for i := 0; i < lineCount; i++ {
		if err := a.renderer.Render(a.gen.Next()); err != nil {
			return fmt.Errorf("render line: %w", err)
		}
	}
	return nil
}

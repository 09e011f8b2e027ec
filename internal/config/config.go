// Package config holds every tunable constant of fauxlog. The defaults are
// the built-in behavior; a config file, FAUXLOG_* environment variables or
// flags may override them through viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all fauxlog configuration.
type Config struct {
	Seed     uint64         `mapstructure:"seed"`
	Output   string         `mapstructure:"output"` // "text" or "json"
	NoColor  bool           `mapstructure:"no_color"`
	LogLevel string         `mapstructure:"log_level"`
	Layout   LayoutConfig   `mapstructure:"layout"`
	Lines    LineConfig     `mapstructure:"lines"`
	Progress ProgressConfig `mapstructure:"progress"`
	Driver   DriverConfig   `mapstructure:"driver"`
}

// LayoutConfig holds the padding widths of the text line fields.
type LayoutConfig struct {
	LevelWidth   int `mapstructure:"level_width"`
	HostWidth    int `mapstructure:"host_width"`
	ServiceWidth int `mapstructure:"service_width"`
}

// LineConfig tunes the line generator.
type LineConfig struct {
	DowngradeProbability    float64       `mapstructure:"downgrade_probability"`
	ContinuationProbability float64       `mapstructure:"continuation_probability"`
	JitterMin               time.Duration `mapstructure:"jitter_min"`
	JitterMax               time.Duration `mapstructure:"jitter_max"`
	// StyleBands are the cumulative upper bounds of the composite, request
	// and failure styles; fragments take the rest of [0,1).
	StyleBands []float64 `mapstructure:"style_bands"`
}

// ProgressConfig tunes the progress animator.
type ProgressConfig struct {
	MinWidth            int           `mapstructure:"min_width"`
	MaxWidth            int           `mapstructure:"max_width"`
	WidthCap            int           `mapstructure:"width_cap"` // 0 = uncapped
	MinSteps            int           `mapstructure:"min_steps"`
	MaxSteps            int           `mapstructure:"max_steps"`
	MinDuration         time.Duration `mapstructure:"min_duration"`
	MaxDuration         time.Duration `mapstructure:"max_duration"`
	Pace                float64       `mapstructure:"pace"`
	BurstProbability    float64       `mapstructure:"burst_probability"`
	StallProbability    float64       `mapstructure:"stall_probability"`
	FinaleThreshold     float64       `mapstructure:"finale_threshold"`
	DramaticProbability float64       `mapstructure:"dramatic_probability"`
	BlankProbability    float64       `mapstructure:"blank_probability"` // empty cell is a space
}

// DriverConfig tunes the pacing of the main loop.
type DriverConfig struct {
	BarThreshold   int           `mapstructure:"bar_threshold"`
	BarProbability float64       `mapstructure:"bar_probability"`
	LineDelayMin   time.Duration `mapstructure:"line_delay_min"`
	LineDelayMax   time.Duration `mapstructure:"line_delay_max"`
	BarPauseMin    time.Duration `mapstructure:"bar_pause_min"`
	BarPauseMax    time.Duration `mapstructure:"bar_pause_max"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:   "text",
		LogLevel: "warn",
		Layout: LayoutConfig{
			LevelWidth:   8,
			HostWidth:    18,
			ServiceWidth: 20,
		},
		Lines: LineConfig{
			DowngradeProbability:    0.80,
			ContinuationProbability: 0.07,
			JitterMin:               -1400 * time.Millisecond,
			JitterMax:               2100 * time.Millisecond,
			StyleBands:              []float64{0.30, 0.55, 0.80},
		},
		Progress: ProgressConfig{
			MinWidth:            28,
			MaxWidth:            48,
			MinSteps:            18,
			MaxSteps:            36,
			MinDuration:         1800 * time.Millisecond,
			MaxDuration:         4800 * time.Millisecond,
			Pace:                2.5,
			BurstProbability:    0.08,
			StallProbability:    0.12,
			FinaleThreshold:     0.87,
			DramaticProbability: 0.30,
			BlankProbability:    0.70,
		},
		Driver: DriverConfig{
			BarThreshold:   6,
			BarProbability: 0.09,
			LineDelayMin:   50 * time.Millisecond,
			LineDelayMax:   650 * time.Millisecond,
			BarPauseMin:    400 * time.Millisecond,
			BarPauseMax:    1200 * time.Millisecond,
		},
	}
}

// FromViper decodes v over the defaults and validates the result. Keys
// absent from v keep their default values.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	prob := func(name string, p float64) {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", name, p))
		}
	}
	ordered := func(name string, lo, hi int64) {
		if lo > hi {
			errs = append(errs, fmt.Errorf("%s: min %d exceeds max %d", name, lo, hi))
		}
	}

	switch c.Output {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("output must be text or json, got %q", c.Output))
	}

	if c.Layout.LevelWidth < 0 || c.Layout.HostWidth < 0 || c.Layout.ServiceWidth < 0 {
		errs = append(errs, errors.New("layout widths must not be negative"))
	}

	prob("lines.downgrade_probability", c.Lines.DowngradeProbability)
	prob("lines.continuation_probability", c.Lines.ContinuationProbability)
	ordered("lines.jitter", int64(c.Lines.JitterMin), int64(c.Lines.JitterMax))
	if len(c.Lines.StyleBands) != 3 {
		errs = append(errs, fmt.Errorf("lines.style_bands needs 3 cumulative bounds, got %d", len(c.Lines.StyleBands)))
	} else {
		prev := 0.0
		for _, b := range c.Lines.StyleBands {
			if b < prev || b > 1 {
				errs = append(errs, fmt.Errorf("lines.style_bands must be ascending within [0,1], got %v", c.Lines.StyleBands))
				break
			}
			prev = b
		}
	}

	p := c.Progress
	if p.MinWidth < 1 {
		errs = append(errs, fmt.Errorf("progress.min_width must be positive, got %d", p.MinWidth))
	}
	ordered("progress.width", int64(p.MinWidth), int64(p.MaxWidth))
	if p.MinSteps < 1 {
		errs = append(errs, fmt.Errorf("progress.min_steps must be positive, got %d", p.MinSteps))
	}
	ordered("progress.steps", int64(p.MinSteps), int64(p.MaxSteps))
	ordered("progress.duration", int64(p.MinDuration), int64(p.MaxDuration))
	if p.Pace <= 0 {
		errs = append(errs, fmt.Errorf("progress.pace must be positive, got %v", p.Pace))
	}
	prob("progress.burst_probability", p.BurstProbability)
	prob("progress.stall_probability", p.StallProbability)
	prob("progress.finale_threshold", p.FinaleThreshold)
	prob("progress.dramatic_probability", p.DramaticProbability)
	prob("progress.blank_probability", p.BlankProbability)

	d := c.Driver
	if d.BarThreshold < 0 {
		errs = append(errs, fmt.Errorf("driver.bar_threshold must not be negative, got %d", d.BarThreshold))
	}
	prob("driver.bar_probability", d.BarProbability)
	ordered("driver.line_delay", int64(d.LineDelayMin), int64(d.LineDelayMax))
	ordered("driver.bar_pause", int64(d.BarPauseMin), int64(d.BarPauseMax))

	return errors.Join(errs...)
}

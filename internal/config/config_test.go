package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func load(t *testing.T, yaml string) (Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("read config: %v", err)
	}
	return FromViper(v)
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestFromViper_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lines.DowngradeProbability != 0.80 {
		t.Errorf("expected default downgrade 0.80, got %v", cfg.Lines.DowngradeProbability)
	}
	if cfg.Driver.BarThreshold != 6 {
		t.Errorf("expected default bar threshold 6, got %d", cfg.Driver.BarThreshold)
	}
	if cfg.Layout.HostWidth != 18 {
		t.Errorf("expected default host width 18, got %d", cfg.Layout.HostWidth)
	}
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := load(t, `
seed: 1234
lines:
  downgrade_probability: 0.75
  jitter_min: -500ms
driver:
  line_delay_max: 1s
progress:
  max_width: 60
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Seed)
	}
	if cfg.Lines.DowngradeProbability != 0.75 {
		t.Errorf("expected downgrade 0.75, got %v", cfg.Lines.DowngradeProbability)
	}
	if cfg.Lines.JitterMin != -500*time.Millisecond {
		t.Errorf("expected jitter_min -500ms, got %v", cfg.Lines.JitterMin)
	}
	if cfg.Lines.JitterMax != 2100*time.Millisecond {
		t.Errorf("expected untouched jitter_max 2.1s, got %v", cfg.Lines.JitterMax)
	}
	if cfg.Driver.LineDelayMax != time.Second {
		t.Errorf("expected line_delay_max 1s, got %v", cfg.Driver.LineDelayMax)
	}
	if cfg.Progress.MaxWidth != 60 || cfg.Progress.MinWidth != 28 {
		t.Errorf("expected width range 28..60, got %d..%d", cfg.Progress.MinWidth, cfg.Progress.MaxWidth)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"probability above one", func(c *Config) { c.Driver.BarProbability = 1.5 }, "driver.bar_probability"},
		{"negative probability", func(c *Config) { c.Lines.ContinuationProbability = -0.1 }, "lines.continuation_probability"},
		{"inverted widths", func(c *Config) { c.Progress.MinWidth = 50 }, "progress.width"},
		{"zero steps", func(c *Config) { c.Progress.MinSteps = 0 }, "progress.min_steps"},
		{"bad output", func(c *Config) { c.Output = "xml" }, "output must be"},
		{"bands descending", func(c *Config) { c.Lines.StyleBands = []float64{0.5, 0.4, 0.9} }, "ascending"},
		{"bands short", func(c *Config) { c.Lines.StyleBands = []float64{0.5} }, "3 cumulative"},
		{"inverted delay", func(c *Config) { c.Driver.LineDelayMin = time.Second }, "driver.line_delay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestRegisterEnablesNestedEnv(t *testing.T) {
	t.Setenv("FAUXLOG_DRIVER_BAR_PROBABILITY", "0.25")

	v := viper.New()
	Register(v)
	v.SetEnvPrefix("FAUXLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Driver.BarProbability != 0.25 {
		t.Errorf("expected env override 0.25, got %v", cfg.Driver.BarProbability)
	}
	if cfg.Progress.FinaleThreshold != 0.87 {
		t.Errorf("expected registered default 0.87, got %v", cfg.Progress.FinaleThreshold)
	}
	if !v.IsSet("layout.host_width") {
		t.Error("expected nested default layout.host_width to be registered")
	}
}

func TestFromViper_OutputIsCaseInsensitive(t *testing.T) {
	cfg, err := load(t, "output: JSON\n")
	if err != nil {
		t.Fatalf("expected JSON to be accepted, got %v", err)
	}
	if cfg.Output != "json" {
		t.Errorf("expected output json, got %q", cfg.Output)
	}
}

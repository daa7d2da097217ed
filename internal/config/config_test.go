package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/ukaji3/pyramid-go/pkg/pyramid"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pyramid.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Ticks.Count != 5 || cfg.LogLevel != "info" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.TickFormatter() != nil {
		t.Error("Expected no tick formatter by default")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
bar_width = 0.8
x_axis_max = 2500000
log_level = "debug"

[ticks]
count = 7
scale = 1000
suffix = " K"

[directions]
Women = "L"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BarWidth != 0.8 || cfg.XAxisMax != 2500000 || cfg.Ticks.Count != 7 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Directions["Women"] != "L" {
		t.Errorf("Expected Women direction L, got %q", cfg.Directions["Women"])
	}

	level, err := cfg.Level()
	if err != nil || level != log.DebugLevel {
		t.Errorf("Level() = %v, %v; expected debug", level, err)
	}

	opts := cfg.Options(nil)
	if !opts.Show || opts.EffectiveBarWidth() != 0.8 || opts.TickCount != 7 {
		t.Errorf("Unexpected options: %+v", opts)
	}
	if got := opts.TickFormatter(25000, pyramid.AxisContext{}); got != "25 K" {
		t.Errorf("TickFormatter(25000) = %q, expected %q", got, "25 K")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "bar_width = 0.8\n")
	t.Setenv("PYRAMID_BAR_WIDTH", "0.5")
	t.Setenv("PYRAMID_INCREMENTAL", "true")
	t.Setenv("PYRAMID_TICK_COUNT", "not a number")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BarWidth != 0.5 {
		t.Errorf("Expected env bar width 0.5, got %v", cfg.BarWidth)
	}
	if !cfg.Incremental {
		t.Error("Expected incremental from env")
	}
	if cfg.Ticks.Count != 5 {
		t.Errorf("Expected invalid env value to be ignored, got %d", cfg.Ticks.Count)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "bar_widht = 0.8\n", "unknown keys: bar_widht"},
		{"negative bar width", "bar_width = -1\n", "bar_width must not be negative"},
		{"negative bound", "x_axis_max = -5\n", "x_axis_max must not be negative"},
		{"syntax", "bar_width = \n", "reading config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, expected to contain %q", err, tt.want)
			}
		})
	}
}

func TestRaiseXAxisMax(t *testing.T) {
	cfg := Default()
	cfg.XAxisMax = 100

	if cfg.RaiseXAxisMax(50) {
		t.Error("RaiseXAxisMax(50) should not lower the bound")
	}
	if !cfg.RaiseXAxisMax(300) || cfg.XAxisMax != 300 {
		t.Errorf("RaiseXAxisMax(300) left XAxisMax = %v", cfg.XAxisMax)
	}
	if got := cfg.Options(nil).XAxisMax; got != 300 {
		t.Errorf("Options().XAxisMax = %v, expected 300", got)
	}
}

// Package config loads pyramid CLI configuration from a TOML file, an
// optional .env file and PYRAMID_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/ukaji3/pyramid-go/pkg/pyramid"
)

// Ticks configures value-axis tick output.
type Ticks struct {
	// Count is the number of labelled ticks across the value axis.
	Count int `toml:"count"`
	// Scale divides tick values before formatting (e.g. 1000).
	Scale float64 `toml:"scale"`
	// Suffix is appended to scaled tick labels (e.g. " K").
	Suffix string `toml:"suffix"`
	// Decimals is the number of decimals of scaled labels; -1 is shortest.
	Decimals int `toml:"decimals"`
}

// Config holds all configuration for the pyramid CLI.
type Config struct {
	BarWidth    float64           `toml:"bar_width"`
	XAxisMax    float64           `toml:"x_axis_max"`
	Incremental bool              `toml:"incremental"`
	LogLevel    string            `toml:"log_level"`
	Ticks       Ticks             `toml:"ticks"`
	Directions  map[string]string `toml:"directions"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Ticks: Ticks{
			Count:    5,
			Decimals: -1,
		},
	}
}

// Load reads configuration. An empty path skips the TOML file.
func Load(path string) (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	cfg.BarWidth = getEnvFloatOrDefault("PYRAMID_BAR_WIDTH", cfg.BarWidth)
	cfg.XAxisMax = getEnvFloatOrDefault("PYRAMID_X_AXIS_MAX", cfg.XAxisMax)
	cfg.Incremental = getEnvBoolOrDefault("PYRAMID_INCREMENTAL", cfg.Incremental)
	cfg.LogLevel = getEnvOrDefault("PYRAMID_LOG_LEVEL", cfg.LogLevel)
	cfg.Ticks.Count = getEnvIntOrDefault("PYRAMID_TICK_COUNT", cfg.Ticks.Count)

	if cfg.BarWidth < 0 {
		return nil, fmt.Errorf("bar_width must not be negative: %v", cfg.BarWidth)
	}
	if cfg.XAxisMax < 0 {
		return nil, fmt.Errorf("x_axis_max must not be negative: %v", cfg.XAxisMax)
	}
	return cfg, nil
}

// Level parses the configured log level.
func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// TickFormatter returns the user tick formatter, or nil when no scale or
// suffix is configured.
func (c *Config) TickFormatter() pyramid.TickFormatter {
	if c.Ticks.Scale == 0 && c.Ticks.Suffix == "" {
		return nil
	}
	return pyramid.ScaledFormatter(c.Ticks.Scale, c.Ticks.Suffix, c.Ticks.Decimals)
}

// Options builds session options from the configuration.
func (c *Config) Options(logger *log.Logger) pyramid.Options {
	opts := pyramid.DefaultOptions()
	opts.BarWidth = c.BarWidth
	opts.XAxisMax = c.XAxisMax
	opts.Incremental = c.Incremental
	opts.TickCount = c.Ticks.Count
	opts.TickFormatter = c.TickFormatter()
	opts.Logger = logger
	return opts
}

// RaiseXAxisMax widens the initial value-axis bound to bound, such as one
// fixed by the input workbook. It reports whether the bound changed.
func (c *Config) RaiseXAxisMax(bound float64) bool {
	if bound <= c.XAxisMax {
		return false
	}
	c.XAxisMax = bound
	return true
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloatOrDefault(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

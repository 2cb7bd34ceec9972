// Package config loads minitorch CLI configuration.
//
// Sources, lowest to highest precedence: built-in defaults, a YAML file
// (explicit path or ./minitorch.yaml), MINITORCH_* environment variables,
// and explicitly set command-line flags.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultConfigFile = "minitorch.yaml"
	DefaultOutput     = "table"
	DefaultPoints     = 50
	DefaultSeed       = 1
	EnvPrefix         = "MINITORCH_"
)

// OutputFormats lists the accepted values of Config.Output.
var OutputFormats = []string{"table", "json", "csv"}

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds CLI settings.
type Config struct {
	Output  string `koanf:"output"`  // table, json or csv.
	Verbose bool   `koanf:"verbose"` // Enables debug logging.
	Seed    uint64 `koanf:"seed"`    // Seed for dataset sampling.
	Points  int    `koanf:"points"`  // Points per generated dataset.
	Workers int    `koanf:"workers"` // Worker count for parallel maps; 0 uses all CPUs.

	// File is the config file that was read, empty if none.
	File string `koanf:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Seed:   DefaultSeed,
		Points: DefaultPoints,
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	valid := false
	for _, f := range OutputFormats {
		if c.Output == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: output %q (want one of %s)", ErrInvalidConfig, c.Output, strings.Join(OutputFormats, ", "))
	}
	if c.Points < 0 {
		return fmt.Errorf("%w: points must be non-negative, got %d", ErrInvalidConfig, c.Points)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// findConfigFile returns explicit if set, else DefaultConfigFile when it exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// Load builds a Config from defaults, file, environment and flags.
// flags may be nil; only flags that were explicitly set override other sources.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	def := Default()

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":  def.Output,
		"verbose": def.Verbose,
		"seed":    def.Seed,
		"points":  def.Points,
		"workers": def.Workers,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// MINITORCH_POINTS -> points
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type (
	configKey struct{}
	loggerKey struct{}
)

// WithConfig returns a context carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the Config stored in ctx, or Default() if none.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	return Default()
}

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// GetLogger retrieves the logger from ctx.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// NewLogger returns a text logger writing to w; verbose enables debug level.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/Simplici0/masscalc/internal/geometry"
	"github.com/Simplici0/masscalc/internal/pricing"
)

const (
	envPrefix       = "MASSCALC"
	defaultLogLevel = "info"
)

// Config holds the tunable calculation constants and CLI settings.
type Config struct {
	UnitThickness float64
	EntryCost     pricing.Params
	LogLevel      string
}

// Load reads configuration from defaults, an optional config file and
// MASSCALC_* environment variables, in increasing order of precedence.
func Load(path string) (Config, error) {
	// Best-effort: load local dev environment variables.
	if err := loadDotEnv(".env"); err != nil {
		slog.Warn("could not load .env", "error", err)
	}

	v := viper.New()
	v.SetDefault("unit_thickness", geometry.DefaultUnitThickness)
	v.SetDefault("entry_cost.slope", pricing.DefaultSlope)
	v.SetDefault("entry_cost.intercept", pricing.DefaultIntercept)
	v.SetDefault("entry_cost.base", pricing.DefaultBase)
	v.SetDefault("round_costs", true)
	v.SetDefault("log_level", defaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		UnitThickness: v.GetFloat64("unit_thickness"),
		EntryCost: pricing.Params{
			Slope:     v.GetFloat64("entry_cost.slope"),
			Intercept: v.GetFloat64("entry_cost.intercept"),
			Base:      v.GetFloat64("entry_cost.base"),
			Round:     v.GetBool("round_costs"),
		},
		LogLevel: strings.ToLower(v.GetString("log_level")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.UnitThickness != geometry.DefaultUnitThickness {
		slog.Warn("unit thickness overridden", "unit_thickness", cfg.UnitThickness)
	}
	return cfg, nil
}

// Validate checks for invalid configuration values.
func (c Config) Validate() error {
	var err error
	if c.UnitThickness <= 0 {
		err = multierr.Append(err, fmt.Errorf("unit_thickness must be > 0, got %g", c.UnitThickness))
	}
	err = multierr.Append(err, c.EntryCost.Validate())
	if _, levelErr := c.Level(); levelErr != nil {
		err = multierr.Append(err, levelErr)
	}
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

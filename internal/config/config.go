// Package config loads latticewalk settings from defaults, an optional YAML
// file, LATTICEWALK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/latticewalk/explorer"
)

// Sentinel validation errors.
var (
	ErrInvalidTarget    = errors.New("search target must be non-negative")
	ErrInvalidMax       = errors.New("initial max must be non-negative")
	ErrInvalidPacing    = errors.New("invalid pacing")
	ErrInvalidMaxRounds = errors.New("max rounds must be non-negative")
	ErrInvalidLogLevel  = errors.New("invalid logging level")
	ErrInvalidLogFormat = errors.New("invalid logging format")
)

// Default configuration values.
const (
	envPrefix         = "LATTICEWALK"
	defaultTarget     = 8
	defaultInitialMax = 10
	defaultBatch      = 64
	defaultMapRadius  = 30
)

// Config holds all configuration for a latticewalk run.
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SearchConfig holds explorer parameters.
type SearchConfig struct {
	Pacing     string `mapstructure:"pacing"`
	Target     int    `mapstructure:"target"`
	InitialMax int    `mapstructure:"initial_max"`
	Batch      int    `mapstructure:"batch"`
	MaxRounds  int    `mapstructure:"max_rounds"`
}

// OutputConfig holds presentation switches for the CLI.
type OutputConfig struct {
	MapRadius int  `mapstructure:"map_radius"`
	Map       bool `mapstructure:"map"`
	KeepBad   bool `mapstructure:"keep_bad"`
	Rounds    bool `mapstructure:"rounds"`
	NoColor   bool `mapstructure:"no_color"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"target":      "search.target",
	"initial-max": "search.initial_max",
	"pacing":      "search.pacing",
	"batch":       "search.batch",
	"max-rounds":  "search.max_rounds",
	"map":         "output.map",
	"map-radius":  "output.map_radius",
	"keep-bad":    "output.keep_bad",
	"rounds":      "output.rounds",
	"no-color":    "output.no_color",
	"log-level":   "logging.level",
	"log-format":  "logging.format",
}

// Load builds a Config. An empty configPath searches ./latticewalk.yaml
// and $HOME/.config/latticewalk; a missing file is not an error unless the
// path was given explicitly. flags may be nil; only flags present in the
// set are bound.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("latticewalk")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.config/latticewalk")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := viperCfg.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Pacing resolves the configured batch policy.
func (c *Config) Pacing() (explorer.Pacing, error) {
	p, err := explorer.ParsePacing(c.Search.Pacing, c.Search.Batch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPacing, err)
	}

	return p, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("search.target", defaultTarget)
	viperCfg.SetDefault("search.initial_max", defaultInitialMax)
	viperCfg.SetDefault("search.pacing", "frontier")
	viperCfg.SetDefault("search.batch", defaultBatch)
	viperCfg.SetDefault("search.max_rounds", 0)

	viperCfg.SetDefault("output.map", false)
	viperCfg.SetDefault("output.map_radius", defaultMapRadius)
	viperCfg.SetDefault("output.keep_bad", false)
	viperCfg.SetDefault("output.rounds", true)
	viperCfg.SetDefault("output.no_color", false)

	viperCfg.SetDefault("logging.level", "warn")
	viperCfg.SetDefault("logging.format", "text")
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Search.Target < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, config.Search.Target)
	}

	if config.Search.InitialMax < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMax, config.Search.InitialMax)
	}

	if config.Search.MaxRounds < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxRounds, config.Search.MaxRounds)
	}

	if _, err := config.Pacing(); err != nil {
		return err
	}

	if _, err := parseLevel(config.Logging.Level); err != nil {
		return err
	}

	switch config.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	return nil
}

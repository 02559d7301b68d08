// Package cliconfig loads engine.Options from config file, environment,
// and flag sources with github.com/spf13/viper, the same three-tier
// precedence (flags > env > file > defaults) the teacher's
// internal/cli/config.LoadAndValidate uses, generalized down to the
// handful of options spec.md §4.8 actually recognizes.
package cliconfig

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stackvity/dataingest/pkg/engine"
)

// EnvPrefix mirrors the teacher's EnvPrefix constant, scoped to this
// module's name: a DATAINGEST_MAX_WORKERS environment variable overrides
// the "max_workers" key, for example.
const EnvPrefix = "DATAINGEST"

// DefaultConfigName is the base name (without extension) Viper searches
// for when no explicit config file path is given.
const DefaultConfigName = "dataingest"

// rawConfig is the intermediate shape Viper unmarshals into, matching the
// option table in spec.md §4.8 key-for-key so config files and
// environment variables use the same names the spec documents.
type rawConfig struct {
	Mode         string `mapstructure:"mode"`
	Benchmark    bool   `mapstructure:"benchmark"`
	TimeoutMs    int    `mapstructure:"timeout_ms"`
	MaxWorkers   int    `mapstructure:"max_workers"`
	MaxRetries   int    `mapstructure:"max_retries"`
	RetryDelayMs int    `mapstructure:"retry_delay_ms"`
	OutputDir    string `mapstructure:"output_dir"`
	ShowProgress bool   `mapstructure:"show_progress"`
	Verbose      bool   `mapstructure:"verbose"`
}

// Load builds engine.Options from an optional config file path plus the
// flags already parsed onto the given FlagSet, validating option names
// and filling in defaults exactly as spec.md §4.8 describes.
func Load(cfgFile string, flags *pflag.FlagSet) (engine.Options, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return engine.Options{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Only defaults and config-file keys are validated here: the flag set
	// also carries CLI-only flags (config, input, no-tui, help, ...), and
	// unknown flags are already rejected by the flag parser.
	if err := engine.ValidateOptionNames(presentKeys(v)); err != nil {
		return engine.Options{}, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return engine.Options{}, fmt.Errorf("binding flags: %w", err)
		}
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return engine.Options{}, fmt.Errorf("unmarshalling configuration: %w", err)
	}

	return toOptions(raw), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", string(engine.DefaultMode))
	v.SetDefault("benchmark", false)
	v.SetDefault("timeout_ms", engine.DefaultTimeout.Milliseconds())
	v.SetDefault("max_workers", engine.DefaultMaxWorkers)
	v.SetDefault("max_retries", engine.DefaultMaxRetries)
	v.SetDefault("retry_delay_ms", engine.DefaultRetryDelay.Milliseconds())
	v.SetDefault("output_dir", engine.DefaultOutputDir)
	v.SetDefault("show_progress", true)
	v.SetDefault("verbose", false)
}

func toOptions(raw rawConfig) engine.Options {
	return engine.Options{
		Mode:         engine.Mode(raw.Mode),
		Benchmark:    raw.Benchmark,
		Timeout:      time.Duration(raw.TimeoutMs) * time.Millisecond,
		MaxWorkers:   raw.MaxWorkers,
		MaxRetries:   raw.MaxRetries,
		RetryDelay:   time.Duration(raw.RetryDelayMs) * time.Millisecond,
		OutputDir:    raw.OutputDir,
		ShowProgress: raw.ShowProgress,
		Verbose:      raw.Verbose,
		Logger:       slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}
}

func presentKeys(v *viper.Viper) []string {
	settings := v.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	return keys
}

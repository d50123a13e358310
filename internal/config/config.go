// Package config loads the CLI's tunables from an optional YAML file,
// layered over built-in defaults, the way niceyeti-tabular's FromYaml
// loads training config over its own struct defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"snake-maze/src"
)

// CLIConfig extends the solver's own src.Config with the ambient options
// only the command line cares about.
type CLIConfig struct {
	src.Config
	ForceUnbounded bool   `mapstructure:"force_unbounded"`
	DefaultSearch  string `mapstructure:"default_search"`
}

// Default returns the CLI's built-in defaults: the solver's documented
// defaults plus "full" as the default search variant.
func Default() CLIConfig {
	return CLIConfig{
		Config:        src.DefaultConfig(),
		DefaultSearch: "full",
	}
}

// Load reads path (a YAML file) over Default()'s values. A missing file
// is not an error — callers that never pass --config get the defaults
// untouched.
func Load(path string) (CLIConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	vp.SetDefault("timeout", cfg.Timeout.String())
	vp.SetDefault("full_precision", cfg.FullPrecision)
	vp.SetDefault("ignore_timeout", cfg.IgnoreTimeout)
	vp.SetDefault("force_unbounded", cfg.ForceUnbounded)
	vp.SetDefault("default_search", cfg.DefaultSearch)

	if err := vp.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	raw := vp.GetString("timeout")
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return cfg, fmt.Errorf("config: timeout %q: %w", raw, err)
	}

	cfg.Timeout = timeout
	cfg.FullPrecision = vp.GetBool("full_precision")
	cfg.IgnoreTimeout = vp.GetBool("ignore_timeout")
	cfg.ForceUnbounded = vp.GetBool("force_unbounded")
	if s := vp.GetString("default_search"); s != "" {
		cfg.DefaultSearch = s
	}

	if cfg.IgnoreTimeout && cfg.FullPrecision && !cfg.ForceUnbounded {
		return cfg, fmt.Errorf("config: ignore_timeout with full_precision needs force_unbounded")
	}

	return cfg, nil
}

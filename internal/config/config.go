// Package config centralizes every tunable threshold and weight used by the
// delegation heuristics. Supports YAML config files and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Tunables holds the numeric knobs for classification, complexity scoring,
// and load balancing. Defaults satisfy the documented boundary cases; hosts
// may override them via config file or DISPATCH_* environment variables.
type Tunables struct {
	Classification ClassificationTunables `mapstructure:"classification"`
	Complexity     ComplexityTunables     `mapstructure:"complexity"`
	Assignment     AssignmentTunables     `mapstructure:"assignment"`
}

// ClassificationTunables controls the keyword classifier.
type ClassificationTunables struct {
	// MinMatchWeight is the matched weight below which classification
	// falls back to the general category.
	MinMatchWeight float64 `mapstructure:"min_match_weight"`
	// FallbackConfidence is the confidence reported on fallback. Must be > 0.
	FallbackConfidence float64 `mapstructure:"fallback_confidence"`
}

// ComplexityTunables controls the complexity estimator.
type ComplexityTunables struct {
	// RaiseWeight is the score added per detected raising signal group.
	RaiseWeight float64 `mapstructure:"raise_weight"`
	// LowerWeight is the score subtracted per detected lowering signal group.
	LowerWeight float64 `mapstructure:"lower_weight"`
	// LowCeiling is the exclusive upper bound for the low level.
	LowCeiling float64 `mapstructure:"low_ceiling"`
	// HighFloor is the exclusive lower bound for the high level.
	HighFloor float64 `mapstructure:"high_floor"`
}

// AssignmentTunables controls the load-balanced assignment tracker.
type AssignmentTunables struct {
	// BalanceTopN is how many top-ranked fitting candidates load balancing
	// considers before picking the least loaded.
	BalanceTopN int `mapstructure:"balance_top_n"`
}

// Default returns the built-in tunables. These are the values the test
// suite pins the boundary behavior against.
func Default() Tunables {
	return Tunables{
		Classification: ClassificationTunables{
			MinMatchWeight:     1.0,
			FallbackConfidence: 0.3,
		},
		Complexity: ComplexityTunables{
			RaiseWeight: 1.5,
			LowerWeight: 1.0,
			LowCeiling:  1.0,
			HighFloor:   2.0,
		},
		Assignment: AssignmentTunables{
			BalanceTopN: 2,
		},
	}
}

// Load reads tunables from config paths and environment variables.
// Precedence (highest to lowest):
// 1. DISPATCH_* environment variables
// 2. Project config (.dispatch.yaml in the current directory)
// 3. User config (~/.config/dispatch/config.yaml)
// 4. Built-in defaults
func Load() (Tunables, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Tunables{}, fmt.Errorf("reading user config: %w", err)
		}
	}

	if project := findProjectConfig(); project != "" {
		pv := viper.New()
		pv.SetConfigFile(project)
		if err := pv.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(pv.AllSettings()); err != nil {
				return Tunables{}, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("DISPATCH")
	v.AutomaticEnv()

	var t Tunables
	if err := v.Unmarshal(&t); err != nil {
		return Tunables{}, fmt.Errorf("unmarshaling tunables: %w", err)
	}
	return t, nil
}

// LoadFromPath reads tunables from a specific file (for testing).
func LoadFromPath(path string) (Tunables, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Tunables{}, fmt.Errorf("reading config from %s: %w", path, err)
	}

	var t Tunables
	if err := v.Unmarshal(&t); err != nil {
		return Tunables{}, fmt.Errorf("unmarshaling tunables: %w", err)
	}
	return t, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("classification.min_match_weight", d.Classification.MinMatchWeight)
	v.SetDefault("classification.fallback_confidence", d.Classification.FallbackConfidence)
	v.SetDefault("complexity.raise_weight", d.Complexity.RaiseWeight)
	v.SetDefault("complexity.lower_weight", d.Complexity.LowerWeight)
	v.SetDefault("complexity.low_ceiling", d.Complexity.LowCeiling)
	v.SetDefault("complexity.high_floor", d.Complexity.HighFloor)
	v.SetDefault("assignment.balance_top_n", d.Assignment.BalanceTopN)
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dispatch")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "dispatch")
}

// findProjectConfig looks for .dispatch.yaml in the working directory.
func findProjectConfig() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(wd, ".dispatch.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

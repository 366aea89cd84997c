// Package config loads the engine's tunables (discovery bounds, the
// conformance execution ceiling, log format) from a YAML file, environment
// overrides, and documented defaults.
//
// Grounded on the perf-analysis pkg/config package's Load/setDefaults/
// Validate shape, adapted to this engine's much smaller key set.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config is the engine's full runtime configuration.
type Config struct {
	Discovery   DiscoveryConfig   `mapstructure:"discovery"`
	Conformance ConformanceConfig `mapstructure:"conformance"`
	Log         LogConfig         `mapstructure:"log"`
}

// DiscoveryConfig tunes process-tree discovery (spec §4.7, §9 Open
// Questions).
type DiscoveryConfig struct {
	// RedoUnrollDepth bounds how many loop-body repetitions conformance
	// checking unrolls a redo node into (default 2, per spec §9).
	RedoUnrollDepth int `mapstructure:"redo_unroll_depth"`
	// FallbackCostModel selects the cost function fallback cut selection
	// charges for each edge it adds: "unit" (one per added edge) or
	// "data_driven" (weighted by observed follow-probability in the traces).
	// Edges a fallback cut removes always cost their DFG weight.
	FallbackCostModel string `mapstructure:"fallback_cost_model"`
}

// ConformanceConfig tunes Component I's language-enumeration bound.
type ConformanceConfig struct {
	// ExecutionCeiling caps the number of distinct executions enumerated
	// before Executions reports Truncated (spec §7 Overflow).
	ExecutionCeiling int `mapstructure:"execution_ceiling"`
}

// LogConfig selects obslog's verbosity and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

const (
	FallbackCostUnit       = "unit"
	FallbackCostDataDriven = "data_driven"
)

// Load reads configuration from configPath (if non-empty) or the standard
// search locations, falling back to defaults when no file is found.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("ocpt")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/ocpt")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// fine, defaults apply
		} else if os.IsNotExist(err) {
			// fine, defaults apply
		} else {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	v.SetEnvPrefix("OCPT")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("discovery.redo_unroll_depth", 2)
	v.SetDefault("discovery.fallback_cost_model", FallbackCostUnit)
	v.SetDefault("conformance.execution_ceiling", 1_000_000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Validate rejects configurations that would make discovery or
// conformance checking ill-defined.
func (c *Config) Validate() error {
	if c.Discovery.RedoUnrollDepth < 0 {
		return fmt.Errorf("discovery.redo_unroll_depth must be >= 0, got %d", c.Discovery.RedoUnrollDepth)
	}
	switch c.Discovery.FallbackCostModel {
	case FallbackCostUnit, FallbackCostDataDriven:
	default:
		return fmt.Errorf("discovery.fallback_cost_model: unsupported %q", c.Discovery.FallbackCostModel)
	}
	if c.Conformance.ExecutionCeiling < 1 {
		return fmt.Errorf("conformance.execution_ceiling must be >= 1, got %d", c.Conformance.ExecutionCeiling)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format: unsupported %q", c.Log.Format)
	}

	return nil
}

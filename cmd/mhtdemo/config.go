package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension, mirroring the
// pack's convention of a dotfile named after the binary.
const configName = ".mhtdemo"

const configType = "yaml"

// envPrefix is the environment variable prefix for mhtdemo settings.
const envPrefix = "MHTDEMO"

// demoConfig holds every tunable of the synthetic scan generator and the
// mht.Engine it drives.
type demoConfig struct {
	Scans         int     `mapstructure:"scans"`
	MaxDepth      int     `mapstructure:"max_depth"`
	MinGHypoRatio float64 `mapstructure:"min_ghypo_ratio"`
	MaxGHypos     int     `mapstructure:"max_ghypos"`
	GateWidth     float64 `mapstructure:"gate_width"`
	Sigma         float64 `mapstructure:"sigma"`
	NoColor       bool    `mapstructure:"no_color"`
}

// loadConfig reads mhtdemo's configuration from configPath (if given),
// falling back to a dotfile search in the working directory and the
// environment, then applying hard-coded defaults (§6 construction
// parameters carry no defaults of their own; the demo's are entirely its
// own concern).
func loadConfig(configPath string) (*demoConfig, error) {
	v := viper.New()
	applyDemoDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg demoConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDemoDefaults(v *viper.Viper) {
	v.SetDefault("scans", 6)
	v.SetDefault("max_depth", 3)
	v.SetDefault("min_ghypo_ratio", 0.01)
	v.SetDefault("max_ghypos", 8)
	v.SetDefault("gate_width", 2.5)
	v.SetDefault("sigma", 1.0)
	v.SetDefault("no_color", false)
}

func (c *demoConfig) validate() error {
	if c.Scans <= 0 {
		return errors.New("mhtdemo: scans must be positive")
	}
	if c.MaxDepth <= 0 {
		return errors.New("mhtdemo: max_depth must be positive")
	}
	if c.MinGHypoRatio <= 0 || c.MinGHypoRatio > 1 {
		return errors.New("mhtdemo: min_ghypo_ratio must be in (0, 1]")
	}
	if c.MaxGHypos <= 0 {
		return errors.New("mhtdemo: max_ghypos must be positive")
	}
	return nil
}

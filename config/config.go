// Package config loads lvroute settings from an optional YAML file and
// LVROUTE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Network NetworkConfig `mapstructure:"network"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Route   RouteConfig   `mapstructure:"route"`
}

type NetworkConfig struct {
	// Path is the network description; its extension picks the parser.
	Path string `mapstructure:"path"`
}

type StorageConfig struct {
	// Path is the SQLite database written by `lvroute import`.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RouteConfig struct {
	// MaxCost caps reported route costs; 0 means unlimited.
	MaxCost float64 `mapstructure:"max_cost"`
	// ClosedThreshold marks edges at or above this weight as closed; 0 disables it.
	ClosedThreshold float64 `mapstructure:"closed_threshold"`
}

// Load reads the configuration from file and environment variables.
// With an empty cfgFile it looks for lvroute.yaml in $HOME/.lvroute and the
// working directory; a missing file there is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".lvroute"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("lvroute")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("LVROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return unmarshal(v)
}

// Defaults returns the configuration used when no file or environment overrides exist.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := unmarshal(v)
	if err != nil {
		// Defaults are static; failing to decode them is a programming error.
		panic(err)
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network.path", filepath.Join("static", "ticket_to_ride.txt"))
	v.SetDefault("storage.path", "./data/lvroute.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("route.max_cost", 0)
	v.SetDefault("route.closed_threshold", 0)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Route.MaxCost < 0 {
		return nil, fmt.Errorf("route.max_cost must be >= 0, got %v", cfg.Route.MaxCost)
	}
	if cfg.Route.ClosedThreshold < 0 {
		return nil, fmt.Errorf("route.closed_threshold must be >= 0, got %v", cfg.Route.ClosedThreshold)
	}

	return &cfg, nil
}

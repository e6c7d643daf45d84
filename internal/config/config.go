// Package config loads depscope configuration from file, environment and
// defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Log holds logging configuration.
type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Shell holds interactive shell defaults.
type Shell struct {
	TopDefault  int `mapstructure:"top_default" yaml:"top_default"`
	FindDefault int `mapstructure:"find_default" yaml:"find_default"`
}

// Config is the full depscope configuration.
type Config struct {
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	Log     Log    `mapstructure:"log" yaml:"log"`

	// FeaturesEnabled is a comma-separated list of feature toggles.
	// BUILDDEPS makes build-time dependencies participate in the graph
	// and in conflict checks.
	FeaturesEnabled string `mapstructure:"features_enabled" yaml:"features_enabled"`

	Shell Shell `mapstructure:"shell" yaml:"shell"`
}

// FeatureBuildDeps is the toggle that includes build-time dependencies.
const FeatureBuildDeps = "BUILDDEPS"

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir:         defaultDataDir(),
		Log:             Log{Level: "info", Format: "text"},
		FeaturesEnabled: "",
		Shell:           Shell{TopDefault: 10, FindDefault: 10},
	}
}

// FeatureEnabled reports whether the named feature toggle is set.
func (c *Config) FeatureEnabled(name string) bool {
	for _, f := range strings.Split(c.FeaturesEnabled, ",") {
		if strings.EqualFold(strings.TrimSpace(f), name) {
			return true
		}
	}
	return false
}

// BuildDepsEnabled reports whether build dependencies participate in
// graph construction and conflict checks.
func (c *Config) BuildDepsEnabled() bool {
	return c.FeatureEnabled(FeatureBuildDeps)
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "depscope")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "./data"
	}
	return filepath.Join(home, ".depscope")
}

// Load reads the configuration. With an explicit path the file must not
// be malformed; without one, a "depscope.yaml" in the working directory
// or /etc/depscope/ is used when present. Environment variables with the
// DEPSCOPE_ prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("depscope")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/depscope/")
	}
	v.SetEnvPrefix("DEPSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Default()
	// Defaults registered with viper keep env-only overrides visible to
	// Unmarshal even when no config file exists.
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("features_enabled", cfg.FeaturesEnabled)
	v.SetDefault("shell.top_default", cfg.Shell.TopDefault)
	v.SetDefault("shell.find_default", cfg.Shell.FindDefault)

	if err := v.ReadInConfig(); err != nil && path != "" {
		return nil, err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

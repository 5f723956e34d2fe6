package store

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ConfigPathEnv names an extra directory searched for the config file.
const ConfigPathEnv = "CHRONO_CONFIG_PATH"

// Config resolves where and how chrono keeps its documents.
type Config interface {
	BasePath() string
	Backend() string
	LogLevel() string
	ConfigFile() string
}

// LoadConfig reads .chrono (yaml, toml or json) from $CHRONO_CONFIG_PATH or
// the working directory, then applies CHRONO_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.chrono")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("log_level", "warn")
	v.SetConfigName(".chrono")
	v.SetEnvPrefix("CHRONO")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &StaticConfig{
		Path:  path,
		Store: v.GetString("backend"),
		Level: v.GetString("log_level"),
		File:  v.ConfigFileUsed(),
	}, nil
}

// StaticConfig is a fixed Config, used by LoadConfig and by callers that
// know their settings up front.
type StaticConfig struct {
	Path  string `json:"path" yaml:"path"`
	Store string `json:"backend" yaml:"backend"`
	Level string `json:"log_level" yaml:"log_level"`
	File  string `json:"config_file,omitempty" yaml:"config_file,omitempty"`
}

func (c *StaticConfig) BasePath() string {
	return c.Path
}

func (c *StaticConfig) Backend() string {
	if c.Store == "" {
		return BackendDiskv
	}
	return c.Store
}

func (c *StaticConfig) LogLevel() string {
	return c.Level
}

func (c *StaticConfig) ConfigFile() string {
	return c.File
}

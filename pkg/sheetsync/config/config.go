// Package config loads sheetsync configuration with Viper. Values come
// from defaults, an optional sheetsync.toml, and SHEETSYNC_* environment
// variables, in increasing precedence.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config is the full sheetsync configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Workspace WorkspaceConfig `mapstructure:"workspace"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// WorkspaceConfig configures the xlsx workbook store.
type WorkspaceConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig configures process logging.
type LogConfig struct {
	// JSON selects structured JSON output instead of console output.
	JSON bool `mapstructure:"json"`
}

// SetDefaults registers default values on a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8090")
	v.SetDefault("workspace.dir", ".")
	v.SetDefault("log.json", false)
}

// Load reads configuration. When path is empty the working directory is
// searched for sheetsync.toml; a missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHEETSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	} else {
		v.SetConfigName("sheetsync")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "reading config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}

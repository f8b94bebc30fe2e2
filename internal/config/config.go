// Package config provides Viper-based configuration for accountcli.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete accountcli configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// ServerConfig points the client at the account service.
type ServerConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StorageConfig locates the local state database.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// Load reads configuration from file and environment variables. A missing
// config file is fine; defaults and the environment still apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".accountcli")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/accountcli")
	}

	v.SetEnvPrefix("ACCOUNTCLI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.url", "http://localhost:8080/api")
	v.SetDefault("server.timeout", 30*time.Second)

	v.SetDefault("storage.path", defaultStoragePath())

	v.SetDefault("logging.level", "info")

	v.SetDefault("output.colors", true)
}

// defaultStoragePath puts the state database under the user config
// directory, falling back to the working directory when that is unknown.
func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "accountcli.db"
	}
	return filepath.Join(dir, "accountcli", "accountcli.db")
}

func validate(cfg *Config) error {
	if cfg.Server.URL == "" {
		return fmt.Errorf("server URL must not be empty")
	}
	if cfg.Server.Timeout <= 0 {
		return fmt.Errorf("invalid server timeout: %s", cfg.Server.Timeout)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	return nil
}

// DSN returns the sqlite connection string for the state database,
// creating the parent directory when needed.
func (c *Config) DSN() (string, error) {
	dir := filepath.Dir(c.Storage.Path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("creating storage directory: %w", err)
		}
	}
	return "file:" + c.Storage.Path, nil
}

// Package config loads the application configuration from an optional YAML
// file with environment variable overrides, so containerized deployments can
// run without a config file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig configures the MySQL connection.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// AuthConfig configures bearer token verification. When Disable is set the
// server grants every request the configured development permissions.
type AuthConfig struct {
	Secret  string `yaml:"secret"`
	Disable bool   `yaml:"disable"`

	// DevPermissions is the permission set granted to every request when
	// Disable is set. Empty means the full catalog permission set.
	DevPermissions []string `yaml:"dev_permissions"`
}

// LogConfig configures log output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{DSN: "catalog:catalog@tcp(localhost:3306)/catalog?parseTime=false"},
		Log:      LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads configuration from path, falling back to defaults when path is
// empty, and applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CATALOG_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CATALOG_DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("CATALOG_AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("CATALOG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CATALOG_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

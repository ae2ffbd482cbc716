// Package config loads application settings from YAML, .env and SPEECHBENCH_* variables.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig is the full application configuration
type AppConfig struct {
	Server      ServerConfig      `yaml:"server"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Estimator   EstimatorConfig   `yaml:"estimator"`
	Recommend   RecommendConfig   `yaml:"recommend"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	Environment  string        `yaml:"environment"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

// CatalogConfig points at an optional YAML catalog; empty means the built-in one
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// EstimatorConfig tunes the cost calculator
type EstimatorConfig struct {
	OutlierID        string  `yaml:"outlier_id"`
	OutlierThreshold float64 `yaml:"outlier_threshold"`
	StrictUnits      bool    `yaml:"strict_units"`
}

// RecommendConfig tunes the quiz
type RecommendConfig struct {
	TopN int `yaml:"top_n"`
}

// LeaderboardConfig tunes the leaderboard
type LeaderboardConfig struct {
	Limit int `yaml:"limit"`
}

// Default returns the configuration used when nothing is set
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
			Environment:  "development",
			CORSOrigins:  []string{"*"},
		},
		Estimator: EstimatorConfig{
			OutlierID:        "playht",
			OutlierThreshold: 20000,
		},
		Recommend: RecommendConfig{
			TopN: 3,
		},
		Leaderboard: LeaderboardConfig{
			Limit: 10,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment overrides
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		path = os.ExpandEnv(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *AppConfig) applyEnv() error {
	envString("HOST", &c.Server.Host)
	envString("PORT", &c.Server.Port)
	envString("ENVIRONMENT", &c.Server.Environment)
	envString("CATALOG_PATH", &c.Catalog.Path)
	envString("OUTLIER_ID", &c.Estimator.OutlierID)
	envList("CORS_ORIGINS", &c.Server.CORSOrigins)

	for _, apply := range []func() error{
		func() error { return envDuration("READ_TIMEOUT", &c.Server.ReadTimeout) },
		func() error { return envDuration("WRITE_TIMEOUT", &c.Server.WriteTimeout) },
		func() error { return envDuration("IDLE_TIMEOUT", &c.Server.IdleTimeout) },
		func() error { return envFloat("OUTLIER_THRESHOLD", &c.Estimator.OutlierThreshold) },
		func() error { return envBool("STRICT_UNITS", &c.Estimator.StrictUnits) },
		func() error { return envInt("TOP_N", &c.Recommend.TopN) },
		func() error { return envInt("LEADERBOARD_LIMIT", &c.Leaderboard.Limit) },
	} {
		if err := apply(); err != nil {
			return err
		}
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *AppConfig) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Package shared holds the persistent flags and application bootstrap used by every subcommand.
package shared

import (
	"go.uber.org/zap"

	"speechbench/internal/app"
	"speechbench/internal/app/logging"
	"speechbench/internal/config"
)

var (
	// ConfigPath is the --config flag
	ConfigPath string
	// Verbose is the --verbose flag
	Verbose bool
)

// LoadConfig resolves and loads the configuration for the current flags
func LoadConfig() (*config.AppConfig, error) {
	return config.Load(config.ResolvePath(ConfigPath))
}

// LoadApplication builds the application with a CLI logger
func LoadApplication() (*app.Application, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return LoadApplicationWith(cfg, logging.ForCLI(Verbose))
}

// LoadApplicationWith builds the application from an already loaded config
func LoadApplicationWith(cfg *config.AppConfig, logger *zap.Logger) (*app.Application, error) {
	application, err := app.InitializeApplication(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("Application ready",
		zap.String("catalog_version", application.Catalog.Version()),
		zap.Int("providers", application.Catalog.Len()),
	)
	return application, nil
}

//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"speechbench/internal/config"
)

// InitializeApplication builds the Application from configuration
func InitializeApplication(cfg *config.AppConfig, logger *zap.Logger) (*Application, error) {
	wire.Build(NewApplication, provideCatalog, provideEstimator)
	return &Application{}, nil
}

package app

import (
	"go.uber.org/zap"

	"speechbench/internal/app/catalog"
	"speechbench/internal/app/estimator"
	"speechbench/internal/config"
)

// Application bundles the shared catalog with the components computed over it
type Application struct {
	Config    *config.AppConfig
	Catalog   *catalog.Catalog
	Estimator *estimator.Estimator
	Logger    *zap.Logger
}

// NewApplication assembles an Application
func NewApplication(cfg *config.AppConfig, c *catalog.Catalog, e *estimator.Estimator, logger *zap.Logger) *Application {
	return &Application{
		Config:    cfg,
		Catalog:   c,
		Estimator: e,
		Logger:    logger,
	}
}

// provideCatalog loads the catalog file named in the config, or the built-in dataset
func provideCatalog(cfg *config.AppConfig, logger *zap.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		c := catalog.Default()
		logger.Debug("Using built-in catalog", zap.String("version", c.Version()), zap.Int("providers", c.Len()))
		return c, nil
	}

	c, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded catalog",
		zap.String("path", cfg.Catalog.Path),
		zap.String("version", c.Version()),
		zap.Int("providers", c.Len()),
	)
	return c, nil
}

// provideEstimator configures the cost estimator from the config
func provideEstimator(cfg *config.AppConfig, c *catalog.Catalog, logger *zap.Logger) *estimator.Estimator {
	opts := []estimator.Option{
		estimator.WithOutlierID(cfg.Estimator.OutlierID),
		estimator.WithOutlierThreshold(cfg.Estimator.OutlierThreshold),
		estimator.WithLogger(logger.Named("estimator")),
	}
	if cfg.Estimator.StrictUnits {
		opts = append(opts, estimator.WithStrictUnits())
	}
	return estimator.New(c, opts...)
}

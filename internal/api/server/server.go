package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "speechbench/docs" // Generated swagger docs
	"speechbench/internal/api/middleware"
	v1routes "speechbench/internal/api/v1/routes"
	"speechbench/internal/api/v1/services"
	"speechbench/internal/app"
	"speechbench/internal/config"
	"speechbench/web"
	webhandlers "speechbench/web/handlers"
)

// Server represents the HTTP server for the API and the site
type Server struct {
	config     config.ServerConfig
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
	registry   *prometheus.Registry
}

// NewServer creates a new server over the application components
func NewServer(application *app.Application) (*Server, error) {
	cfg := application.Config
	logger := application.Logger

	// Set Gin mode based on environment
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case cfg.Server.Environment == "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Create router
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.Metrics(middleware.NewHTTPMetrics(registry)))
	router.Use(middleware.ErrorHandler(logger))
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	router.Use(middleware.CORS(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "healthy",
			"catalog_version": application.Catalog.Version(),
			"providers":       application.Catalog.Len(),
			"timestamp":       time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serviceContainer := &v1routes.ServiceContainer{
		ProviderService:       services.NewProviderService(application.Catalog),
		LeaderboardService:    services.NewLeaderboardService(application.Catalog, cfg.Leaderboard.Limit),
		ComparisonService:     services.NewComparisonService(application.Catalog),
		CostService:           services.NewCostService(application.Catalog, application.Estimator),
		RecommendationService: services.NewRecommendationService(application.Catalog, cfg.Recommend.TopN),
		ExportService:         services.NewExportService(application.Catalog),
	}

	// Register API routes
	api := router.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":       "SpeechBench API",
				"version":       "1.0",
				"documentation": "/swagger/index.html",
				"endpoints": gin.H{
					"health":          "/health",
					"metrics":         "/metrics",
					"providers":       "/api/v1/providers",
					"leaderboard":     "/api/v1/leaderboard",
					"compare":         "/api/v1/compare",
					"export":          "/api/v1/compare/export",
					"estimate":        "/api/v1/estimate",
					"quiz":            "/api/v1/quiz",
					"recommendations": "/api/v1/recommendations",
				},
			})
		})

		// V1 routes
		v1 := api.Group("/v1")
		v1routes.RegisterRoutes(v1, serviceContainer)
	}

	// HTML site
	pages := webhandlers.NewPageHandler(
		application.Catalog,
		application.Estimator,
		cfg.Recommend.TopN,
		cfg.Leaderboard.Limit,
		logger.Named("web"),
	)
	if err := web.Register(router, pages); err != nil {
		return nil, fmt.Errorf("failed to register site: %w", err)
	}

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		config:     cfg.Server,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
		registry:   registry,
	}, nil
}

// Start binds the listener and serves in the background.
// Bind errors are returned; later serve errors are logged.
func (s *Server) Start() error {
	s.logger.Info("Starting server",
		zap.String("host", s.config.Host),
		zap.String("port", s.config.Port),
		zap.String("environment", s.config.Environment),
	)

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	s.logger.Info("Server started successfully",
		zap.String("address", ln.Addr().String()),
	)

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("Server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}

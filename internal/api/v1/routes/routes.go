package routes

import (
	"github.com/gin-gonic/gin"

	"speechbench/internal/api/v1/handlers"
	"speechbench/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	// Provider routes
	providerHandler := handlers.NewProviderHandler(container.ProviderService)
	providers := router.Group("/providers")
	{
		providers.GET("", providerHandler.List)
		providers.GET("/:id", providerHandler.Get)
	}

	// Leaderboard
	leaderboardHandler := handlers.NewLeaderboardHandler(container.LeaderboardService)
	router.GET("/leaderboard", leaderboardHandler.Get)

	// Comparison matrix and its export
	compareHandler := handlers.NewCompareHandler(container.ComparisonService)
	compare := router.Group("/compare")
	{
		compare.GET("", compareHandler.Get)
		if container.ExportService != nil {
			exportHandler := handlers.NewExportHandler(container.ExportService)
			compare.GET("/export", exportHandler.Export)
		}
	}

	// Cost calculator
	estimateHandler := handlers.NewEstimateHandler(container.CostService)
	router.GET("/estimate", estimateHandler.Get)

	// Quiz
	recommendationHandler := handlers.NewRecommendationHandler(container.RecommendationService)
	router.GET("/quiz", recommendationHandler.Quiz)
	router.POST("/recommendations", recommendationHandler.Recommend)
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	ProviderService       services.ProviderService
	LeaderboardService    services.LeaderboardService
	ComparisonService     services.ComparisonService
	CostService           services.CostService
	RecommendationService services.RecommendationService
	ExportService         services.ExportService
}

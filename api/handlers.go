package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbanhive/marketplace-search/internal/analytics"
	"github.com/urbanhive/marketplace-search/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// API holds dependencies for API handlers: the relevance engine and
// the analytics tracker.
type API struct {
	engine    services.SearchProvider
	analytics *analytics.Service
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.SearchProvider) *API {
	return &API{
		engine:    engine,
		analytics: analytics.NewService(),
	}
}

// SetupRoutes defines all the API routes for the search service.
func SetupRoutes(router *gin.Engine, engine services.SearchProvider) {
	apiHandler := NewAPI(engine)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Search routes
	router.POST("/search", apiHandler.SearchHandler)
	router.POST("/search/_suggest", apiHandler.SuggestCategoryHandler)

	// Category catalog
	router.GET("/categories", apiHandler.ListCategoriesHandler)

	// Listing management routes
	serviceRoutes := router.Group("/services")
	{
		serviceRoutes.PUT("", apiHandler.AddServicesHandler)                  // Add/Update listings
		serviceRoutes.GET("", apiHandler.ListServicesHandler)                 // List listings with pagination
		serviceRoutes.DELETE("", apiHandler.DeleteAllServicesHandler)         // Delete all listings
		serviceRoutes.GET("/:serviceID", apiHandler.GetServiceHandler)        // Get specific listing
		serviceRoutes.DELETE("/:serviceID", apiHandler.DeleteServiceHandler)  // Delete specific listing
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetAnalyticsHandler returns the aggregated search analytics summary.
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.analytics.Summary())
}

// Package router wires middleware and handlers onto the gin engine.
package router

import (
	"net/http"
	"time"

	"github.com/Alex3925/company-suggestion-box/config"
	"github.com/Alex3925/company-suggestion-box/handlers"
	"github.com/Alex3925/company-suggestion-box/middleware"
	"github.com/Alex3925/company-suggestion-box/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config            *config.Config
	SuggestionHandler *handlers.SuggestionHandler
	AdminHandler      *handlers.AdminHandler
	HealthHandler     *handlers.HealthHandler
	RateLimiter       services.RateLimiterInterface
	Logger            *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes
// defined. Static assets are registered via NoRoute so they can never shadow
// API routes.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	r.SetHTMLTemplate(handlers.AdminTemplate())

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes get the perimeter middleware: request body cap and per-IP
	// rate limiting.
	api := r.Group("/api")
	api.Use(
		middleware.BodyLimit(deps.Config.Server.MaxBodyBytes),
		middleware.APIRateLimiter(
			deps.RateLimiter,
			deps.Config.RateLimit.RequestsPerMinute,
			time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
		),
	)
	{
		api.POST("/feedback", deps.SuggestionHandler.SubmitSuggestion)
		api.GET("/suggestions", deps.SuggestionHandler.ListSuggestions)
	}

	// Admin view behind the basic credential gate
	r.GET("/admin", middleware.BasicAuthGate(&deps.Config.Admin), deps.AdminHandler.RenderDashboard)

	// Static assets for everything not claimed above
	if deps.Config.Server.PublicDir != "" {
		fileServer := http.FileServer(http.Dir(deps.Config.Server.PublicDir))
		r.NoRoute(gin.WrapH(fileServer))
	}

	return r
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkpricer/internal/handler/api"
	"parkpricer/internal/handler/middleware"
	"parkpricer/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, pricingHandler *api.PricingHandler, availabilityHandler *api.AvailabilityHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, pricingHandler, availabilityHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	if cfg.Pricing.MetricsEnabled {
		engine.Use(middleware.MetricsMiddleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, pricingHandler *api.PricingHandler, availabilityHandler *api.AvailabilityHandler) {
	engine.GET("/health", healthCheck)

	if cfg.Pricing.MetricsEnabled {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		pricingGroup := apiGroup.Group("/pricing")
		{
			addRoutes(pricingGroup, []route{
				{Method: http.MethodPost, Path: "/calculate", Handler: pricingHandler.Calculate},
				{Method: http.MethodGet, Path: "/rules", Handler: pricingHandler.Rules},
				{Method: http.MethodPut, Path: "/rules/:id", Handler: pricingHandler.UpdateRule},
				{Method: http.MethodPost, Path: "/demand-forecast", Handler: pricingHandler.DemandForecast},
			})
		}

		availabilityGroup := apiGroup.Group("/availability")
		{
			addRoutes(availabilityGroup, []route{
				{Method: http.MethodPost, Path: "/slots", Handler: availabilityHandler.SlotGrid},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

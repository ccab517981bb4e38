package api

import (
	"context"
	"net/http"
	"time"

	"llm-prompt-repository/config"
	_ "llm-prompt-repository/docs"
	"llm-prompt-repository/internal/api/v1/prompt"
	"llm-prompt-repository/internal/middleware"
	"llm-prompt-repository/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Pinger reports whether the backing store is reachable.
type Pinger func(ctx context.Context) error

// NewRouter wires middleware and routes around an already opened store.
func NewRouter(cfg *config.Config, store prompt.PromptStore, ping Pinger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", healthz(ping))

	apiGroup := router.Group("/api")
	{
		prompt.RegisterRoutes(apiGroup, prompt.NewHandler(store))
	}

	return router
}

// corsConfig allows any origin without credentials in production and only
// the local frontend origin, with credentials, everywhere else.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if cfg.IsProduction() {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		origin := cfg.LocalOrigin
		if origin == "" {
			origin = config.DefaultLocalOrigin
		}
		c.AllowOrigins = []string{origin}
		c.AllowCredentials = true
	}

	return c
}

func healthz(ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse(http.StatusServiceUnavailable, "database unavailable"))
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nutriplan-go/internal/config"
	"nutriplan-go/internal/constants"
	nh "nutriplan-go/internal/handlers/nutrition"
)

// Dependencies are the services the engine routes to.
type Dependencies struct {
	Generator nh.Generator
	// PoolSize reports how many credentials the executor can rotate through.
	PoolSize func() int
}

// BuildEngine assembles the gin engine with middleware and all routes.
func BuildEngine(cfg *config.Config, deps Dependencies) *gin.Engine {
	engine := gin.New()
	applyStandardEngineSettings(engine, cfg)

	root := engine.Group(cfg.Server.BasePath)
	nh.New(deps.Generator).RegisterRoutes(root)

	root.GET("/healthz", func(c *gin.Context) {
		setNoCacheHeaders(c)
		size := 0
		if deps.PoolSize != nil {
			size = deps.PoolSize()
		}
		status := "ok"
		if size == 0 {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":      status,
			"credentials": size,
			"version":     constants.Version,
		})
	})
	root.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Security.Debug {
		registerPprof(engine)
	}
	return engine
}

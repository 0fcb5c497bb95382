package server

import (
	pp "net/http/pprof"

	"github.com/gin-gonic/gin"

	"nutriplan-go/internal/config"
	mw "nutriplan-go/internal/middleware"
)

// applyStandardEngineSettings installs the middleware chain shared by all routes.
func applyStandardEngineSettings(engine *gin.Engine, cfg *config.Config) {
	if !cfg.Security.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	_ = engine.SetTrustedProxies(nil)

	engine.Use(mw.Recovery(), mw.RequestID(), mw.RequestLogger(), mw.Metrics())
	if cfg.RateLimit.Enabled {
		engine.Use(mw.RateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}
}

func setNoCacheHeaders(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}

func registerPprof(r *gin.Engine) {
	g := r.Group("/debug/pprof")
	g.GET("/", gin.WrapF(pp.Index))
	g.GET("/cmdline", gin.WrapF(pp.Cmdline))
	g.GET("/profile", gin.WrapF(pp.Profile))
	g.GET("/symbol", gin.WrapF(pp.Symbol))
	g.POST("/symbol", gin.WrapF(pp.Symbol))
	g.GET("/trace", gin.WrapF(pp.Trace))
	for _, name := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		g.GET("/"+name, gin.WrapH(pp.Handler(name)))
	}
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-report-service/pkg/logger"
	"github.com/fekuna/omnipos-report-service/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Registrar mounts a handler's routes under /api.
type Registrar interface {
	Register(r gin.IRouter)
}

// Pinger reports whether the database is reachable. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterOptions struct {
	AllowedOrigins []string
	Pinger         Pinger

	// Root answers GET /. Omitted when nil.
	Root gin.HandlerFunc

	// RateLimiter throttles /api per client IP. Nil disables it.
	RateLimiter *middleware.RateLimiter
}

func NewRouter(opts RouterOptions, log logger.ZapLogger, api ...Registrar) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		cors.New(corsConfig(opts.AllowedOrigins)),
	)

	if opts.Root != nil {
		r.GET("/", opts.Root)
	}
	r.GET("/healthz", healthz(opts.Pinger, log))

	group := r.Group("/api")
	if opts.RateLimiter != nil {
		group.Use(middleware.RateLimit(opts.RateLimiter, log))
	}
	for _, reg := range api {
		reg.Register(group)
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func healthz(pinger Pinger, log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinger == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		if err := pinger.PingContext(ctx); err != nil {
			log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}

// NewHTTPServer wraps the router with the configured timeouts.
func NewHTTPServer(addr string, handler http.Handler, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
	}
}

// Package server exposes gridmap loading and astar searches over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// shutdownTimeout bounds how long Run waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Controller mounts a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []Controller
	Logger      *logrus.Logger
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	log         *logrus.Logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		log:         config.Logger,
	}
}

// Handler builds the gin engine with recovery, request logging and every
// controller mounted under the base URL.
func (r *Router) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(r.log))

	api := router.Group(r.baseURL)
	{
		for _, c := range r.controllers {
			c.Register(api)
		}
	}
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.log.WithField("addr", r.addr).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	r.log.Info("http server shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// RequestLogger logs one line per request with method, path, status and latency.
// 5xx replies are logged at error level, 4xx at warn, the rest at info.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		began := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"status":  status,
			"latency": time.Since(began).String(),
		})
		if len(ctx.Errors) > 0 {
			entry = entry.WithField("error", ctx.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request")
		case status >= http.StatusBadRequest:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}

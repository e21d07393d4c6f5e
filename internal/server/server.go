package server

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	httperr "github.com/veyra-lab/project-veyra/internal/core/errors"
)

// Server wraps the gin engine with the shared infrastructure routes. Route
// groups and their role gates are wired by the caller; the server itself
// only owns the health probe and the HTTP lifecycle.
type Server struct {
	Engine *gin.Engine
	Addr   string
	db     *sql.DB
}

// New creates the HTTP server. The body size cap applies to every route;
// the JSON bodies this API accepts are tiny, so anything near the cap is
// noise or abuse.
func New(addr string, db *sql.DB, mode string, maxBodySizeMB int) *Server {
	if mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1
	}
	r.Use(bodySizeLimit(int64(maxBodySizeMB) * 1024 * 1024))

	s := &Server{
		Engine: r,
		Addr:   addr,
		db:     db,
	}

	r.GET("/health", s.healthHandler)

	return s
}

// bodySizeLimit rejects oversized request bodies before they reach the
// binding layer: declared lengths past the cap get an immediate 413, and
// undeclared bodies are capped mid-read.
func bodySizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidRequestError,
				Message:   "Request body exceeds maximum allowed size",
				Details:   map[string]interface{}{"max_size_mb": maxBytes / (1024 * 1024)},
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// RegisterCacheInvalidation mounts POST /caches/invalidate on the given
// router. This is the manual retry path: clients call it before re-issuing
// a failed request so the resolvers recompute from live data instead of
// replaying a cached result.
func RegisterCacheInvalidation(r gin.IRouter, invalidate ...func()) {
	r.POST("/caches/invalidate", func(c *gin.Context) {
		for _, fn := range invalidate {
			fn()
		}
		slog.Info("[Server] Caches invalidated on request")
		c.Status(http.StatusNoContent)
	})
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			slog.Error("[Server] Health check failed: database unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Addr,
		Handler: s.Engine,
	}

	slog.Info("[Server] Starting HTTP server", "address", s.Addr)

	go func() {
		<-ctx.Done()
		slog.Info("[Server] Stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Server] HTTP server forced to shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/folio-dev/portfolio/internal/assets"
)

type HealthResponse struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Service      string    `json:"service"`
	Version      string    `json:"version"`
	CacheBackend string    `json:"cache_backend,omitempty"`
	Cache        string    `json:"cache,omitempty"`
}

type HealthHandler struct {
	serviceName  string
	version      string
	cacheBackend string
	store        assets.Store
}

func NewHealthHandler(serviceName, version, cacheBackend string, store assets.Store) *HealthHandler {
	return &HealthHandler{
		serviceName:  serviceName,
		version:      version,
		cacheBackend: cacheBackend,
		store:        store,
	}
}

// HealthCheck always answers 200: the page renders without its cache, so a
// down cache is reported but not fatal.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	cacheStatus := "disabled"
	if h.store != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.store.Ping(pingCtx); err != nil {
			cacheStatus = "down"
		} else {
			cacheStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC(),
		Service:      h.serviceName,
		Version:      h.version,
		CacheBackend: h.cacheBackend,
		Cache:        cacheStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	// Health check routes
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}

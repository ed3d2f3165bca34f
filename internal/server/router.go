// Package server wires the page, the contact form and the small JSON API
// into a gin engine.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/folio-dev/portfolio/internal/assets"
	"github.com/folio-dev/portfolio/internal/catalog"
	"github.com/folio-dev/portfolio/internal/contact"
	"github.com/folio-dev/portfolio/internal/logging"
	"github.com/folio-dev/portfolio/internal/page"
)

type RouterDeps struct {
	ServiceName      string
	Version          string
	Composer         *page.Composer
	Catalog          *catalog.Catalog
	Contact          *contact.Handler
	CacheStore       assets.Store
	CacheBackend     string
	CORSAllowOrigins []string
	Logger           *slog.Logger
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	if dep.Logger == nil {
		dep.Logger = slog.Default()
	}

	tmpl, err := page.Templates()
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(dep.Logger))
	r.SetHTMLTemplate(tmpl)

	// Health check routes
	healthHandler := NewHealthHandler(dep.ServiceName, dep.Version, dep.CacheBackend, dep.CacheStore)
	healthHandler.RegisterRoutes(r)

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", dep.Composer.Compose(c.Request.Context()))
	})

	// Contact form routes
	dep.Contact.RegisterRoutes(r)

	// Projects API route
	api := r.Group("/api")
	api.Use(cors.New(corsConfig(dep.CORSAllowOrigins)))
	api.GET("/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"projects": dep.Catalog.List()})
	})

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", logging.RequestIDHeader},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

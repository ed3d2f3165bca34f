package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/folio-dev/portfolio/internal/assets"
	"github.com/folio-dev/portfolio/internal/catalog"
	"github.com/folio-dev/portfolio/internal/config"
	"github.com/folio-dev/portfolio/internal/contact"
	"github.com/folio-dev/portfolio/internal/logging"
	"github.com/folio-dev/portfolio/internal/page"
	"github.com/folio-dev/portfolio/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(nil, cfg.App.LogLevel, cfg.App.LogFormat)
	gin.SetMode(cfg.Server.GinMode)

	openCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := assets.OpenStore(openCtx, assets.StoreConfig{
		Backend:       cfg.Cache.Backend,
		SQLitePath:    cfg.Cache.SQLitePath,
		RedisAddr:     cfg.Cache.RedisAddr,
		RedisPassword: cfg.Cache.RedisPassword,
		RedisDB:       cfg.Cache.RedisDB,
	})
	cancel()
	if err != nil {
		log.Fatalf("asset cache: %v", err)
	}
	defer store.Close()

	fetcher := assets.NewFetcher(&http.Client{},
		assets.WithTimeout(cfg.Fetch.Timeout),
		assets.WithRateLimit(rate.Limit(cfg.Fetch.RateLimit), cfg.Fetch.RateBurst),
	)
	cache := assets.NewCache(store, fetcher, logger)
	projects := catalog.Default(cfg.Profile.GitHubURL)
	contactHandler := contact.NewHandler()

	composer := page.NewComposer(fetcher, cache, projects, page.Options{
		HeroImageURL: cfg.Assets.HeroImageURL,
		AnimationURL: cfg.Assets.AnimationURL,
		Profile: page.Profile{
			GitHubURL:   cfg.Profile.GitHubURL,
			TwitterURL:  cfg.Profile.TwitterURL,
			LinkedInURL: cfg.Profile.LinkedInURL,
			Email:       cfg.Profile.Email,
			ResumeURL:   cfg.Profile.ResumeURL,
		},
		Contact: contactHandler.Form(),
	}, logger)

	r, err := server.BuildRouter(server.RouterDeps{
		ServiceName:      "portfolio",
		Version:          cfg.App.Version,
		Composer:         composer,
		Catalog:          projects,
		Contact:          contactHandler,
		CacheStore:       store,
		CacheBackend:     cfg.Cache.Backend,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		Logger:           logger,
	})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	logger.Info("listening", "port", cfg.Server.Port, "cache_backend", cfg.Cache.Backend)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

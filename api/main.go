package main

import (
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/waffyhq/waffy-dashboard/internal/auth"
	"github.com/waffyhq/waffy-dashboard/internal/cache"
	"github.com/waffyhq/waffy-dashboard/internal/config"
	"github.com/waffyhq/waffy-dashboard/internal/db"
	waffyhttp "github.com/waffyhq/waffy-dashboard/internal/http"
	"github.com/waffyhq/waffy-dashboard/internal/http/handlers"
	"github.com/waffyhq/waffy-dashboard/internal/http/ratelimit"
	"github.com/waffyhq/waffy-dashboard/internal/source"
	"github.com/waffyhq/waffy-dashboard/internal/source/httpapi"
	"github.com/waffyhq/waffy-dashboard/internal/source/memory"
	"github.com/waffyhq/waffy-dashboard/internal/source/postgres"
)

// @title WAffy Dashboard API
// @version 1.0
// @description Filtered metrics and record views over WhatsApp business data.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}

	auth.SetSecret(cfg.Auth.JWTSecret)

	var src source.Source
	switch cfg.Source.Mode {
	case "http":
		src = httpapi.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	case "postgres":
		database, err := db.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatal("❌ Could not connect to database:", err)
		}
		defer database.Close()
		src = postgres.New(database)
	case "memory":
		src = memory.New()
	}
	handlers.SetSource(src)

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer rdb.Close()
		handlers.SetSnapshotCache(cache.New(rdb, cfg.Redis.SnapshotTTL))
	}

	limiter := ratelimit.NewRegistry(5, 10)
	go limiter.StartCleanupLoop()

	r := waffyhttp.NewRouter(limiter)
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}

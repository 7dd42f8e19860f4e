package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/cache"
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/handler"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/ratelimit"
	"github.com/MKhiriev/go-blog-api/internal/server"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/workers"
	"github.com/MKhiriev/go-blog-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	cachePrefix     = "cache:"
	rateLimitPrefix = "ratelimit:"
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("blog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	redisClient := cache.NewRedisClient(ctx, cfg.Storage.Cache, log)
	defer redisClient.Close()

	services, err := service.NewServices(storages, cache.NewRedisCache(redisClient, cachePrefix), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiter := ratelimit.NewRedisLimiter(redisClient, rateLimitPrefix)
	handlers, err := handler.NewHandlers(services, limiter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewHealthWorker(ctx, services.HealthService, cfg.Workers.HealthInterval, log.GetChildLogger()),
	)
	background.Run()
	defer background.Stop()

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Println(line)
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unrolled/render"

	"github.com/vladislavprovich/rental-cache/internal/domaincache"
	"github.com/vladislavprovich/rental-cache/internal/handler"
	"github.com/vladislavprovich/rental-cache/internal/repository"
	"github.com/vladislavprovich/rental-cache/internal/service"
	logger2 "github.com/vladislavprovich/rental-cache/pkg/logger"
)

func main() {
	ctx := context.Background()
	cfg := initConfig(ctx)
	logger, err := logger2.New(ctx, cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}

	repo := initRepository(ctx, logger.Logger, cfg)
	caches := initCaches(ctx, logger.Logger, cfg)
	srv := initService(ctx, logger.Logger, repo, caches, cfg)

	rend := render.New()
	serviceHandler := initServiceHandler(ctx, srv, caches, logger.Logger, cfg, rend)
	router := handler.NewRouter(serviceHandler, logger.Logger, &cfg.Server)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.InfoContext(ctx, "Server start. Listening on port", slog.Any("port", cfg.Server.Port))
		if err = httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("could not listen on port %s: %s", cfg.Server.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		logger.InfoContext(ctx, "Server shutdown error", slog.Any("error", err))
	}

	report := domaincache.NewReporter(caches).Report()
	logger.InfoContext(ctx, "Server gracefully shutdown",
		slog.Int("cache_entries", report.TotalCacheEntries),
		slog.Float64("vehicle_hit_rate", report.Vehicles.HitRatePercent),
	)
}

func initConfig(ctx context.Context) *Config {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		log.Fatalf("config load error %s", err)
	}

	return cfg
}

func initRepository(ctx context.Context, logger *slog.Logger, cfg *Config) *repository.Repository {
	logger.InfoContext(ctx, "initializing repository")
	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("database open error %s", err)
	}

	repo := repository.New(db)
	if err = repo.Migrate(ctx); err != nil {
		log.Fatalf("database migrate error %s", err)
	}

	return repo
}

func initCaches(ctx context.Context, logger *slog.Logger, cfg *Config) *domaincache.Registry {
	logger.InfoContext(ctx, "initializing caches")
	caches, err := domaincache.NewRegistry(cfg.Cache)
	if err != nil {
		log.Fatalf("cache init error %s", err)
	}

	return caches
}

func initService(
	ctx context.Context,
	logger *slog.Logger,
	repo *repository.Repository,
	caches *domaincache.Registry,
	cfg *Config,
) *service.Service {
	logger.InfoContext(ctx, "initializing service")
	srv := service.NewRentalService(ctx, logger, repo, caches, cfg.TTL)

	return srv
}

func initServiceHandler(
	ctx context.Context,
	srv *service.Service,
	caches *domaincache.Registry,
	logger *slog.Logger,
	cfg *Config,
	render *render.Render,
) *handler.ServiceHandler {
	logger.InfoContext(ctx, "initializing service handler")
	serviceHandler := handler.NewServiceHandler(srv, caches, logger, &cfg.Server, render)

	return serviceHandler
}

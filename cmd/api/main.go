package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"eqia_dashboard_backend/internal/crime"
	"eqia_dashboard_backend/internal/demographics"
	"eqia_dashboard_backend/internal/deprivation"
	"eqia_dashboard_backend/internal/homelessness"
	apphttp "eqia_dashboard_backend/internal/http"
	"eqia_dashboard_backend/internal/http/router"
	"eqia_dashboard_backend/internal/nomis"
	"eqia_dashboard_backend/internal/population"
	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/config"
	"eqia_dashboard_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	reg, err := registry.Load(cfg.GetStationsFile())
	if err != nil {
		log.Error("failed to load station registry", "error", err)
		panic("failed to load station registry: " + err.Error())
	}
	log.Info("station registry loaded", "stations", len(reg.Stations()))

	fetcher, closeRedis := initFetcher(ctx, cfg, log)
	if closeRedis != nil {
		defer closeRedis()
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	dataDir := cfg.GetDataDir()
	demographicsModule := demographics.NewModule(reg, fetcher, log)
	deprivationModule := deprivation.NewModule(dataDir, reg, log)
	homelessnessModule := homelessness.NewModule(dataDir, reg, log)
	crimeModule := crime.NewModule(dataDir, reg, log)
	populationModule := population.NewModule(dataDir, reg, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			demographicsModule,
			deprivationModule,
			homelessnessModule,
			crimeModule,
			populationModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initFetcher builds the NOMIS fetcher, wrapping it in the Redis cache when
// REDIS_URL is configured. Without Redis every request fetches upstream
// directly.
func initFetcher(ctx context.Context, cfg *config.Config, log *logger.Logger) (nomis.Fetcher, func()) {
	client := nomis.NewClient(cfg, log)
	if !cfg.IsRedisEnabled() {
		log.Warn("REDIS_URL not configured; fetch cache disabled")
		return client, nil
	}

	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("invalid REDIS_URL; fetch cache disabled", "error", err)
		return client, nil
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis not reachable; fetch cache disabled", "error", err)
		_ = rdb.Close()
		return client, nil
	}

	log.Info("fetch cache enabled", "ttl", cfg.GetFetchCacheTTL().String())
	cached := nomis.NewCachedFetcher(client, rdb, cfg.GetFetchCacheTTL(), log)
	return cached, func() { _ = rdb.Close() }
}

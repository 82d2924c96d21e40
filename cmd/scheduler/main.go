package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"eqia_dashboard_backend/internal/nomis"
	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/internal/scheduler"
	"eqia_dashboard_backend/platform/config"
	"eqia_dashboard_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	if !cfg.IsRedisEnabled() {
		log.Error("REDIS_URL is required for the scheduler")
		panic("REDIS_URL is required for the scheduler")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg, err := registry.Load(cfg.GetStationsFile())
	if err != nil {
		log.Error("failed to load station registry", "error", err)
		panic("failed to load station registry: " + err.Error())
	}

	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("invalid REDIS_URL", "error", err)
		panic("invalid REDIS_URL: " + err.Error())
	}
	rdb := redis.NewClient(opt)
	defer rdb.Close()

	// The worker fetches through the same cache the API reads from, so each
	// warm run leaves the entries interactive requests need.
	client := nomis.NewClient(cfg, log)
	fetcher := nomis.NewCachedFetcher(client, rdb, cfg.GetFetchCacheTTL(), log)

	worker, err := scheduler.NewWorker(cfg, reg, fetcher, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	queueClient, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize queue client", "error", err)
		panic("failed to initialize queue client: " + err.Error())
	}
	defer queueClient.Close()

	go enqueueWarmRuns(ctx, queueClient, cfg.GetCacheWarmInterval(), log)

	worker.Run(ctx)
	log.Info("scheduler stopped")
}

// enqueueWarmRuns queues one cache warm immediately and then one per
// interval until the context is cancelled.
func enqueueWarmRuns(ctx context.Context, client *scheduler.Client, interval time.Duration, log *logger.Logger) {
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	if err := client.EnqueueCacheWarm(ctx); err != nil {
		log.Error("failed to enqueue cache warm", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.EnqueueCacheWarm(ctx); err != nil {
				log.Error("failed to enqueue cache warm", "error", err)
			}
		}
	}
}

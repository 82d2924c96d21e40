package scheduler

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"eqia_dashboard_backend/internal/demographics/census"
	"eqia_dashboard_backend/internal/nomis"
	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/config"
	"eqia_dashboard_backend/platform/logger"
)

// staleAfter drops warm runs that sat in the queue longer than this.
const staleAfter = time.Hour

type Worker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	reg     *registry.Registry
	fetcher nomis.Fetcher
	log     *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, reg *registry.Registry, fetcher nomis.Fetcher, log *logger.Logger) (*Worker, error) {
	opt, err := redisClientOpt(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 4
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:  server,
		mux:     mux,
		reg:     reg,
		fetcher: fetcher,
		log:     log,
	}

	mux.HandleFunc(TaskCacheWarm, w.handleCacheWarm)

	return w, nil
}

// handleCacheWarm fetches every dataset for the comparison areas and the
// station wards through the caching fetcher, so interactive requests hit a
// hot cache. Individual fetch failures are logged and skipped; the task only
// fails on payload problems.
func (w *Worker) handleCacheWarm(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseCacheWarmPayload(task)
	if err != nil {
		return err
	}
	if age := time.Since(payload.Requested); age > staleAfter {
		w.log.Warn("skipping stale cache warm run", "age", age.String())
		return nil
	}

	geographies := w.warmGeographies()
	w.log.Info("cache warm started", "geographies", len(geographies))

	warmed := 0
	for _, dimension := range census.Dimensions() {
		ds, ok := w.reg.Dataset(string(dimension))
		if !ok {
			continue
		}
		for _, geo := range geographies {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if _, err := w.fetcher.FetchValues(ctx, ds.ID, geo, ds.Filter); err != nil {
				w.log.UpstreamError("nomis", geo, err)
				continue
			}
			warmed++
		}
	}

	w.log.Info("cache warm finished", "warmed", warmed)
	return nil
}

// warmGeographies returns the comparison areas plus every distinct station
// ward code.
func (w *Worker) warmGeographies() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(code string) {
		if _, dup := seen[code]; dup || code == "" {
			return
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}

	for _, area := range w.reg.ComparisonAreas() {
		add(area.AreaCode)
	}
	for _, station := range w.reg.Stations() {
		for _, ward := range station.Wards {
			add(ward.AreaCode)
		}
	}
	return out
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

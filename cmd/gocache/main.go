package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"lrucache/internal/cache"
	"lrucache/internal/config"
	"lrucache/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gocache: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Signal-aware context is the root of ownership for the metrics server.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector[string]("gocache", reg)
	if err != nil {
		return err
	}

	c, err := cache.NewLocked[string, string](cfg.Capacity, cache.WithListener[string, string](col))
	if err != nil {
		return err
	}
	if err := col.TrackSize(c.Len); err != nil {
		return err
	}

	log.Info("GoCache demo starting", zap.Int("capacity", c.Cap()))

	// -------------------------------------------------------------------
	// 1) LRU eviction: fill past capacity, the oldest keys go first.
	// -------------------------------------------------------------------
	for i := 0; i <= c.Cap(); i++ {
		key := string(rune('A' + i))
		c.Put(key, "v"+key)
	}
	if _, ok := c.Get("A"); !ok {
		log.Info("GET A: missing (evicted as LRU)")
	}
	log.Info("keys after eviction (LRU->MRU)", zap.Strings("keys", c.Keys()))

	// -------------------------------------------------------------------
	// 2) Promotion: reading the oldest key protects it from the next eviction.
	// -------------------------------------------------------------------
	if keys := c.Keys(); len(keys) > 1 {
		oldest := keys[0]
		if v, ok := c.Get(oldest); ok {
			log.Info("GET touches key -> MRU", zap.String("key", oldest), zap.String("value", v))
		}
		c.Put("Z", "vZ")
		log.Info("keys after promotion + insert (LRU->MRU)", zap.Strings("keys", c.Keys()))
	}

	// -------------------------------------------------------------------
	// 3) Update in place: occupancy does not change.
	// -------------------------------------------------------------------
	before := c.Len()
	c.Put("Z", "vZ2")
	v, _ := c.Get("Z")
	log.Info("updated Z", zap.String("value", v), zap.Int("len_before", before), zap.Int("len_after", c.Len()))

	s := c.Stats()
	log.Info("cache stats",
		zap.Uint64("hits", s.Hits),
		zap.Uint64("misses", s.Misses),
		zap.Uint64("evictions", s.Evictions),
		zap.Float64("hit_ratio", s.HitRatio()),
	)

	if !cfg.Serve {
		return nil
	}
	return serveMetrics(ctx, log, cfg.MetricsAddr, reg)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = lvl
	return zc.Build()
}

func serveMetrics(ctx context.Context, log *zap.Logger, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving metrics", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("received shutdown signal")
	}

	// Shutdown outside the signal context, which is already canceled.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

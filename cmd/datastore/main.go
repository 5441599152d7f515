// cmd/datastore/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"huntersite/internal/common/config"
	stderrors "huntersite/internal/common/errors"
	"huntersite/internal/common/logger"
	"huntersite/internal/defaults"
	"huntersite/internal/loader"
	"huntersite/internal/manager"
	"huntersite/internal/session"
	"huntersite/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting datastore service...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
	)

	ctx := context.Background()

	// --- Init Redis with retry ---
	var kv *store.RedisStore
	err = retryWithBackoff(func() error {
		kv = store.NewRedisStore(cfg.Storage, log)
		return kv.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(stderrors.NewStorageUnavailableError(err)))
	}
	defer kv.Close()
	zapLog.Info("Redis connected successfully")

	// --- Wire the data layer ---
	js := store.NewJSONStore(kv, log)
	provider := defaults.NewProvider(cfg.Defaults, log)
	sessions := session.NewService(js, log)
	ld := loader.New(js, provider, log)
	mgr := manager.New(js, sessions, ld, log)

	// Warm the listing path so a bad defaults URL shows up at startup,
	// not on the first user request.
	catalog := mgr.LoadJobListings(ctx)
	zapLog.Info("Job listings loaded",
		zap.Int("jobs", len(catalog.Jobs)),
		zap.Int("categories", len(catalog.Categories)),
	)

	// --- Health & Metrics Server ---
	if cfg.Metrics.Enabled {
		go func() {
			http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "healthy",
					"time":   time.Now().Format(time.RFC3339),
				})
			})
			http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if err := kv.Ping(r.Context()); err != nil {
					w.WriteHeader(http.StatusServiceUnavailable)
					json.NewEncoder(w).Encode(map[string]string{
						"status": "not ready",
						"error":  err.Error(),
					})
					return
				}
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "ready",
					"time":   time.Now().Format(time.RFC3339),
				})
			})
			http.Handle("/metrics", promhttp.Handler())
			zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
				zapLog.Error("Health/Metrics server failed", zap.Error(err))
			}
		}()
	}

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping datastore service...")
	zapLog.Info("Datastore service stopped gracefully")
}

// cmd/tools/seed-data/main.go
// Seeds a development environment: sample employer postings go into
// Redis so the browse page has mixed-provenance data, and the compiled-in
// default documents are materialized into the local asset tree when the
// files are missing. Safe to run repeatedly: postings are matched by ID
// and never duplicated, and existing asset files are left alone.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"huntersite/internal/common/config"
	"huntersite/internal/common/logger"
	"huntersite/internal/defaults"
	"huntersite/internal/models"
	"huntersite/internal/namespace"
	"huntersite/internal/store"
)

var sampleJobs = []models.JobListing{
	{
		ID:          "seed-emp-001",
		Title:       "Backend Engineer",
		Company:     "Acme Hiring Co",
		Location:    "Austin, TX",
		Type:        "Full-time",
		Salary:      "$130k - $155k",
		Description: "Build the job matching pipeline.",
		Category:    "engineering",
		Status:      models.JobStatusActive,
		PostedBy:    "recruiter@acme-hiring.example.com",
		Source:      models.SourceEmployer,
	},
	{
		ID:          "seed-emp-002",
		Title:       "Marketing Lead",
		Company:     "Acme Hiring Co",
		Location:    "Remote",
		Type:        "Contract",
		Salary:      "$90k - $110k",
		Description: "Own employer-brand campaigns.",
		Category:    "marketing",
		Status:      models.JobStatusPending,
		PostedBy:    "recruiter@acme-hiring.example.com",
		Source:      models.SourceEmployer,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, "console")
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	materializeAssets(cfg.Defaults, zapLog)

	ctx := context.Background()

	kv := store.NewRedisStore(cfg.Storage, log)
	defer kv.Close()
	if err := kv.Ping(ctx); err != nil {
		zapLog.Fatal("redis unreachable", zap.Error(err))
	}

	js := store.NewJSONStore(kv, log)

	var pool []models.JobListing
	js.Get(ctx, namespace.KeyEmployerJobs, &pool)

	existing := make(map[string]bool, len(pool))
	for _, job := range pool {
		existing[job.ID] = true
	}

	added := 0
	for _, job := range sampleJobs {
		if existing[job.ID] {
			continue
		}
		job.PostedDate = time.Now().UTC().Format(time.RFC3339)
		pool = append(pool, job)
		added++
	}

	if added > 0 {
		if err := js.Set(ctx, namespace.KeyEmployerJobs, pool); err != nil {
			zapLog.Fatal("seed write failed", zap.Error(err))
		}
	}

	zapLog.Info("Seed complete",
		zap.Int("added", added),
		zap.Int("total", len(pool)),
	)
}

// materializeAssets writes the compiled-in default documents to the
// local asset tree when the files are missing, so the defaults provider
// has something to serve on a fresh checkout.
func materializeAssets(cfg config.DefaultsConfig, zapLog *zap.Logger) {
	write := func(path string, doc interface{}) {
		if _, err := os.Stat(path); err == nil {
			return
		}
		raw, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			zapLog.Warn("asset encode failed", zap.String("path", path), zap.Error(err))
			return
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			zapLog.Warn("asset dir create failed", zap.String("path", path), zap.Error(err))
			return
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			zapLog.Warn("asset write failed", zap.String("path", path), zap.Error(err))
			return
		}
		zapLog.Info("Asset written", zap.String("path", path))
	}

	write(cfg.ProfilePath, defaults.BaselineProfile())
	write(cfg.JobsPath, defaults.BaselineCatalog())
}

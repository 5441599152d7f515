// internal/loader/loader.go
// Package loader implements the hybrid read path: stored overrides win,
// static defaults fill the gaps, and the first default load is cached
// back into storage with a provenance stamp.
package loader

import (
	"context"
	"time"

	"huntersite/internal/common/logger"
	"huntersite/internal/defaults"
	"huntersite/internal/models"
	"huntersite/internal/namespace"
	"huntersite/internal/store"
)

// profileVersion stamps cached profile records so a future layout change
// can invalidate them.
const profileVersion = "1.0"

// Loader resolves profiles and job listings from storage plus the static
// defaults provider.
type Loader struct {
	store    *store.JSONStore
	defaults *defaults.Provider
	log      logger.Logger
}

func New(js *store.JSONStore, provider *defaults.Provider, log logger.Logger) *Loader {
	return &Loader{store: js, defaults: provider, log: log}
}

// LoadProfile returns the profile for the role. A stored override with
// its metadata stamp wins outright and is returned untouched. Otherwise
// the default document is fetched, persisted under the role's keys with
// a load stamp, and returned. Employers skip the fetch: their profile
// starts from the baseline until they edit it, and that baseline is
// never persisted. A failed fetch likewise degrades to an unpersisted
// baseline, so the next load retries the remote document instead of
// serving a cached stand-in.
func (l *Loader) LoadProfile(ctx context.Context, role models.Role) models.Profile {
	profileKey := namespace.ProfileKey(role)
	metadataKey := namespace.ProfileMetadataKey(role)

	var stored models.Profile
	var meta models.ProfileMetadata
	if l.store.Get(ctx, profileKey, &stored) && l.store.Get(ctx, metadataKey, &meta) {
		return stored
	}

	// Records written before role scoping live under the legacy keys.
	if legacyKey, ok := namespace.LegacyFallback(profileKey); ok {
		legacyMeta, _ := namespace.LegacyFallback(metadataKey)
		if l.store.Get(ctx, legacyKey, &stored) && l.store.Get(ctx, legacyMeta, &meta) {
			return stored
		}
	}

	if role == models.RoleEmployer {
		return defaults.BaselineProfile()
	}

	profile, err := l.defaults.FetchProfile(ctx)
	if err != nil {
		return profile
	}

	l.cacheProfile(ctx, role, profile)
	return profile
}

func (l *Loader) cacheProfile(ctx context.Context, role models.Role, profile models.Profile) {
	profileKey := namespace.ProfileKey(role)
	metadataKey := namespace.ProfileMetadataKey(role)

	if err := l.store.Set(ctx, profileKey, profile); err != nil {
		l.log.Warn("profile cache write failed", map[string]interface{}{
			"key":   profileKey,
			"error": err.Error(),
		})
		return
	}

	stamp := models.ProfileMetadata{
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Source:      models.MetadataSourceLoad,
		Version:     profileVersion,
		Role:        role,
	}
	if err := l.store.Set(ctx, metadataKey, stamp); err != nil {
		l.log.Warn("profile metadata write failed", map[string]interface{}{
			"key":   metadataKey,
			"error": err.Error(),
		})
	}
}

// LoadJobListings returns the public listing: active employer postings
// first, then the static catalog jobs, each tagged with its provenance.
// When the static catalog cannot be fetched the listing degrades to the
// employer jobs alone with no categories, never to an error.
func (l *Loader) LoadJobListings(ctx context.Context) models.Catalog {
	employerJobs := l.activeEmployerJobs(ctx)

	catalog, err := l.defaults.FetchCatalog(ctx)
	if err != nil {
		l.log.Warn("static catalog unavailable, serving employer jobs only", map[string]interface{}{
			"error": err.Error(),
		})
		return models.Catalog{
			Categories: []models.Category{},
			Jobs:       employerJobs,
		}
	}

	staticJobs := make([]models.JobListing, 0, len(catalog.Jobs))
	for _, job := range catalog.Jobs {
		if job.Source == "" {
			job.Source = models.SourceStatic
		}
		staticJobs = append(staticJobs, job)
	}

	merged := make([]models.JobListing, 0, len(employerJobs)+len(staticJobs))
	merged = append(merged, employerJobs...)
	merged = append(merged, staticJobs...)

	return models.Catalog{
		Categories: catalog.Categories,
		Jobs:       merged,
	}
}

// activeEmployerJobs reads the shared employer postings and keeps only
// the active ones, stamped with employer provenance.
func (l *Loader) activeEmployerJobs(ctx context.Context) []models.JobListing {
	var all []models.JobListing
	if !l.store.Get(ctx, namespace.KeyEmployerJobs, &all) {
		return []models.JobListing{}
	}

	active := make([]models.JobListing, 0, len(all))
	for _, job := range all {
		if job.Status != models.JobStatusActive {
			continue
		}
		job.Source = models.SourceEmployer
		active = append(active, job)
	}
	return active
}

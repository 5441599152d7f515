// internal/defaults/provider.go
// Package defaults serves the read-only seed documents: the baseline
// profile and the static job catalog. Documents are fetched over HTTP,
// schema-validated, and replaced by an embedded baseline when the fetch
// or validation fails.
package defaults

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"huntersite/internal/common/config"
	stderrors "huntersite/internal/common/errors"
	commonhttp "huntersite/internal/common/http"
	"huntersite/internal/common/logger"
	"huntersite/internal/common/metrics"
	"huntersite/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// Provider fetches and validates the static default documents.
type Provider struct {
	client  *commonhttp.Client
	baseURL string
	profile string
	jobs    string
	log     logger.Logger
}

func NewProvider(cfg config.DefaultsConfig, log logger.Logger) *Provider {
	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		client:  commonhttp.NewClient(timeout),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		profile: cfg.ProfilePath,
		jobs:    cfg.JobsPath,
		log:     log,
	}
}

// FetchProfile returns the default profile document. On any failure the
// embedded baseline is returned alongside the error, so callers always
// get a usable profile but can tell a fallback from a real fetch and
// must not persist the former.
func (p *Provider) FetchProfile(ctx context.Context) (models.Profile, error) {
	raw, err := p.fetch(ctx, "profile", p.profile, profileSchema)
	if err != nil {
		p.log.Warn("profile defaults unavailable, using baseline", map[string]interface{}{
			"path":  p.profile,
			"error": err.Error(),
		})
		metrics.DefaultsFetches.WithLabelValues("profile", "fallback").Inc()
		return BaselineProfile(), err
	}

	var profile models.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		p.log.Warn("profile defaults failed to decode, using baseline", map[string]interface{}{
			"path":  p.profile,
			"error": err.Error(),
		})
		metrics.DefaultsFetches.WithLabelValues("profile", "fallback").Inc()
		return BaselineProfile(), stderrors.NewDefaultsInvalidShapeError(p.profile, err.Error())
	}

	metrics.DefaultsFetches.WithLabelValues("profile", "ok").Inc()
	return profile, nil
}

// FetchCatalog returns the static job catalog. The error is reported so
// the loader can degrade the merged listing; the returned catalog is nil
// on failure.
func (p *Provider) FetchCatalog(ctx context.Context) (*models.Catalog, error) {
	raw, err := p.fetch(ctx, "jobs", p.jobs, catalogSchema)
	if err != nil {
		metrics.DefaultsFetches.WithLabelValues("jobs", "fallback").Inc()
		return nil, err
	}

	var catalog models.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		metrics.DefaultsFetches.WithLabelValues("jobs", "fallback").Inc()
		return nil, fmt.Errorf("decode catalog %s: %w", p.jobs, err)
	}

	metrics.DefaultsFetches.WithLabelValues("jobs", "ok").Inc()
	return &catalog, nil
}

func (p *Provider) fetch(ctx context.Context, document, path, schema string) ([]byte, error) {
	start := time.Now()
	defer func() {
		metrics.DefaultsFetchDuration.WithLabelValues(document).Observe(time.Since(start).Seconds())
	}()

	url := p.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", url, err)
	}

	resp, err := p.client.DoWithContext(ctx, req)
	if err != nil {
		return nil, stderrors.NewDefaultsFetchFailedError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, stderrors.NewDefaultsFetchFailedError(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, stderrors.NewDefaultsFetchFailedError(url, err)
	}

	if err := validate(raw, schema); err != nil {
		return nil, stderrors.NewDefaultsInvalidShapeError(url, err.Error())
	}
	return raw, nil
}

// validate checks a fetched document against its JSON schema. A document
// that fails validation is treated the same as one that never arrived.
func validate(raw []byte, schema string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("schema violations: %s", strings.Join(details, "; "))
	}
	return nil
}

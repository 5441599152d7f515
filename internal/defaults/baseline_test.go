// internal/defaults/baseline_test.go
package defaults

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntersite/internal/models"
)

// The seed tool materializes the baselines into the asset tree, so they
// must pass the same schemas the provider enforces on fetched documents.

func TestBaselineProfile_SatisfiesProfileSchema(t *testing.T) {
	raw, err := json.Marshal(BaselineProfile())
	require.NoError(t, err)

	assert.NoError(t, validate(raw, profileSchema))
}

func TestBaselineCatalog_SatisfiesCatalogSchema(t *testing.T) {
	catalog := BaselineCatalog()

	raw, err := json.Marshal(catalog)
	require.NoError(t, err)
	require.NoError(t, validate(raw, catalogSchema))

	categories := make(map[string]bool, len(catalog.Categories))
	for _, c := range catalog.Categories {
		categories[c.ID] = true
	}
	for _, job := range catalog.Jobs {
		assert.Equal(t, models.SourceStatic, job.Source, "baseline jobs carry static provenance")
		assert.True(t, categories[job.Category], "job %s references category %s", job.ID, job.Category)
	}
}

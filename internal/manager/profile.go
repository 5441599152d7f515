// internal/manager/profile.go
package manager

import (
	"context"
	"encoding/json"
	"time"

	stderrors "huntersite/internal/common/errors"
	"huntersite/internal/defaults"
	"huntersite/internal/merge"
	"huntersite/internal/models"
	"huntersite/internal/namespace"
)

// LoadProfile resolves the profile for the current role through the
// hybrid path: a stored override wins, otherwise the default document is
// fetched and cached. Without a session the job-seeker profile is
// served, matching the pre-login browse experience.
func (m *Manager) LoadProfile(ctx context.Context) models.Profile {
	return m.loader.LoadProfile(ctx, m.currentRole(ctx))
}

// Profile is the synchronous read: the stored override when one exists,
// the compiled-in baseline otherwise. It never fetches and never writes.
func (m *Manager) Profile(ctx context.Context) models.Profile {
	var stored models.Profile
	if m.getScoped(ctx, namespace.ProfileKey(m.currentRole(ctx)), &stored) {
		return stored
	}
	return defaults.BaselineProfile()
}

func (m *Manager) currentRole(ctx context.Context) models.Role {
	if sess, ok := m.session.Current(ctx); ok {
		return sess.Role
	}
	return models.RoleJobSeeker
}

// SaveProfile merges a partial update into the stored profile. Sections
// absent from the update survive untouched; arrays in the update replace
// stored arrays outright. The metadata stamp records the edit.
func (m *Manager) SaveProfile(ctx context.Context, partial map[string]interface{}) (models.Result, error) {
	sess, err := m.requireSession(ctx, "save_profile")
	if err != nil {
		return models.Result{}, err
	}

	current, err := profileAsMap(m.loader.LoadProfile(ctx, sess.Role))
	if err != nil {
		return models.Result{}, stderrors.NewStorageParseFailedError(namespace.ProfileKey(sess.Role), err)
	}

	merged := merge.Merge(current, partial)

	profileKey := namespace.ProfileKey(sess.Role)
	if err := m.store.Set(ctx, profileKey, merged); err != nil {
		return m.writeFailure(profileKey, err)
	}

	stamp := models.ProfileMetadata{
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Source:      models.MetadataSourceEdit,
		Version:     storageVersion,
		Role:        sess.Role,
	}
	metadataKey := namespace.ProfileMetadataKey(sess.Role)
	if err := m.store.Set(ctx, metadataKey, stamp); err != nil {
		m.log.Warn("profile metadata write failed", map[string]interface{}{
			"key":   metadataKey,
			"error": err.Error(),
		})
	}

	return models.OK("Profile saved"), nil
}

// ProfileMetadata returns the provenance stamp for the current role's
// profile, or ok=false when no override has been cached yet.
func (m *Manager) ProfileMetadata(ctx context.Context) (models.ProfileMetadata, bool) {
	var meta models.ProfileMetadata
	if !m.getScoped(ctx, namespace.ProfileMetadataKey(m.currentRole(ctx)), &meta) {
		return models.ProfileMetadata{}, false
	}
	return meta, true
}

// profileAsMap round-trips a typed profile through JSON so the merge
// engine can work key by key.
func profileAsMap(p models.Profile) (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

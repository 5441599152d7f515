// internal/namespace/resolver_test.go
package namespace

import (
	"testing"

	"huntersite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Role Entitlement Tests
// ==========================

func TestSavedJobsKey_ByRole(t *testing.T) {
	key, err := SavedJobsKey(models.RoleJobSeeker)
	require.NoError(t, err)
	assert.Equal(t, KeySeekerSavedJobs, key)

	_, err = SavedJobsKey(models.RoleEmployer)
	assert.ErrorIs(t, err, ErrNotEntitled)

	_, err = SavedJobsKey(models.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotEntitled)
}

func TestSeekerOnlyNamespaces_RejectEmployer(t *testing.T) {
	tests := []struct {
		name    string
		resolve func(models.Role) (string, error)
	}{
		{"saved jobs", SavedJobsKey},
		{"search history", SearchHistoryKey},
		{"applications", ApplicationsKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := tt.resolve(models.RoleJobSeeker)
			require.NoError(t, err)
			assert.NotEmpty(t, key)

			_, err = tt.resolve(models.RoleEmployer)
			assert.ErrorIs(t, err, ErrNotEntitled)
		})
	}
}

func TestProfileKeys_AreRoleScoped(t *testing.T) {
	assert.Equal(t, KeySeekerProfile, ProfileKey(models.RoleJobSeeker))
	assert.Equal(t, KeyEmployerProfile, ProfileKey(models.RoleEmployer))
	assert.NotEqual(t, ProfileKey(models.RoleJobSeeker), ProfileKey(models.RoleEmployer),
		"employer and seeker profiles must never share a key")

	assert.Equal(t, KeySeekerProfileMetadata, ProfileMetadataKey(models.RoleJobSeeker))
	assert.Equal(t, KeyEmployerProfileMetadata, ProfileMetadataKey(models.RoleEmployer))
}

func TestProfileKey_UnknownRoleFallsBackToSeeker(t *testing.T) {
	assert.Equal(t, KeySeekerProfile, ProfileKey(models.Role("")))
	assert.Equal(t, KeySeekerProfileMetadata, ProfileMetadataKey(models.Role("")))
}

// ==========================
// Legacy Fallback Tests
// ==========================

func TestLegacyFallback(t *testing.T) {
	legacy, ok := LegacyFallback(KeySeekerSavedJobs)
	require.True(t, ok)
	assert.Equal(t, KeyLegacySavedJobs, legacy)

	_, ok = LegacyFallback(KeyEmployerJobs)
	assert.False(t, ok, "employer pool predates nothing, no legacy twin")

	_, ok = LegacyFallback(KeySession)
	assert.False(t, ok)
}

// ==========================
// Logout Key Set Tests
// ==========================

func TestLogoutKeySets(t *testing.T) {
	seeker := SeekerLogoutKeys()
	assert.Contains(t, seeker, KeySeekerSavedJobs)
	assert.Contains(t, seeker, KeyLegacySavedJobs, "legacy keys erased too")
	assert.NotContains(t, seeker, KeySession, "session key is deleted separately, last")
	assert.NotContains(t, seeker, KeyEmployerJobs)

	employer := EmployerLogoutKeys()
	assert.Contains(t, employer, KeyEmployerProfile)
	assert.NotContains(t, employer, KeyEmployerJobs, "postings survive employer logout")
	assert.NotContains(t, employer, KeySession)
}

func TestAllKeys_CoversEveryNamespace(t *testing.T) {
	all := AllKeys()
	for _, key := range append(SeekerLogoutKeys(), EmployerLogoutKeys()...) {
		assert.Contains(t, all, key)
	}
	assert.Contains(t, all, KeySession)
	assert.Contains(t, all, KeyEmployerJobs)
}

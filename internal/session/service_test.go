// internal/session/service_test.go
package session

import (
	"context"
	"testing"

	"huntersite/internal/common/logger"
	"huntersite/internal/models"
	"huntersite/internal/namespace"
	"huntersite/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestService(t *testing.T) (*Service, *store.JSONStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	log := logger.NewTestLogger(t)
	js := store.NewJSONStore(store.NewRedisStoreWithClient(client, "huntersite_", 0, log), log)
	return NewService(js, log), js
}

// ==========================
// Login Tests
// ==========================

func TestLogin_WritesSessionRecord(t *testing.T) {
	ctx := context.Background()
	svc, js := newTestService(t)

	sess, err := svc.Login(ctx, "jane.doe@example.com", models.RoleJobSeeker)
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@example.com", sess.Email)
	assert.Equal(t, models.RoleJobSeeker, sess.Role)
	assert.Equal(t, "jane.doe", sess.Name, "display name is the email local part")
	assert.NotEmpty(t, sess.LoginDate)

	var stored models.Session
	require.True(t, js.Get(ctx, namespace.KeySession, &stored))
	assert.Equal(t, sess, stored)
	assert.True(t, svc.IsLoggedIn(ctx))
}

func TestLogin_ReplacesExistingSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, "first@example.com", models.RoleJobSeeker)
	require.NoError(t, err)
	_, err = svc.Login(ctx, "second@example.com", models.RoleEmployer)
	require.NoError(t, err)

	current, ok := svc.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, "second@example.com", current.Email)
	assert.Equal(t, models.RoleEmployer, current.Role)
}

func TestLogin_RejectsUnknownRole(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "x@example.com", models.Role("superuser"))
	assert.Error(t, err)
	assert.False(t, svc.IsLoggedIn(context.Background()))
}

func TestLogin_RejectsMalformedEmail(t *testing.T) {
	svc, _ := newTestService(t)

	for _, email := range []string{"", "not-an-email", "missing@tld"} {
		_, err := svc.Login(context.Background(), email, models.RoleJobSeeker)
		assert.Error(t, err, "email %q", email)
	}
	assert.False(t, svc.IsLoggedIn(context.Background()))
}

// ==========================
// Logout Tests
// ==========================

func TestLogout_JobSeekerClearsEverything(t *testing.T) {
	ctx := context.Background()
	svc, js := newTestService(t)

	_, err := svc.Login(ctx, "seeker@example.com", models.RoleJobSeeker)
	require.NoError(t, err)

	require.NoError(t, js.Set(ctx, namespace.KeySeekerSavedJobs, []string{"j1"}))
	require.NoError(t, js.Set(ctx, namespace.KeySeekerSearchHistory, []string{"go jobs"}))
	require.NoError(t, js.Set(ctx, namespace.KeyLegacySavedJobs, []string{"old"}))
	require.NoError(t, js.Set(ctx, namespace.KeyEmployerJobs, []string{"posted"}))

	svc.Logout(ctx)

	assert.False(t, svc.IsLoggedIn(ctx))
	assert.False(t, js.Has(ctx, namespace.KeySeekerSavedJobs))
	assert.False(t, js.Has(ctx, namespace.KeySeekerSearchHistory))
	assert.False(t, js.Has(ctx, namespace.KeyLegacySavedJobs), "legacy keys are swept too")
	assert.True(t, js.Has(ctx, namespace.KeyEmployerJobs), "employer pool is not seeker data")
}

func TestLogout_EmployerKeepsPostedJobs(t *testing.T) {
	ctx := context.Background()
	svc, js := newTestService(t)

	_, err := svc.Login(ctx, "recruiter@example.com", models.RoleEmployer)
	require.NoError(t, err)

	require.NoError(t, js.Set(ctx, namespace.KeyEmployerJobs, []string{"posted"}))
	require.NoError(t, js.Set(ctx, namespace.KeyEmployerProfile, map[string]string{"company": "Acme"}))

	svc.Logout(ctx)

	assert.False(t, svc.IsLoggedIn(ctx))
	assert.True(t, js.Has(ctx, namespace.KeyEmployerJobs), "postings must outlive the session")
	assert.False(t, js.Has(ctx, namespace.KeyEmployerProfile))
}

func TestLogout_NoSessionIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, js := newTestService(t)

	require.NoError(t, js.Set(ctx, namespace.KeySeekerSavedJobs, []string{"j1"}))

	svc.Logout(ctx)

	assert.True(t, js.Has(ctx, namespace.KeySeekerSavedJobs),
		"without a session there is no role, so nothing is torn down")
}

func TestLogout_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, "seeker@example.com", models.RoleJobSeeker)
	require.NoError(t, err)

	svc.Logout(ctx)
	svc.Logout(ctx)

	assert.False(t, svc.IsLoggedIn(ctx))
}

// ==========================
// DisplayName Tests
// ==========================

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "jane", models.DisplayName("jane@example.com"))
	assert.Equal(t, "no-at-sign", models.DisplayName("no-at-sign"))
	assert.Equal(t, "", models.DisplayName("@example.com"))
}

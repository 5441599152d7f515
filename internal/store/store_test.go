// internal/store/store_test.go
package store

import (
	"context"
	"testing"

	"huntersite/internal/common/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestRedisStore(t *testing.T, maxValueBytes int) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStoreWithClient(client, "huntersite_", maxValueBytes, logger.NewTestLogger(t))
}

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(newTestRedisStore(t, 0), logger.NewTestLogger(t))
}

// ==========================
// RedisStore Tests
// ==========================

func TestRedisStore_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t, 0)

	require.NoError(t, s.Set(ctx, "user", `{"email":"a@b.com"}`))

	raw, ok := s.Get(ctx, "user")
	require.True(t, ok)
	assert.Equal(t, `{"email":"a@b.com"}`, raw)
}

func TestRedisStore_MissingKeyReadsAbsent(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t, 0)

	_, ok := s.Get(ctx, "nothing_here")
	assert.False(t, ok)
}

func TestRedisStore_KeysArePrefixed(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	s := NewRedisStoreWithClient(client, "huntersite_", 0, logger.NewTestLogger(t))

	require.NoError(t, s.Set(ctx, "saved_jobs", "[]"))

	// The raw backend key carries the prefix.
	raw, err := mr.Get("huntersite_saved_jobs")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	// Keys() strips it back off.
	keys, err := s.Keys(ctx, "*")
	require.NoError(t, err)
	assert.Equal(t, []string{"saved_jobs"}, keys)
}

func TestRedisStore_QuotaRejectsOversizedValue(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t, 16)

	err := s.Set(ctx, "big", `{"payload":"exceeds sixteen bytes"}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// The rejected write must leave nothing behind.
	_, ok := s.Get(ctx, "big")
	assert.False(t, ok)
}

func TestRedisStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t, 0)

	require.NoError(t, s.Set(ctx, "user", "{}"))
	require.NoError(t, s.Delete(ctx, "user"))
	require.NoError(t, s.Delete(ctx, "user"), "second delete of same key succeeds")

	_, ok := s.Get(ctx, "user")
	assert.False(t, ok)
}

// ==========================
// JSONStore Tests
// ==========================

func TestJSONStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	js := newTestJSONStore(t)

	type record struct {
		Email string `json:"email"`
		Count int    `json:"count"`
	}

	require.NoError(t, js.Set(ctx, "rec", record{Email: "a@b.com", Count: 3}))

	var got record
	require.True(t, js.Get(ctx, "rec", &got))
	assert.Equal(t, record{Email: "a@b.com", Count: 3}, got)
}

func TestJSONStore_CorruptPayloadReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	kv := newTestRedisStore(t, 0)
	js := NewJSONStore(kv, logger.NewTestLogger(t))

	require.NoError(t, kv.Set(ctx, "broken", "{not json"))

	var out map[string]interface{}
	assert.False(t, js.Get(ctx, "broken", &out), "corrupt payload is a miss, not an error")

	// Has still sees the raw payload.
	assert.True(t, js.Has(ctx, "broken"))
	assert.Equal(t, len("{not json"), js.RawSize(ctx, "broken"))
}

func TestJSONStore_RawSizeAbsentKey(t *testing.T) {
	ctx := context.Background()
	js := newTestJSONStore(t)
	assert.Zero(t, js.RawSize(ctx, "missing"))
}

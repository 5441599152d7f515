// internal/store/store.go
package store

import (
	"context"
	"encoding/json"
	"errors"

	"huntersite/internal/common/logger"
	"huntersite/internal/common/metrics"
)

// ErrCapacityExceeded is returned by Set when the backing store rejects a
// write for lack of space. Callers must surface this to the end user;
// every other write failure may be absorbed.
var ErrCapacityExceeded = errors.New("storage capacity exceeded")

// Store is the raw key-value dependency injected into every component.
// Values are JSON text; last write wins; there is no transactionality.
type Store interface {
	// Get returns the raw payload, or ok=false when the key is absent.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores the raw payload. Returns ErrCapacityExceeded when the
	// store is full.
	Set(ctx context.Context, key, raw string) error
	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// Keys lists stored keys matching a glob pattern.
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// JSONStore layers safe serialize/deserialize on a Store. A payload that
// fails to parse reads as absent, never as an error.
type JSONStore struct {
	kv  Store
	log logger.Logger
}

func NewJSONStore(kv Store, log logger.Logger) *JSONStore {
	return &JSONStore{kv: kv, log: log}
}

// Get unmarshals the value at key into out. Returns false when the key is
// missing or the stored payload is corrupt.
func (j *JSONStore) Get(ctx context.Context, key string, out interface{}) bool {
	raw, ok := j.kv.Get(ctx, key)
	if !ok {
		metrics.StoreReads.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		metrics.StoreReads.WithLabelValues("corrupt").Inc()
		j.log.Warn("corrupt payload treated as absent", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	metrics.StoreReads.WithLabelValues("hit").Inc()
	return true
}

// Set marshals v and stores it. ErrCapacityExceeded passes through so the
// caller can warn the user; other failures are returned as-is.
func (j *JSONStore) Set(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		metrics.StoreWrites.WithLabelValues("error").Inc()
		return err
	}
	if err := j.kv.Set(ctx, key, string(raw)); err != nil {
		if errors.Is(err, ErrCapacityExceeded) {
			metrics.StoreWrites.WithLabelValues("quota_exceeded").Inc()
		} else {
			metrics.StoreWrites.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.StoreWrites.WithLabelValues("ok").Inc()
	return nil
}

// Delete removes keys, absorbing backend errors after logging them.
func (j *JSONStore) Delete(ctx context.Context, keys ...string) {
	if err := j.kv.Delete(ctx, keys...); err != nil {
		j.log.Warn("delete failed", map[string]interface{}{
			"keys":  keys,
			"error": err.Error(),
		})
	}
}

// Has reports whether a key holds any payload, corrupt or not.
func (j *JSONStore) Has(ctx context.Context, key string) bool {
	_, ok := j.kv.Get(ctx, key)
	return ok
}

// RawSize returns the payload length in bytes for a key, 0 when absent.
func (j *JSONStore) RawSize(ctx context.Context, key string) int {
	raw, ok := j.kv.Get(ctx, key)
	if !ok {
		return 0
	}
	return len(raw)
}

// KV exposes the underlying raw store.
func (j *JSONStore) KV() Store {
	return j.kv
}

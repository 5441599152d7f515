// internal/manager/manager.go
// Package manager is the facade the UI talks to. It stitches together
// the session service, the hybrid loader, and the role-scoped keyspace,
// and turns business-rule rejections into user-facing results.
package manager

import (
	"context"
	"errors"

	stderrors "huntersite/internal/common/errors"
	"huntersite/internal/common/logger"
	"huntersite/internal/loader"
	"huntersite/internal/models"
	"huntersite/internal/namespace"
	"huntersite/internal/session"
	"huntersite/internal/store"
)

// capacityMessage is shown to the user when a write is rejected for
// space. Every other infrastructure failure stays internal.
const capacityMessage = "Storage is full. Remove some saved items and try again."

// Manager exposes every user-facing data operation.
type Manager struct {
	store   *store.JSONStore
	session *session.Service
	loader  *loader.Loader
	log     logger.Logger
}

func New(js *store.JSONStore, sess *session.Service, ld *loader.Loader, log logger.Logger) *Manager {
	return &Manager{
		store:   js,
		session: sess,
		loader:  ld,
		log:     log,
	}
}

// ==========================
// 1. Session passthrough
// ==========================

func (m *Manager) Login(ctx context.Context, email string, role models.Role) (models.Session, error) {
	return m.session.Login(ctx, email, role)
}

func (m *Manager) Logout(ctx context.Context) {
	m.session.Logout(ctx)
}

func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	return m.session.IsLoggedIn(ctx)
}

func (m *Manager) CurrentUser(ctx context.Context) (models.Session, bool) {
	return m.session.Current(ctx)
}

// requireSession resolves the active session or fails the operation.
func (m *Manager) requireSession(ctx context.Context, operation string) (models.Session, error) {
	sess, ok := m.session.Current(ctx)
	if !ok {
		return models.Session{}, stderrors.NewSessionNotFoundError(operation)
	}
	return sess, nil
}

// reject converts a business-rule rejection into the user-facing result
// the operation contract promises. Codes outside the rejection set stay
// errors.
func (m *Manager) reject(stdErr *stderrors.StandardError) (models.Result, error) {
	if stderrors.IsDomainRejection(stdErr.Code) {
		return models.Rejected(stdErr.Message), nil
	}
	return models.Result{}, stdErr
}

// writeFailure maps a failed write onto the operation contract: quota
// exhaustion becomes the user-facing capacity rejection, anything else
// a standardized error logged with its category.
func (m *Manager) writeFailure(key string, err error) (models.Result, error) {
	if errors.Is(err, store.ErrCapacityExceeded) {
		quota := stderrors.NewStorageQuotaExceededError(key, err)
		m.log.Warn("write rejected for capacity", map[string]interface{}{
			"key":      key,
			"category": stderrors.GetErrorCategory(quota.Code),
			"details":  quota.Details,
		})
		return models.Rejected(capacityMessage), nil
	}
	stdErr := stderrors.NewStorageWriteFailedError(key, err)
	m.log.Error("storage write failed", map[string]interface{}{
		"key":      key,
		"category": stderrors.GetErrorCategory(stdErr.Code),
		"error":    err.Error(),
	})
	return models.Result{}, stdErr
}

// getScoped reads a scoped key, falling back to its legacy unscoped
// twin for records written before role scoping. Writes never take the
// fallback path.
func (m *Manager) getScoped(ctx context.Context, key string, out interface{}) bool {
	if m.store.Get(ctx, key, out) {
		return true
	}
	if legacy, ok := namespace.LegacyFallback(key); ok {
		return m.store.Get(ctx, legacy, out)
	}
	return false
}

// ==========================
// 2. Diagnostics
// ==========================

// storageVersion identifies the key layout generation, reported in
// diagnostics so tooling can detect records from older layouts.
const storageVersion = "1.0"

// StorageInfo reports how much of the keyspace each record occupies.
type StorageInfo struct {
	Version    string         `json:"version"`
	TotalBytes int            `json:"totalBytes"`
	Items      map[string]int `json:"items"`
}

// StorageUsage sizes every known key. Absent keys are omitted.
func (m *Manager) StorageUsage(ctx context.Context) StorageInfo {
	info := StorageInfo{Version: storageVersion, Items: make(map[string]int)}
	for _, key := range namespace.AllKeys() {
		size := m.store.RawSize(ctx, key)
		if size == 0 {
			continue
		}
		info.Items[key] = size
		info.TotalBytes += size
	}
	return info
}

// ClearAllData wipes every known key, sessions included. Used by tests
// and the factory-reset path.
func (m *Manager) ClearAllData(ctx context.Context) {
	m.store.Delete(ctx, namespace.AllKeys()...)
	m.log.Info("all stored data cleared", nil)
}

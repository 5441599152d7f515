// internal/manager/search.go
package manager

import (
	"context"
	"time"

	stderrors "huntersite/internal/common/errors"
	"huntersite/internal/models"
	"huntersite/internal/namespace"
)

// maxSearchHistory caps the recorded searches; newest first, oldest
// silently dropped.
const maxSearchHistory = 10

// AddSearchHistory records a search for the current job seeker. The
// entry is prepended and the list truncated to the cap.
func (m *Manager) AddSearchHistory(ctx context.Context, query, location string) (models.Result, error) {
	sess, err := m.requireSession(ctx, "add_search_history")
	if err != nil {
		return models.Result{}, err
	}
	key, err := namespace.SearchHistoryKey(sess.Role)
	if err != nil {
		return models.Result{}, stderrors.NewRoleNotEntitledError("add_search_history", string(sess.Role))
	}

	history := m.searchHistory(ctx, key)
	entry := models.SearchEntry{
		Query:    query,
		Location: location,
		Date:     time.Now().UTC().Format(time.RFC3339),
	}
	history = append([]models.SearchEntry{entry}, history...)
	if len(history) > maxSearchHistory {
		history = history[:maxSearchHistory]
	}

	if err := m.store.Set(ctx, key, history); err != nil {
		return m.writeFailure(key, err)
	}
	return models.OK("Search recorded"), nil
}

// SearchHistory returns the recorded searches, newest first.
func (m *Manager) SearchHistory(ctx context.Context) ([]models.SearchEntry, error) {
	sess, err := m.requireSession(ctx, "search_history")
	if err != nil {
		return nil, err
	}
	key, err := namespace.SearchHistoryKey(sess.Role)
	if err != nil {
		return nil, stderrors.NewRoleNotEntitledError("search_history", string(sess.Role))
	}
	return m.searchHistory(ctx, key), nil
}

// ClearSearchHistory drops every recorded search.
func (m *Manager) ClearSearchHistory(ctx context.Context) error {
	sess, err := m.requireSession(ctx, "clear_search_history")
	if err != nil {
		return err
	}
	key, err := namespace.SearchHistoryKey(sess.Role)
	if err != nil {
		return stderrors.NewRoleNotEntitledError("clear_search_history", string(sess.Role))
	}
	keys := []string{key}
	if legacy, ok := namespace.LegacyFallback(key); ok {
		keys = append(keys, legacy)
	}
	m.store.Delete(ctx, keys...)
	return nil
}

func (m *Manager) searchHistory(ctx context.Context, key string) []models.SearchEntry {
	var history []models.SearchEntry
	if !m.getScoped(ctx, key, &history) {
		return []models.SearchEntry{}
	}
	return history
}

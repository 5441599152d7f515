// internal/session/service.go
// Package session owns the single logged-in user record and the
// role-specific teardown that runs at logout.
package session

import (
	"context"
	"time"

	stderrors "huntersite/internal/common/errors"
	"huntersite/internal/common/logger"
	"huntersite/internal/common/validation"
	"huntersite/internal/models"
	"huntersite/internal/namespace"
	"huntersite/internal/store"
)

// Service manages login state. Presence of the session record in storage
// is the definition of "logged in"; there is no token layer.
type Service struct {
	store *store.JSONStore
	log   logger.Logger
}

func NewService(js *store.JSONStore, log logger.Logger) *Service {
	return &Service{store: js, log: log}
}

// Login writes the session record, replacing any existing one. The
// display name is derived from the email's local part.
func (s *Service) Login(ctx context.Context, email string, role models.Role) (models.Session, error) {
	if !role.Valid() {
		return models.Session{}, stderrors.NewRoleNotEntitledError("login", string(role))
	}
	if !validation.ValidateEmail(email) {
		return models.Session{}, stderrors.NewInvalidEmailError(email)
	}

	sess := models.Session{
		Email:     email,
		Role:      role,
		LoginDate: time.Now().UTC().Format(time.RFC3339),
		Name:      models.DisplayName(email),
	}

	if err := s.store.Set(ctx, namespace.KeySession, sess); err != nil {
		return models.Session{}, err
	}

	s.log.Info("user logged in", map[string]interface{}{
		"email": email,
		"role":  string(role),
	})
	return sess, nil
}

// Current returns the active session, or ok=false when nobody is logged
// in or the stored record is unreadable.
func (s *Service) Current(ctx context.Context) (models.Session, bool) {
	var sess models.Session
	if !s.store.Get(ctx, namespace.KeySession, &sess) {
		return models.Session{}, false
	}
	return sess, true
}

// IsLoggedIn reports whether a session record exists.
func (s *Service) IsLoggedIn(ctx context.Context) bool {
	_, ok := s.Current(ctx)
	return ok
}

// Logout tears down per-role data and then removes the session record.
// Job seekers get their lists and profile erased, scoped and legacy keys
// both. Employers keep their posted jobs so listings survive the logout;
// only their profile keys go. The session key is always deleted last so
// a partial teardown never strands a half-logged-out user who appears
// logged out. Calling Logout with no active session is a no-op.
func (s *Service) Logout(ctx context.Context) {
	sess, ok := s.Current(ctx)
	if !ok {
		// Still clear the raw key in case the record exists but is corrupt.
		s.store.Delete(ctx, namespace.KeySession)
		return
	}

	switch sess.Role {
	case models.RoleEmployer:
		s.store.Delete(ctx, namespace.EmployerLogoutKeys()...)
	default:
		s.store.Delete(ctx, namespace.SeekerLogoutKeys()...)
	}

	s.store.Delete(ctx, namespace.KeySession)
	s.log.Info("user logged out", map[string]interface{}{
		"email": sess.Email,
		"role":  string(sess.Role),
	})
}

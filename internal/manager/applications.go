// internal/manager/applications.go
package manager

import (
	"context"
	"time"

	stderrors "huntersite/internal/common/errors"
	"huntersite/internal/models"
	"huntersite/internal/namespace"
)

// SubmitApplication records an application for the current job seeker.
// A second application to the same job is rejected with a user-facing
// message.
func (m *Manager) SubmitApplication(ctx context.Context, job models.JobListing) (models.Result, error) {
	sess, err := m.requireSession(ctx, "submit_application")
	if err != nil {
		return models.Result{}, err
	}
	key, err := namespace.ApplicationsKey(sess.Role)
	if err != nil {
		return models.Result{}, stderrors.NewRoleNotEntitledError("submit_application", string(sess.Role))
	}

	apps := m.applications(ctx, key)
	for _, a := range apps {
		if a.JobID == job.ID && a.AppliedBy == sess.Email {
			return m.reject(stderrors.NewDuplicateApplicationError(job.ID, sess.Email))
		}
	}

	apps = append(apps, models.Application{
		JobID:       job.ID,
		JobTitle:    job.Title,
		Company:     job.Company,
		AppliedBy:   sess.Email,
		AppliedDate: time.Now().UTC().Format(time.RFC3339),
		Status:      models.ApplicationPending,
	})

	if err := m.store.Set(ctx, key, apps); err != nil {
		return m.writeFailure(key, err)
	}
	return models.OK("Application submitted"), nil
}

// Applications returns the current seeker's applications.
func (m *Manager) Applications(ctx context.Context) ([]models.Application, error) {
	sess, err := m.requireSession(ctx, "applications")
	if err != nil {
		return nil, err
	}
	key, err := namespace.ApplicationsKey(sess.Role)
	if err != nil {
		return nil, stderrors.NewRoleNotEntitledError("applications", string(sess.Role))
	}
	return m.applications(ctx, key), nil
}

// HasApplied reports whether the current seeker already applied to the
// job. An absent session reads as not applied.
func (m *Manager) HasApplied(ctx context.Context, jobID string) bool {
	sess, ok := m.session.Current(ctx)
	if !ok {
		return false
	}
	key, err := namespace.ApplicationsKey(sess.Role)
	if err != nil {
		return false
	}
	for _, a := range m.applications(ctx, key) {
		if a.JobID == jobID && a.AppliedBy == sess.Email {
			return true
		}
	}
	return false
}

func (m *Manager) applications(ctx context.Context, key string) []models.Application {
	var apps []models.Application
	if !m.getScoped(ctx, key, &apps) {
		return []models.Application{}
	}
	return apps
}

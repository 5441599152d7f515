// internal/manager/savedjobs.go
package manager

import (
	"context"
	"time"

	stderrors "huntersite/internal/common/errors"
	"huntersite/internal/models"
	"huntersite/internal/namespace"
)

// SaveJob bookmarks a listing for the current job seeker. Saving the
// same job twice is rejected with a user-facing message, not an error.
func (m *Manager) SaveJob(ctx context.Context, job models.JobListing) (models.Result, error) {
	sess, err := m.requireSession(ctx, "save_job")
	if err != nil {
		return models.Result{}, err
	}
	key, err := namespace.SavedJobsKey(sess.Role)
	if err != nil {
		return models.Result{}, stderrors.NewRoleNotEntitledError("save_job", string(sess.Role))
	}

	saved := m.savedJobs(ctx, key)
	for _, s := range saved {
		if s.ID == job.ID {
			return m.reject(stderrors.NewDuplicateSavedJobError(job.ID))
		}
	}

	saved = append(saved, models.SavedJob{
		JobListing: job,
		SavedDate:  time.Now().UTC().Format(time.RFC3339),
		SavedBy:    sess.Email,
	})

	if err := m.store.Set(ctx, key, saved); err != nil {
		return m.writeFailure(key, err)
	}
	return models.OK("Job saved"), nil
}

// RemoveSavedJob drops a bookmark. Removing a job that was never saved
// succeeds quietly.
func (m *Manager) RemoveSavedJob(ctx context.Context, jobID string) (models.Result, error) {
	sess, err := m.requireSession(ctx, "remove_saved_job")
	if err != nil {
		return models.Result{}, err
	}
	key, err := namespace.SavedJobsKey(sess.Role)
	if err != nil {
		return models.Result{}, stderrors.NewRoleNotEntitledError("remove_saved_job", string(sess.Role))
	}

	saved := m.savedJobs(ctx, key)
	kept := make([]models.SavedJob, 0, len(saved))
	for _, s := range saved {
		if s.ID != jobID {
			kept = append(kept, s)
		}
	}

	if err := m.store.Set(ctx, key, kept); err != nil {
		return m.writeFailure(key, err)
	}
	return models.OK("Job removed"), nil
}

// SavedJobs returns the current seeker's bookmarks.
func (m *Manager) SavedJobs(ctx context.Context) ([]models.SavedJob, error) {
	sess, err := m.requireSession(ctx, "saved_jobs")
	if err != nil {
		return nil, err
	}
	key, err := namespace.SavedJobsKey(sess.Role)
	if err != nil {
		return nil, stderrors.NewRoleNotEntitledError("saved_jobs", string(sess.Role))
	}
	return m.savedJobs(ctx, key), nil
}

// IsJobSaved reports whether the current seeker already bookmarked the
// job. An absent session reads as not saved.
func (m *Manager) IsJobSaved(ctx context.Context, jobID string) bool {
	sess, ok := m.session.Current(ctx)
	if !ok {
		return false
	}
	key, err := namespace.SavedJobsKey(sess.Role)
	if err != nil {
		return false
	}
	for _, s := range m.savedJobs(ctx, key) {
		if s.ID == jobID {
			return true
		}
	}
	return false
}

func (m *Manager) savedJobs(ctx context.Context, key string) []models.SavedJob {
	var saved []models.SavedJob
	if !m.getScoped(ctx, key, &saved) {
		return []models.SavedJob{}
	}
	return saved
}

// internal/manager/jobs.go
package manager

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	stderrors "huntersite/internal/common/errors"
	"huntersite/internal/models"
	"huntersite/internal/namespace"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

// jobPayloadSchema gates employer postings before they reach the shared
// listing pool.
const jobPayloadSchema = `{
  "type": "object",
  "required": ["title", "company", "location", "type"],
  "properties": {
    "title":    {"type": "string", "minLength": 1},
    "company":  {"type": "string", "minLength": 1},
    "location": {"type": "string", "minLength": 1},
    "type":     {"type": "string", "minLength": 1},
    "category": {"type": "string"}
  }
}`

// LoadJobListings returns the public listing visible to everyone:
// active employer postings first, then the static catalog.
func (m *Manager) LoadJobListings(ctx context.Context) models.Catalog {
	return m.loader.LoadJobListings(ctx)
}

// PostJob publishes a new employer posting. The ID, poster identity,
// posting date and provenance are assigned here, never trusted from the
// caller. Invalid payloads are rejected before any write.
func (m *Manager) PostJob(ctx context.Context, job models.JobListing) (models.JobListing, models.Result, error) {
	sess, err := m.requireSession(ctx, "post_job")
	if err != nil {
		return models.JobListing{}, models.Result{}, err
	}
	if sess.Role != models.RoleEmployer {
		return models.JobListing{}, models.Result{}, stderrors.NewRoleNotEntitledError("post_job", string(sess.Role))
	}
	if err := validateJobPayload(job); err != nil {
		return models.JobListing{}, models.Result{}, err
	}

	job.ID = uuid.New().String()
	job.PostedBy = sess.Email
	job.PostedDate = time.Now().UTC().Format(time.RFC3339)
	job.Source = models.SourceEmployer
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}

	all := m.employerPool(ctx)
	all = append(all, job)

	if err := m.store.Set(ctx, namespace.KeyEmployerJobs, all); err != nil {
		res, ferr := m.writeFailure(namespace.KeyEmployerJobs, err)
		return models.JobListing{}, res, ferr
	}
	return job, models.OK("Job posted"), nil
}

// EmployerJobs returns the current employer's own postings, every
// status included.
func (m *Manager) EmployerJobs(ctx context.Context) ([]models.JobListing, error) {
	sess, err := m.requireSession(ctx, "employer_jobs")
	if err != nil {
		return nil, err
	}
	if sess.Role != models.RoleEmployer {
		return nil, stderrors.NewRoleNotEntitledError("employer_jobs", string(sess.Role))
	}

	own := make([]models.JobListing, 0)
	for _, job := range m.employerPool(ctx) {
		if job.PostedBy == sess.Email {
			own = append(own, job)
		}
	}
	return own, nil
}

// AllPostings returns the full employer posting pool, every status and
// every poster included. Restricted to admins; employers see their own
// pending and closed postings through EmployerJobs.
func (m *Manager) AllPostings(ctx context.Context) ([]models.JobListing, error) {
	sess, err := m.requireSession(ctx, "all_postings")
	if err != nil {
		return nil, err
	}
	if sess.Role != models.RoleAdmin {
		return nil, stderrors.NewRoleNotEntitledError("all_postings", string(sess.Role))
	}
	return m.employerPool(ctx), nil
}

// ReplaceEmployerJobs swaps out the current employer's postings in one
// write. Postings by other employers in the shared pool are preserved;
// only the caller's slice is replaced. Identity fields on the incoming
// jobs are re-stamped so an employer cannot publish under another name.
func (m *Manager) ReplaceEmployerJobs(ctx context.Context, jobs []models.JobListing) (models.Result, error) {
	sess, err := m.requireSession(ctx, "replace_employer_jobs")
	if err != nil {
		return models.Result{}, err
	}
	if sess.Role != models.RoleEmployer {
		return models.Result{}, stderrors.NewRoleNotEntitledError("replace_employer_jobs", string(sess.Role))
	}

	kept := make([]models.JobListing, 0)
	for _, job := range m.employerPool(ctx) {
		if job.PostedBy != sess.Email {
			kept = append(kept, job)
		}
	}

	for _, job := range jobs {
		if job.ID == "" {
			job.ID = uuid.New().String()
		}
		job.PostedBy = sess.Email
		job.Source = models.SourceEmployer
		if job.Status == "" {
			job.Status = models.JobStatusActive
		}
		kept = append(kept, job)
	}

	if err := m.store.Set(ctx, namespace.KeyEmployerJobs, kept); err != nil {
		return m.writeFailure(namespace.KeyEmployerJobs, err)
	}
	return models.OK("Jobs updated"), nil
}

// RemoveEmployerJob deletes one of the current employer's postings.
// Another employer's posting with the same ID is left alone.
func (m *Manager) RemoveEmployerJob(ctx context.Context, jobID string) (models.Result, error) {
	sess, err := m.requireSession(ctx, "remove_employer_job")
	if err != nil {
		return models.Result{}, err
	}
	if sess.Role != models.RoleEmployer {
		return models.Result{}, stderrors.NewRoleNotEntitledError("remove_employer_job", string(sess.Role))
	}

	kept := make([]models.JobListing, 0)
	for _, job := range m.employerPool(ctx) {
		if job.ID == jobID && job.PostedBy == sess.Email {
			continue
		}
		kept = append(kept, job)
	}

	if err := m.store.Set(ctx, namespace.KeyEmployerJobs, kept); err != nil {
		return m.writeFailure(namespace.KeyEmployerJobs, err)
	}
	return models.OK("Job removed"), nil
}

// UpdateJobStatus moves one of the current employer's postings through
// its lifecycle. Closed and pending jobs drop out of the public listing
// on the next load.
func (m *Manager) UpdateJobStatus(ctx context.Context, jobID string, status models.JobStatus) (models.Result, error) {
	sess, err := m.requireSession(ctx, "update_job_status")
	if err != nil {
		return models.Result{}, err
	}
	if sess.Role != models.RoleEmployer {
		return models.Result{}, stderrors.NewRoleNotEntitledError("update_job_status", string(sess.Role))
	}

	all := m.employerPool(ctx)
	found := false
	for i := range all {
		if all[i].ID == jobID && all[i].PostedBy == sess.Email {
			all[i].Status = status
			found = true
		}
	}
	if !found {
		return models.Rejected("Job not found"), nil
	}

	if err := m.store.Set(ctx, namespace.KeyEmployerJobs, all); err != nil {
		return m.writeFailure(namespace.KeyEmployerJobs, err)
	}
	return models.OK("Job status updated"), nil
}

func (m *Manager) employerPool(ctx context.Context) []models.JobListing {
	var all []models.JobListing
	if !m.store.Get(ctx, namespace.KeyEmployerJobs, &all) {
		return []models.JobListing{}
	}
	return all
}

func validateJobPayload(job models.JobListing) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return stderrors.NewInvalidJobPayloadError(err.Error())
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(jobPayloadSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return stderrors.NewInvalidJobPayloadError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return stderrors.NewInvalidJobPayloadError(strings.Join(details, "; "))
	}
	return nil
}

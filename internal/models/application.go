// internal/models/application.go
package models

// ApplicationStatus tracks an application's review state.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application records one job application. At most one exists per
// (JobID, AppliedBy) pair.
type Application struct {
	JobID       string            `json:"jobId"`
	JobTitle    string            `json:"jobTitle"`
	Company     string            `json:"company"`
	AppliedBy   string            `json:"appliedBy"`
	AppliedDate string            `json:"appliedDate"` // RFC3339
	Status      ApplicationStatus `json:"status"`
}

// SearchEntry is one recorded search, newest-first in storage, capped.
type SearchEntry struct {
	Query    string `json:"query"`
	Location string `json:"location"`
	Date     string `json:"date"` // RFC3339
}

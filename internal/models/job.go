// internal/models/job.go
package models

// JobStatus is the lifecycle state of an employer posting. Only active
// jobs appear in the merged public listing.
type JobStatus string

const (
	JobStatusPending JobStatus = "pending"
	JobStatusActive  JobStatus = "active"
	JobStatusClosed  JobStatus = "closed"
)

// Job provenance values.
const (
	SourceStatic   = "static"
	SourceEmployer = "employer"
)

// JobListing is the common shape for both static catalog jobs and
// employer-posted jobs once merged into a public listing.
type JobListing struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	Type              string    `json:"type"`
	Salary            string    `json:"salary"`
	Description       string    `json:"description"`
	Requirements      string    `json:"requirements"`
	Category          string    `json:"category"`
	PostedDate        string    `json:"postedDate"` // RFC3339
	Deadline          string    `json:"deadline"`
	Status            JobStatus `json:"status,omitempty"`
	PostedBy          string    `json:"postedBy,omitempty"`
	ApplicationsCount int       `json:"applicationsCount,omitempty"`
	Featured          bool      `json:"featured,omitempty"`
	Source            string    `json:"source,omitempty"`
}

// Category groups catalog jobs for browsing.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Count int    `json:"count,omitempty"`
}

// Catalog is the full listing payload: browse categories plus jobs.
type Catalog struct {
	Categories []Category   `json:"categories"`
	Jobs       []JobListing `json:"jobs"`
}

// SavedJob is a listing snapshot bookmarked by a job seeker.
type SavedJob struct {
	JobListing
	SavedDate string `json:"savedDate"` // RFC3339
	SavedBy   string `json:"savedBy"`
}

// internal/namespace/resolver.go
// Package namespace maps the current role onto the storage keys it is
// entitled to. Employer and job-seeker data live under disjoint keys;
// legacy unscoped keys are consulted as a read fallback only.
package namespace

import (
	"errors"

	"huntersite/internal/models"
)

// Logical key names. The store applies the application prefix, so these
// stay short and collision-free within the namespace.
const (
	// Common (all users)
	KeySession        = "user"
	KeyStorageVersion = "storage_version"

	// Job seeker specific
	KeySeekerSavedJobs       = "jobseeker_saved_jobs"
	KeySeekerSearchHistory   = "jobseeker_search_history"
	KeySeekerApplications    = "jobseeker_applications"
	KeySeekerProfile         = "jobseeker_profile"
	KeySeekerProfileMetadata = "jobseeker_profile_metadata"

	// Employer specific
	KeyEmployerJobs            = "employer_jobs" // shared array, filtered by postedBy
	KeyEmployerProfile         = "employer_profile"
	KeyEmployerProfileMetadata = "employer_profile_metadata"
	KeyEmployerCompanyInfo     = "employer_company"

	// Legacy unscoped keys, kept for records written before role scoping
	KeyLegacySavedJobs       = "saved_jobs"
	KeyLegacySearchHistory   = "search_history"
	KeyLegacyApplications    = "applications"
	KeyLegacyProfile         = "user_profile"
	KeyLegacyProfileMetadata = "profile_metadata"
)

// ErrNotEntitled rejects a role asking for a namespace it does not own.
// Non-entitled access is an observable failure, not an empty list.
var ErrNotEntitled = errors.New("role is not entitled to this namespace")

// keySet is the per-role key table. Zero entries mean the role has no
// such namespace.
type keySet struct {
	profile         string
	profileMetadata string
	savedJobs       string
	searchHistory   string
	applications    string
}

var roleKeys = map[models.Role]keySet{
	models.RoleJobSeeker: {
		profile:         KeySeekerProfile,
		profileMetadata: KeySeekerProfileMetadata,
		savedJobs:       KeySeekerSavedJobs,
		searchHistory:   KeySeekerSearchHistory,
		applications:    KeySeekerApplications,
	},
	models.RoleEmployer: {
		profile:         KeyEmployerProfile,
		profileMetadata: KeyEmployerProfileMetadata,
	},
	// Admin browses with job-seeker defaults but owns no seeker lists.
	models.RoleAdmin: {
		profile:         KeySeekerProfile,
		profileMetadata: KeySeekerProfileMetadata,
	},
}

// ProfileKey returns the profile key for the role. An absent session
// resolves to the job-seeker profile, the pre-login default.
func ProfileKey(role models.Role) string {
	if ks, ok := roleKeys[role]; ok && ks.profile != "" {
		return ks.profile
	}
	return KeySeekerProfile
}

// ProfileMetadataKey returns the metadata stamp key paired with the
// role's profile key.
func ProfileMetadataKey(role models.Role) string {
	if ks, ok := roleKeys[role]; ok && ks.profileMetadata != "" {
		return ks.profileMetadata
	}
	return KeySeekerProfileMetadata
}

// SavedJobsKey returns the saved-jobs key, or ErrNotEntitled for any role
// other than job seeker.
func SavedJobsKey(role models.Role) (string, error) {
	ks := roleKeys[role]
	if ks.savedJobs == "" {
		return "", ErrNotEntitled
	}
	return ks.savedJobs, nil
}

// SearchHistoryKey returns the search-history key, or ErrNotEntitled.
func SearchHistoryKey(role models.Role) (string, error) {
	ks := roleKeys[role]
	if ks.searchHistory == "" {
		return "", ErrNotEntitled
	}
	return ks.searchHistory, nil
}

// ApplicationsKey returns the applications key, or ErrNotEntitled.
func ApplicationsKey(role models.Role) (string, error) {
	ks := roleKeys[role]
	if ks.applications == "" {
		return "", ErrNotEntitled
	}
	return ks.applications, nil
}

var legacyFallbacks = map[string]string{
	KeySeekerSavedJobs:       KeyLegacySavedJobs,
	KeySeekerSearchHistory:   KeyLegacySearchHistory,
	KeySeekerApplications:    KeyLegacyApplications,
	KeySeekerProfile:         KeyLegacyProfile,
	KeySeekerProfileMetadata: KeyLegacyProfileMetadata,
}

// LegacyFallback returns the pre-scoping key to consult when the scoped
// key has no data. Writes never target the legacy key.
func LegacyFallback(scopedKey string) (string, bool) {
	legacy, ok := legacyFallbacks[scopedKey]
	return legacy, ok
}

// SeekerLogoutKeys lists everything erased when a job seeker logs out,
// scoped and legacy both.
func SeekerLogoutKeys() []string {
	return []string{
		KeySeekerSavedJobs,
		KeySeekerSearchHistory,
		KeySeekerApplications,
		KeySeekerProfile,
		KeySeekerProfileMetadata,
		KeyLegacySavedJobs,
		KeyLegacySearchHistory,
		KeyLegacyApplications,
		KeyLegacyProfile,
		KeyLegacyProfileMetadata,
	}
}

// EmployerLogoutKeys lists what an employer logout erases. Posted jobs
// are deliberately absent: they must outlive the session so job seekers
// keep seeing them.
func EmployerLogoutKeys() []string {
	return []string{
		KeyEmployerProfile,
		KeyEmployerProfileMetadata,
		KeyEmployerCompanyInfo,
	}
}

// AllKeys lists every known key, for diagnostics and full resets.
func AllKeys() []string {
	return []string{
		KeySession,
		KeyStorageVersion,
		KeySeekerSavedJobs,
		KeySeekerSearchHistory,
		KeySeekerApplications,
		KeySeekerProfile,
		KeySeekerProfileMetadata,
		KeyEmployerJobs,
		KeyEmployerProfile,
		KeyEmployerProfileMetadata,
		KeyEmployerCompanyInfo,
		KeyLegacySavedJobs,
		KeyLegacySearchHistory,
		KeyLegacyApplications,
		KeyLegacyProfile,
		KeyLegacyProfileMetadata,
	}
}

// Package errors provides standardized error handling for the data layer.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Storage infrastructure
	ErrCodeStorageQuotaExceeded ErrorCode = "STORAGE_QUOTA_EXCEEDED"
	ErrCodeStorageWriteFailed   ErrorCode = "STORAGE_WRITE_FAILED"
	ErrCodeStorageParseFailed   ErrorCode = "STORAGE_PARSE_FAILED"
	ErrCodeStorageUnavailable   ErrorCode = "STORAGE_UNAVAILABLE"

	// Static defaults
	ErrCodeDefaultsFetchFailed  ErrorCode = "DEFAULTS_FETCH_FAILED"
	ErrCodeDefaultsInvalidShape ErrorCode = "DEFAULTS_INVALID_SHAPE"

	// Domain rules
	ErrCodeDuplicateSavedJob    ErrorCode = "DUPLICATE_SAVED_JOB"
	ErrCodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"
	ErrCodeRoleNotEntitled      ErrorCode = "ROLE_NOT_ENTITLED"
	ErrCodeSessionNotFound      ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeInvalidJobPayload    ErrorCode = "INVALID_JOB_PAYLOAD"
	ErrCodeInvalidEmail         ErrorCode = "INVALID_EMAIL"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewStorageQuotaExceededError marks a write rejected because the store's
// capacity is exhausted. This is the one infrastructure failure that must
// reach the end user.
func NewStorageQuotaExceededError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageQuotaExceeded,
		Message:   "Storage is full",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageWriteFailedError creates a retryable generic write error.
func NewStorageWriteFailedError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageWriteFailed,
		Message:   "Storage write failed",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageParseFailedError marks a corrupted persisted payload. Readers
// treat the key as absent; this error exists for logging only.
func NewStorageParseFailedError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageParseFailed,
		Message:   "Stored payload failed to parse",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageUnavailableError creates a retryable connectivity error.
func NewStorageUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageUnavailable,
		Message:   "Storage backend unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDefaultsFetchFailedError marks an unreachable defaults document; the
// caller falls back to the embedded baseline.
func NewDefaultsFetchFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDefaultsFetchFailed,
		Message:   "Default dataset fetch failed",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDefaultsInvalidShapeError marks a fetched document that failed schema
// validation, treated the same as a fetch failure.
func NewDefaultsInvalidShapeError(path, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDefaultsInvalidShape,
		Message:   "Default dataset failed validation",
		Details:   fmt.Sprintf("path: %s, %s", path, details),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateSavedJobError creates a non-retryable duplicate-save rejection.
func NewDuplicateSavedJobError(jobID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateSavedJob,
		Message:   "Job already saved",
		Details:   fmt.Sprintf("jobId: %s", jobID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateApplicationError creates a non-retryable duplicate-apply rejection.
func NewDuplicateApplicationError(jobID, appliedBy string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateApplication,
		Message:   "You have already applied to this job",
		Details:   fmt.Sprintf("jobId: %s, appliedBy: %s", jobID, appliedBy),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRoleNotEntitledError rejects a role-restricted operation outright.
func NewRoleNotEntitledError(operation, role string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRoleNotEntitled,
		Message:   "Role is not entitled to this operation",
		Details:   fmt.Sprintf("operation: %s, role: %s", operation, role),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError marks an operation that requires a logged-in user.
func NewSessionNotFoundError(operation string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "No active session",
		Details:   fmt.Sprintf("operation: %s", operation),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidJobPayloadError rejects an employer posting that failed validation.
func NewInvalidJobPayloadError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJobPayload,
		Message:   "Job posting failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidEmailError rejects a login with a malformed email address.
func NewInvalidEmailError(email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidEmail,
		Message:   "Email address is not valid",
		Details:   fmt.Sprintf("email: %s", email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// IsDomainRejection reports whether the code is a business-rule rejection
// meant to be shown to the end user, as opposed to an absorbed
// infrastructure failure.
func IsDomainRejection(code ErrorCode) bool {
	switch code {
	case ErrCodeDuplicateSavedJob,
		ErrCodeDuplicateApplication,
		ErrCodeRoleNotEntitled,
		ErrCodeSessionNotFound,
		ErrCodeInvalidJobPayload,
		ErrCodeInvalidEmail:
		return true
	}
	return false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "STORAGE"):
		return "STORAGE"
	case strings.Contains(codeStr, "DEFAULTS"):
		return "DEFAULTS"
	case strings.Contains(codeStr, "ROLE") || strings.Contains(codeStr, "SESSION"):
		return "AUTH"
	case strings.Contains(codeStr, "DUPLICATE") || strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}

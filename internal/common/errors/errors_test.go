package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// 1. Constructor Tests
// ==========================

func TestConstructors_CarryCodeAndDetails(t *testing.T) {
	cause := assert.AnError

	quota := NewStorageQuotaExceededError("huntersite_saved_jobs", cause)
	assert.Equal(t, ErrCodeStorageQuotaExceeded, quota.Code)
	assert.False(t, quota.Retryable)
	assert.Contains(t, quota.Details, "huntersite_saved_jobs")

	unavailable := NewStorageUnavailableError(cause)
	assert.Equal(t, ErrCodeStorageUnavailable, unavailable.Code)
	assert.True(t, unavailable.Retryable, "connectivity failures are retryable")

	dup := NewDuplicateSavedJobError("job-42")
	assert.Equal(t, "Job already saved", dup.Message)
	assert.Contains(t, dup.Details, "job-42")

	applied := NewDuplicateApplicationError("job-42", "user@example.com")
	assert.Equal(t, "You have already applied to this job", applied.Message)
	assert.Contains(t, applied.Details, "user@example.com")
}

// ==========================
// 2. Utility Tests
// ==========================

func TestIsDomainRejection(t *testing.T) {
	rejections := []ErrorCode{
		ErrCodeDuplicateSavedJob,
		ErrCodeDuplicateApplication,
		ErrCodeRoleNotEntitled,
		ErrCodeSessionNotFound,
		ErrCodeInvalidJobPayload,
		ErrCodeInvalidEmail,
	}
	for _, code := range rejections {
		assert.True(t, IsDomainRejection(code), "code %s", code)
	}

	infrastructure := []ErrorCode{
		ErrCodeStorageQuotaExceeded,
		ErrCodeStorageWriteFailed,
		ErrCodeStorageParseFailed,
		ErrCodeStorageUnavailable,
		ErrCodeDefaultsFetchFailed,
		ErrCodeDefaultsInvalidShape,
	}
	for _, code := range infrastructure {
		assert.False(t, IsDomainRejection(code), "code %s", code)
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "STORAGE", GetErrorCategory(ErrCodeStorageQuotaExceeded))
	assert.Equal(t, "DEFAULTS", GetErrorCategory(ErrCodeDefaultsFetchFailed))
	assert.Equal(t, "AUTH", GetErrorCategory(ErrCodeSessionNotFound))
	assert.Equal(t, "AUTH", GetErrorCategory(ErrCodeRoleNotEntitled))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeDuplicateSavedJob))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidEmail))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrorCode("UNKNOWN_CODE")))
}

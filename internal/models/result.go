// internal/models/result.go
package models

// Result is the outcome of a domain operation. Rule rejections (duplicate
// save, storage full) come back as Success=false with a message the
// caller can show directly; they are never raised as errors.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(message string) Result {
	return Result{Success: true, Message: message}
}

func Rejected(message string) Result {
	return Result{Success: false, Message: message}
}

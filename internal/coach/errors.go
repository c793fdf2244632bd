package coach

import "fmt"

// ValidationError indicates the request body was missing required fields or
// could not be decoded. Maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError indicates the referenced user does not exist. Maps to HTTP 404.
type NotFoundError struct {
	UserID string
}

func (e *NotFoundError) Error() string {
	return "User not found"
}

// GenerationError indicates the remote generation call failed outright:
// network failure, timeout or a non-2xx status. Parse failures are not
// generation errors; they degrade the artifact instead. Maps to HTTP 500.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// PersistenceError indicates the datastore write failed. The record is not
// retried or queued. Maps to HTTP 500.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to store record: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

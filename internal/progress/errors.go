package progress

import "fmt"

// ErrValidation wraps a malformed input that the pipeline rejected before
// mutating any state.
type ErrValidation struct {
	Err error
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ErrValidation) Unwrap() error { return e.Err }

// ErrNotFound reports a referenced entity that does not exist. Missing
// progress records are auto-created by write paths; this surfaces only
// from read paths and truly absent references.
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// ErrConflict reports that a guarded per-user update failed its version
// precondition twice; the caller should treat it as transient and retry.
type ErrConflict struct {
	UserID string
	Err    error
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("concurrent update conflict for user %s: %v", e.UserID, e.Err)
}

func (e *ErrConflict) Unwrap() error { return e.Err }

package store

import "fmt"

// PersistErrorCode categorizes persistence failures.
type PersistErrorCode string

// ErrCodeWriteFailed indicates the state could not be flushed.
const ErrCodeWriteFailed PersistErrorCode = "WRITE_FAILED"

// PersistError reports that SaveAll did not store the state. Err carries the
// backend or encoding cause.
type PersistError struct {
	Code PersistErrorCode
	Err  error
}

// ErrWriteFailed matches any *PersistError with ErrCodeWriteFailed via errors.Is.
var ErrWriteFailed = &PersistError{Code: ErrCodeWriteFailed}

func (e *PersistError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return string(e.Code)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// Is matches on Code so wrapped causes do not affect comparison.
func (e *PersistError) Is(target error) bool {
	pe, ok := target.(*PersistError)
	return ok && pe.Code == e.Code
}

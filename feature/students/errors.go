package students

import (
	"errors"
	"fmt"

	"student-registry/feature/students/models"
)

// ErrNotFound reports that no record exists for the requested id. It is a
// normal outcome for get/update/delete on absent ids.
var ErrNotFound = errors.New("student not found")

// ConflictError reports a uniqueness violation on email or id_number.
// It is raised by the pre-check before a write and also when the storage
// engine's own unique constraint rejects a write that slipped past the
// pre-check under concurrency.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError carries the complete list of violated field rules.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

package repository

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced is returned when a delete is blocked by rows pointing at the record.
	ErrReferenced = errors.New("record is still referenced")
	// ErrMissingReference is returned when a write points at a record that does not exist.
	ErrMissingReference = errors.New("referenced record does not exist")
)

// DuplicateError names the unique field a write collided on.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// DuplicateField returns the colliding field if err is a duplicate error.
func DuplicateField(err error) (string, bool) {
	var de *DuplicateError
	if errors.As(err, &de) {
		return de.Field, true
	}
	return "", false
}

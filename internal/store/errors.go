package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record matches the requested ID.
var ErrNotFound = errors.New("record not found")

// DuplicateError is returned by Create when a record with the computed ID
// already exists. It carries the ID so API responses can report which record
// collided.
type DuplicateError struct {
	ID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("record already exists: %s", e.ID)
}

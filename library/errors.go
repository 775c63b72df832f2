package library

import (
	"errors"
	"fmt"
)

// Expected, user-facing outcomes. Callers match these with errors.Is.
var (
	// ErrNotFound is returned when no book carries the requested id.
	ErrNotFound = errors.New("book not found")

	// ErrInvalidStatus is returned when a status outside the enumerated
	// values is supplied.
	ErrInvalidStatus = fmt.Errorf("invalid status: must be %q or %q", StatusAvailable, StatusCheckedOut)
)

// CorruptDataError reports that the catalog file exists but could not be
// parsed as a book array. Load returns it instead of silently starting
// with an empty catalog, so prior data is never discarded unnoticed.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt catalog file %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// PersistenceError reports an I/O failure while writing the catalog file.
// The mutation that triggered the save is rolled back, so in-memory state
// still matches the file.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("write catalog file %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

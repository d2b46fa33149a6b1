package secondary

import (
	"errors"
	"fmt"
)

// Common storage-boundary errors.
var (
	// ErrNotFound indicates the id does not resolve within the caller's
	// scope. Out-of-scope rows and missing rows are deliberately
	// indistinguishable so their existence does not leak.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials covers both unknown national IDs and wrong
	// passwords so login failures reveal nothing about which was wrong.
	ErrInvalidCredentials = errors.New("invalid national ID or password")

	// ErrDuplicateIdentity indicates the national ID is already registered
	// for that identity kind.
	ErrDuplicateIdentity = errors.New("national ID already registered")
)

// IntegrityError surfaces a uniqueness or foreign-key violation from the
// storage boundary, carrying the violated constraint's identity instead of
// a raw driver error.
type IntegrityError struct {
	Constraint string // "unique" or "foreign key"
	Entity     string // entity whose write violated the constraint
	Field      string // violating field, e.g. "national_id", "policy_id"
	Err        error  // underlying driver error, if any
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s constraint violated on %s", e.Entity, e.Constraint, e.Field)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// IsIntegrity reports whether err is an IntegrityError.
func IsIntegrity(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}

// ReferentialBlockError indicates a delete was refused because dependent
// rows still reference the target.
type ReferentialBlockError struct {
	Entity     string // entity that was to be deleted
	ID         int64
	Dependents string // dependent entity name
	Count      int
}

func (e *ReferentialBlockError) Error() string {
	return fmt.Sprintf("cannot delete %s %d: %d dependent %s record(s) exist", e.Entity, e.ID, e.Count, e.Dependents)
}

// IsReferentialBlock reports whether err is a ReferentialBlockError.
func IsReferentialBlock(err error) bool {
	var rb *ReferentialBlockError
	return errors.As(err, &rb)
}

// StorageError wraps a repository failure that matched no known integrity
// constraint. The enclosing transaction has been rolled back in full.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

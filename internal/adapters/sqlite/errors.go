// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"database/sql"
	"errors"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/example/segura/internal/ports/secondary"
)

// mapConstraintErr translates a sqlite constraint violation into the typed
// IntegrityError carrying the violated constraint's identity. Any other
// error is wrapped as a StorageError so raw driver errors never cross the
// repository boundary.
func mapConstraintErr(op, entity string, err error) error {
	if err == nil {
		return nil
	}

	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
		switch serr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return &secondary.IntegrityError{
				Constraint: "unique",
				Entity:     entity,
				Field:      uniqueField(serr.Error()),
				Err:        err,
			}
		case sqlite3.ErrConstraintForeignKey:
			return &secondary.IntegrityError{
				Constraint: "foreign key",
				Entity:     entity,
				Field:      foreignKeyField(entity),
				Err:        err,
			}
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return &secondary.IntegrityError{
				Constraint: "check",
				Entity:     entity,
				Field:      uniqueField(serr.Error()),
				Err:        err,
			}
		}
	}

	return &secondary.StorageError{Op: op, Err: err}
}

// uniqueField extracts the column name from messages like
// "UNIQUE constraint failed: clients.national_id".
func uniqueField(msg string) string {
	idx := strings.LastIndex(msg, ": ")
	if idx < 0 {
		return ""
	}
	qualified := msg[idx+2:]
	if dot := strings.LastIndex(qualified, "."); dot >= 0 {
		return qualified[dot+1:]
	}
	return qualified
}

// foreignKeyField names the referencing column for each entity. sqlite does
// not report which FK failed, but every table here carries at most one.
func foreignKeyField(entity string) string {
	switch entity {
	case "policy":
		return "client_id"
	case "property":
		return "policy_id"
	case "incident":
		return "property_id"
	}
	return ""
}

// notFoundOr maps sql.ErrNoRows to the caller-facing ErrNotFound and wraps
// anything else as a StorageError.
func notFoundOr(op string, err error) error {
	if err == sql.ErrNoRows {
		return secondary.ErrNotFound
	}
	return &secondary.StorageError{Op: op, Err: err}
}

package primary

import (
	"errors"
	"fmt"
)

// ValidationError indicates malformed input on one field. Always recoverable
// by the caller re-entering the value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AuthorizationDeniedError indicates the role/scope check refused the
// operation before any repository call was made.
type AuthorizationDeniedError struct {
	Reason string
}

func (e *AuthorizationDeniedError) Error() string {
	return fmt.Sprintf("not authorized: %s", e.Reason)
}

// IsAuthorizationDenied reports whether err is an AuthorizationDeniedError.
func IsAuthorizationDenied(err error) bool {
	var ae *AuthorizationDeniedError
	return errors.As(err, &ae)
}

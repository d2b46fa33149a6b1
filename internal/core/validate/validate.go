// Package validate contains the pure field-level validation rules applied
// before any record reaches storage.
package validate

import (
	"fmt"
	"strconv"
	"time"
)

// dateLayouts are the accepted calendar date formats, most common first.
var dateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02012006",
}

// Date parses a calendar date in one of the accepted formats
// (DD/MM/YYYY, DD-MM-YYYY, DDMMYYYY).
func Date(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected DD/MM/YYYY, DD-MM-YYYY or DDMMYYYY)", s)
}

// NationalID checks that s is exactly 11 digits.
func NationalID(s string) error {
	if len(s) != 11 {
		return fmt.Errorf("national ID must be exactly 11 digits, got %d characters", len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("national ID must contain only digits")
		}
	}
	return nil
}

// Money parses a non-negative monetary amount.
func Money(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must not be negative, got %s", s)
	}
	return v, nil
}

// PropertyKinds is the closed set of property type tags.
var PropertyKinds = []string{"standard", "studio", "penthouse", "duplex", "triplex", "flat"}

// PropertyKind checks that s is one of the known property type tags.
func PropertyKind(s string) error {
	for _, k := range PropertyKinds {
		if s == k {
			return nil
		}
	}
	return fmt.Errorf("unknown property kind %q (expected one of %v)", s, PropertyKinds)
}

// Required checks that a required field is present.
func Required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

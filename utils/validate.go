package utils

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

// ParamError identifies the first request field that failed validation.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("Param %s: %s", e.Field, e.Reason)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func RequireText(field, value string, max int) *ParamError {
	if value == "" {
		return &ParamError{Field: field, Reason: "Must not be an empty value"}
	}
	if utf8.RuneCountInString(value) > max {
		return &ParamError{Field: field, Reason: fmt.Sprintf("Must be at most %d characters", max)}
	}
	return nil
}

func RequireEmail(field, value string) *ParamError {
	if err := RequireText(field, value, 255); err != nil {
		return err
	}
	if !emailPattern.MatchString(value) {
		return &ParamError{Field: field, Reason: "Invalid email"}
	}
	return nil
}

// ParseDate accepts RFC 3339 timestamps (fractional seconds included) or a
// bare calendar date.
func ParseDate(field, value string) (time.Time, *ParamError) {
	if value == "" {
		return time.Time{}, &ParamError{Field: field, Reason: "Required"}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, &ParamError{Field: field, Reason: "Invalid date"}
}

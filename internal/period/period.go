// Package period parses and navigates calendar-month period keys ("2024-03").
package period

import (
	"errors"
	"fmt"
	"time"
)

const layout = "2006-01"

var ErrInvalidPeriod = errors.New("period must be in YYYY-MM format")

// Parse validates a period key and returns the first instant of that month in UTC.
func Parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, key)
	}
	return t, nil
}

// Validate reports whether key is a well-formed period key.
func Validate(key string) error {
	_, err := Parse(key)
	return err
}

// Key returns the period key for t.
func Key(t time.Time) string {
	return t.UTC().Format(layout)
}

// Current returns the period key containing now.
func Current(now time.Time) string {
	return Key(now)
}

// Shift moves a period key by delta months. Arithmetic is done on the first
// of the month in UTC so month lengths and time zones never skip a month.
func Shift(key string, delta int) (string, error) {
	t, err := Parse(key)
	if err != nil {
		return "", err
	}
	return Key(time.Date(t.Year(), t.Month()+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)), nil
}

// Label returns a human-readable label such as "March 2024".
func Label(key string) string {
	t, err := Parse(key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}

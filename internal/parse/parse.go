// Package parse validates and normalizes user-entered dates and amounts.
package parse

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parse errors.
var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
)

// isoDateLayout is the only accepted calendar date form.
const isoDateLayout = "2006-01-02"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date validates a YYYY-MM-DD string and returns it normalized (trimmed).
// The triple must be a real calendar date, so 2025-02-30 is rejected even
// though it matches the pattern.
func Date(text string) (string, error) {
	s := strings.TrimSpace(text)
	if !isoDatePattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q does not match YYYY-MM-DD", ErrInvalidDate, s)
	}
	if _, err := time.Parse(isoDateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, s)
	}
	return s, nil
}

// Amount parses a strictly positive decimal amount. Both "." and "," are
// accepted as the decimal separator; the result is rounded to cents.
func Amount(text string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidAmount, s)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: must be positive, got %v", ErrInvalidAmount, value)
	}
	return math.Round(value*100) / 100, nil
}

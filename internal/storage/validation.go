package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmhart/outlay/internal/parse"
)

// Validation and integrity errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrInvalidPeriod     = errors.New("invalid year/month")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDate enforces the ISO date format on the write path, so a library
// consumer bypassing the interactive prompts cannot insert malformed dates.
func validateDate(date string) error {
	if _, err := parse.Date(date); err != nil {
		return err
	}
	return nil
}

// validateAmount enforces the strictly-positive amount invariant.
func validateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: must be positive, got %v", parse.ErrInvalidAmount, amount)
	}
	return nil
}

// Package model defines the core domain types shared across the application.
package model

// NoCategoryName is displayed wherever an expense has no category attached.
const NoCategoryName = "-"

// Category represents a named grouping label a user assigns to expenses.
type Category struct {
	Name string
	ID   int64
}

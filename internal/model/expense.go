package model

// Expense represents one recorded spending event.
type Expense struct {
	CategoryID  *int64
	Date        string
	Description string
	Amount      float64
	ID          int64
}

// ExpenseRow is the listing shape of an expense with its category name
// already resolved (NoCategoryName when unset).
type ExpenseRow struct {
	Date         string
	Description  string
	CategoryName string
	Amount       float64
	ID           int64
}

// ExpenseFilter narrows an expense listing. Zero-value fields are ignored;
// set fields combine with AND. Date bounds are inclusive ISO date strings.
type ExpenseFilter struct {
	CategoryID *int64
	DateFrom   string
	DateTo     string
}

// CategoryPatch is the three-state category field of an update: not set
// (keep current value), set with a nil ID (clear the reference), or set
// with a concrete ID (reassign).
type CategoryPatch struct {
	ID  *int64
	Set bool
}

// ExpenseUpdate describes a partial update of an expense. Nil pointer
// fields keep the current value.
type ExpenseUpdate struct {
	Date        *string
	Amount      *float64
	Description *string
	Category    CategoryPatch
}

// Empty reports whether the update touches no fields at all.
func (u ExpenseUpdate) Empty() bool {
	return u.Date == nil && u.Amount == nil && u.Description == nil && !u.Category.Set
}

// CategoryTotal is one row of a monthly per-category summary.
type CategoryTotal struct {
	Category string
	Total    float64
}

package model

import "time"

// CategoryType indicates whether a category is for income, expense, or system use.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
	// CategoryTypeSystem represents system-managed categories (e.g., transfers).
	CategoryTypeSystem CategoryType = "system"
)

// Category represents a spending or income category. The engine only
// ever references categories by ID; the full record exists for the CLI
// and for referential integrity in the store.
type Category struct {
	CreatedAt time.Time    `json:"created_at"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	ID        int64        `json:"id"`
	IsActive  bool         `json:"is_active"`
}

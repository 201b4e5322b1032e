package models

import "github.com/shopspring/decimal"

// Expense is one cost incurred in a period.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	Description string
	Amount      decimal.Decimal
	Period      string

	// PaidBy is the owner who paid, or SharedPool.
	PaidBy Owner

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

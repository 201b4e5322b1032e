package models

import "github.com/shopspring/decimal"

// Unit is a billable unit (a shop) that pays rent every period.
type Unit struct {
	// ID is the unique identifier for the unit (UUID format).
	ID string

	// Name is the display name (e.g., "Medical Shop").
	Name string

	// BaseRent is the rent charged per period. A toggle to Paid records
	// this amount as collected.
	BaseRent decimal.Decimal

	// CreatedAt is the Unix timestamp when the unit was added.
	CreatedAt int64
}

package models

import "github.com/shopspring/decimal"

// PaymentStatus is the payment state of a unit for one period.
type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "Paid"
	StatusUnpaid PaymentStatus = "Unpaid"
)

// RevenueRecord is one unit's payment status for one period.
// There is at most one record per (UnitID, Period).
type RevenueRecord struct {
	UnitID string
	Period string
	Status PaymentStatus

	// AmountPaid is the amount actually collected. Zero unless Paid.
	AmountPaid decimal.Decimal

	// CollectedBy is the owner holding the collected rent. Empty unless Paid.
	CollectedBy Owner

	// UpdatedAt is the Unix timestamp of the last toggle or reassignment.
	UpdatedAt int64
}

// IsPaid reports whether the record counts toward received revenue.
func (r RevenueRecord) IsPaid() bool {
	return r.Status == StatusPaid
}

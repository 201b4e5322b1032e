// Package models defines the domain models for the rental ledger.
//
// # Models
//
//   - Owner / OwnerSet: the fixed, ordered group of co-owners
//   - Unit: a billable unit (shop) with a base rent
//   - RevenueRecord: one unit's payment status for one period
//   - Expense: one cost incurred in a period
//   - OwnerCredential: the password hash an owner logs in with
//
// Owners are identified by name. The set is configuration, not data: it is
// built once at startup and never grows or shrinks at runtime.
//
// # Periods
//
// Every record carries a period key, a calendar-month token such as "2024-03".
// Keys are compared by string equality only; see package period for parsing
// and navigation.
//
// # Amounts
//
// All amounts are decimal.Decimal so that sums and equal splits do not drift.
// Relationships use ID strings rather than pointers.
package models

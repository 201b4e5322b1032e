// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

var (
	ErrUnitNotFound       = errors.New("unit not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrCredentialNotFound = errors.New("credential not found")
)

// Store defines the persistence operations of the rental ledger.
// Implementations (SQLite, memory) are interchangeable behind it.
type Store interface {
	// CreateUnit persists a new unit. ID and CreatedAt are populated by the
	// store when empty.
	CreateUnit(ctx context.Context, unit *models.Unit) error

	// GetUnit returns ErrUnitNotFound when the unit does not exist.
	GetUnit(ctx context.Context, unitID string) (*models.Unit, error)

	// ListUnits returns units in creation order.
	ListUnits(ctx context.Context) ([]*models.Unit, error)

	// DeleteUnit removes a unit and all of its revenue records.
	DeleteUnit(ctx context.Context, unitID string) error

	// ListRevenueRecords returns every revenue record across all periods.
	ListRevenueRecords(ctx context.Context) ([]models.RevenueRecord, error)

	// ToggleRevenueStatus applies the toggle transition to the unit's record
	// for period atomically and returns the resulting record.
	ToggleRevenueStatus(ctx context.Context, unitID, period string, owners models.OwnerSet) (models.RevenueRecord, error)

	// SetCollector reassigns the collector of an existing Paid record.
	// It never creates a record.
	SetCollector(ctx context.Context, unitID, period string, collector models.Owner, owners models.OwnerSet) (models.RevenueRecord, error)

	// CreateExpense persists a new expense. ID and CreatedAt are populated
	// when empty.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns every expense across all periods in creation order.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// DeleteExpense returns ErrExpenseNotFound when the expense does not exist.
	DeleteExpense(ctx context.Context, expenseID string) error

	// SetOwnerCredential creates or replaces an owner's password hash.
	SetOwnerCredential(ctx context.Context, cred *models.OwnerCredential) error

	// GetOwnerCredential returns ErrCredentialNotFound when none is stored.
	GetOwnerCredential(ctx context.Context, owner models.Owner) (*models.OwnerCredential, error)

	// Close releases any resources held by the store.
	Close() error
}

// Package memory provides an in-process storage.Store. Data lives only as long
// as the process; it backs tests and the "memory" database backend.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sriteja123gujjari/RentalManagement/internal/calculator"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps units, records and expenses in maps guarded by a mutex. All
// reads return copies.
type Store struct {
	mu          sync.RWMutex
	units       []*models.Unit
	records     calculator.RevenueBook
	expenses    []models.Expense
	credentials map[models.Owner]models.OwnerCredential
	now         func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		records:     calculator.RevenueBook{},
		credentials: make(map[models.Owner]models.OwnerCredential),
		now:         time.Now,
	}
}

func (s *Store) CreateUnit(_ context.Context, unit *models.Unit) error {
	if unit.ID == "" {
		unit.ID = uuid.New().String()
	}
	if unit.CreatedAt == 0 {
		unit.CreatedAt = s.now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.units {
		if u.ID == unit.ID {
			return fmt.Errorf("unit already exists: %s", unit.ID)
		}
	}
	stored := *unit
	s.units = append(s.units, &stored)
	return nil
}

func (s *Store) GetUnit(_ context.Context, unitID string) (*models.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u := s.findUnit(unitID); u != nil {
		out := *u
		return &out, nil
	}
	return nil, fmt.Errorf("%w: %s", storage.ErrUnitNotFound, unitID)
}

func (s *Store) ListUnits(_ context.Context) ([]*models.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Unit, len(s.units))
	for i, u := range s.units {
		unit := *u
		out[i] = &unit
	}
	return out, nil
}

func (s *Store) DeleteUnit(_ context.Context, unitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.units {
		if u.ID == unitID {
			s.units = append(s.units[:i], s.units[i+1:]...)
			s.records.DeleteUnit(unitID)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", storage.ErrUnitNotFound, unitID)
}

func (s *Store) ListRevenueRecords(_ context.Context) ([]models.RevenueRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.Records(), nil
}

func (s *Store) ToggleRevenueStatus(_ context.Context, unitID, period string, owners models.OwnerSet) (models.RevenueRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	unit := s.findUnit(unitID)
	if unit == nil {
		return models.RevenueRecord{}, fmt.Errorf("%w: %s", storage.ErrUnitNotFound, unitID)
	}
	return s.records.Toggle(unitID, period, unit.BaseRent, owners, s.now().Unix()), nil
}

func (s *Store) SetCollector(_ context.Context, unitID, period string, collector models.Owner, owners models.OwnerSet) (models.RevenueRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records.AssignCollector(unitID, period, collector, owners, s.now().Unix())
}

func (s *Store) CreateExpense(_ context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = s.now().Unix()
	}
	if expense.PaidBy == "" {
		expense.PaidBy = models.SharedPool
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, *expense)
	return nil
}

func (s *Store) ListExpenses(_ context.Context) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out, nil
}

func (s *Store) DeleteExpense(_ context.Context, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.expenses {
		if e.ID == expenseID {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", storage.ErrExpenseNotFound, expenseID)
}

func (s *Store) SetOwnerCredential(_ context.Context, cred *models.OwnerCredential) error {
	if cred.UpdatedAt == 0 {
		cred.UpdatedAt = s.now().Unix()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[cred.Owner] = *cred
	return nil
}

func (s *Store) GetOwnerCredential(_ context.Context, owner models.Owner) (*models.OwnerCredential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.credentials[owner]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrCredentialNotFound, owner)
	}
	return &cred, nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

func (s *Store) findUnit(unitID string) *models.Unit {
	for _, u := range s.units {
		if u.ID == unitID {
			return u
		}
	}
	return nil
}

package calculator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

var (
	ErrRecordNotFound = errors.New("revenue record not found")
	ErrNotPaid        = errors.New("revenue record is not paid")
	ErrUnknownOwner   = errors.New("unknown owner")
)

// ToggleStatus returns the record that results from toggling a unit's payment
// status for a period. A nil existing record is created as Paid with the base
// rent collected by the first owner; otherwise Paid and Unpaid flip, and
// moving to Unpaid zeroes the amount and clears the collector.
func ToggleStatus(existing *models.RevenueRecord, unitID, period string, baseRent decimal.Decimal, owners models.OwnerSet, now int64) models.RevenueRecord {
	if existing != nil && existing.IsPaid() {
		return models.RevenueRecord{
			UnitID:     existing.UnitID,
			Period:     existing.Period,
			Status:     models.StatusUnpaid,
			AmountPaid: decimal.Zero,
			UpdatedAt:  now,
		}
	}

	return models.RevenueRecord{
		UnitID:      unitID,
		Period:      period,
		Status:      models.StatusPaid,
		AmountPaid:  baseRent,
		CollectedBy: owners.First(),
		UpdatedAt:   now,
	}
}

// AssignCollector returns existing with its collector replaced. Only a Paid
// record can be reassigned and the collector must be one of the owners.
func AssignCollector(existing *models.RevenueRecord, collector models.Owner, owners models.OwnerSet, now int64) (models.RevenueRecord, error) {
	if existing == nil {
		return models.RevenueRecord{}, ErrRecordNotFound
	}
	if !owners.Contains(collector) {
		return models.RevenueRecord{}, fmt.Errorf("%w: %s", ErrUnknownOwner, collector)
	}
	if !existing.IsPaid() {
		return models.RevenueRecord{}, ErrNotPaid
	}

	updated := *existing
	updated.CollectedBy = collector
	updated.UpdatedAt = now
	return updated, nil
}

// RecordKey identifies a revenue record.
type RecordKey struct {
	UnitID string
	Period string
}

// RevenueBook holds revenue records keyed by (unit, period), so a unit can
// never have two records for the same period.
type RevenueBook map[RecordKey]models.RevenueRecord

// Get returns the record for a unit and period.
func (b RevenueBook) Get(unitID, period string) (models.RevenueRecord, bool) {
	r, ok := b[RecordKey{UnitID: unitID, Period: period}]
	return r, ok
}

// Toggle applies ToggleStatus and stores the result.
func (b RevenueBook) Toggle(unitID, period string, baseRent decimal.Decimal, owners models.OwnerSet, now int64) models.RevenueRecord {
	key := RecordKey{UnitID: unitID, Period: period}
	var existing *models.RevenueRecord
	if r, ok := b[key]; ok {
		existing = &r
	}
	next := ToggleStatus(existing, unitID, period, baseRent, owners, now)
	b[key] = next
	return next
}

// AssignCollector applies AssignCollector and stores the result. It never
// creates a record.
func (b RevenueBook) AssignCollector(unitID, period string, collector models.Owner, owners models.OwnerSet, now int64) (models.RevenueRecord, error) {
	key := RecordKey{UnitID: unitID, Period: period}
	var existing *models.RevenueRecord
	if r, ok := b[key]; ok {
		existing = &r
	}
	next, err := AssignCollector(existing, collector, owners, now)
	if err != nil {
		return models.RevenueRecord{}, err
	}
	b[key] = next
	return next, nil
}

// DeleteUnit removes every record of a unit.
func (b RevenueBook) DeleteUnit(unitID string) {
	for key := range b {
		if key.UnitID == unitID {
			delete(b, key)
		}
	}
}

// Records returns the records sorted by period then unit ID.
func (b RevenueBook) Records() []models.RevenueRecord {
	out := make([]models.RevenueRecord, 0, len(b))
	for _, r := range b {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		return out[i].UnitID < out[j].UnitID
	})
	return out
}

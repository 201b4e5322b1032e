package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sriteja123gujjari/RentalManagement/internal/calculator"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage"
)

const selectRecord = `SELECT unit_id, period, status, amount_paid, collected_by, updated_at FROM revenue_records`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.RevenueRecord, error) {
	var (
		r           models.RevenueRecord
		status      string
		collectedBy sql.NullString
	)
	if err := row.Scan(&r.UnitID, &r.Period, &status, &r.AmountPaid, &collectedBy, &r.UpdatedAt); err != nil {
		return models.RevenueRecord{}, err
	}
	r.Status = models.PaymentStatus(status)
	if collectedBy.Valid {
		r.CollectedBy = models.Owner(collectedBy.String)
	}
	return r, nil
}

// ListRevenueRecords retrieves every revenue record.
func (s *SQLiteStore) ListRevenueRecords(ctx context.Context) ([]models.RevenueRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectRecord+" ORDER BY period, unit_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list revenue records: %w", err)
	}
	defer rows.Close()

	var records []models.RevenueRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan revenue record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenue records: %w", err)
	}

	return records, nil
}

// getRecordTx returns the record for unit/period, or nil when none exists.
func getRecordTx(ctx context.Context, tx *sql.Tx, unitID, period string) (*models.RevenueRecord, error) {
	r, err := scanRecord(tx.QueryRowContext(ctx, selectRecord+" WHERE unit_id = ? AND period = ?", unitID, period))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue record: %w", err)
	}
	return &r, nil
}

func upsertRecordTx(ctx context.Context, tx *sql.Tx, r models.RevenueRecord) error {
	var collectedBy any
	if r.CollectedBy != "" {
		collectedBy = string(r.CollectedBy)
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO revenue_records (unit_id, period, status, amount_paid, collected_by, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (unit_id, period) DO UPDATE SET
		     status = excluded.status,
		     amount_paid = excluded.amount_paid,
		     collected_by = excluded.collected_by,
		     updated_at = excluded.updated_at`,
		r.UnitID, r.Period, string(r.Status), r.AmountPaid, collectedBy, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert revenue record: %w", err)
	}
	return nil
}

// ToggleRevenueStatus flips a unit's payment status for a period, creating
// the record on first toggle.
func (s *SQLiteStore) ToggleRevenueStatus(ctx context.Context, unitID, period string, owners models.OwnerSet) (models.RevenueRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.RevenueRecord{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var unit models.Unit
	err = tx.QueryRowContext(ctx, "SELECT id, base_rent FROM units WHERE id = ?", unitID).Scan(&unit.ID, &unit.BaseRent)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RevenueRecord{}, fmt.Errorf("%w: %s", storage.ErrUnitNotFound, unitID)
	}
	if err != nil {
		return models.RevenueRecord{}, fmt.Errorf("failed to get unit: %w", err)
	}

	existing, err := getRecordTx(ctx, tx, unitID, period)
	if err != nil {
		return models.RevenueRecord{}, err
	}

	next := calculator.ToggleStatus(existing, unitID, period, unit.BaseRent, owners, time.Now().Unix())
	if err := upsertRecordTx(ctx, tx, next); err != nil {
		return models.RevenueRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.RevenueRecord{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return next, nil
}

// SetCollector reassigns the collector of an existing Paid record.
func (s *SQLiteStore) SetCollector(ctx context.Context, unitID, period string, collector models.Owner, owners models.OwnerSet) (models.RevenueRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.RevenueRecord{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := getRecordTx(ctx, tx, unitID, period)
	if err != nil {
		return models.RevenueRecord{}, err
	}

	next, err := calculator.AssignCollector(existing, collector, owners, time.Now().Unix())
	if err != nil {
		return models.RevenueRecord{}, err
	}
	if err := upsertRecordTx(ctx, tx, next); err != nil {
		return models.RevenueRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.RevenueRecord{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return next, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage"
)

// CreateUnit persists a new unit to the database.
func (s *SQLiteStore) CreateUnit(ctx context.Context, unit *models.Unit) error {
	if unit.ID == "" {
		unit.ID = uuid.New().String()
	}
	if unit.CreatedAt == 0 {
		unit.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO units (id, name, base_rent, created_at) VALUES (?, ?, ?, ?)",
		unit.ID, unit.Name, unit.BaseRent, unit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert unit: %w", err)
	}

	return nil
}

// GetUnit retrieves a unit by ID.
func (s *SQLiteStore) GetUnit(ctx context.Context, unitID string) (*models.Unit, error) {
	unit := &models.Unit{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, base_rent, created_at FROM units WHERE id = ?",
		unitID,
	).Scan(&unit.ID, &unit.Name, &unit.BaseRent, &unit.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrUnitNotFound, unitID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}

	return unit, nil
}

// ListUnits retrieves all units in creation order.
func (s *SQLiteStore) ListUnits(ctx context.Context) ([]*models.Unit, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, base_rent, created_at FROM units ORDER BY created_at, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		unit := &models.Unit{}
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.BaseRent, &unit.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate units: %w", err)
	}

	return units, nil
}

// DeleteUnit removes a unit and its revenue records.
func (s *SQLiteStore) DeleteUnit(ctx context.Context, unitID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM revenue_records WHERE unit_id = ?", unitID); err != nil {
		return fmt.Errorf("failed to delete revenue records: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM units WHERE id = ?", unitID)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrUnitNotFound, unitID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage"
)

// SetOwnerCredential creates or replaces an owner's password hash.
func (s *SQLiteStore) SetOwnerCredential(ctx context.Context, cred *models.OwnerCredential) error {
	if cred.UpdatedAt == 0 {
		cred.UpdatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO owner_credentials (owner, password_hash, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (owner) DO UPDATE SET
			password_hash = excluded.password_hash,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, string(cred.Owner), cred.PasswordHash, cred.UpdatedAt); err != nil {
		return fmt.Errorf("failed to set owner credential: %w", err)
	}

	return nil
}

// GetOwnerCredential retrieves an owner's password hash.
func (s *SQLiteStore) GetOwnerCredential(ctx context.Context, owner models.Owner) (*models.OwnerCredential, error) {
	query := `
		SELECT owner, password_hash, updated_at
		FROM owner_credentials
		WHERE owner = ?
	`

	var (
		cred models.OwnerCredential
		name string
	)
	err := s.db.QueryRowContext(ctx, query, string(owner)).Scan(&name, &cred.PasswordHash, &cred.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrCredentialNotFound, owner)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner credential: %w", err)
	}
	cred.Owner = models.Owner(name)

	return &cred, nil
}

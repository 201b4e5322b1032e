package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid owner or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrUnknownOwner       = errors.New("not an owner")
)

// CredentialStorage defines the persistence the authenticator needs.
type CredentialStorage interface {
	SetOwnerCredential(ctx context.Context, cred *models.OwnerCredential) error
	GetOwnerCredential(ctx context.Context, owner models.Owner) (*models.OwnerCredential, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage CredentialStorage
	owners  models.OwnerSet
	cost    int
}

// NewPasswordAuthenticator creates a password authenticator for the given owners.
func NewPasswordAuthenticator(storage CredentialStorage, owners models.OwnerSet) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
		owners:  owners,
		cost:    bcrypt.DefaultCost,
	}
}

// WithCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (a *PasswordAuthenticator) WithCost(cost int) *PasswordAuthenticator {
	a.cost = cost
	return a
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// SetCredential hashes and stores a password for an owner.
func (a *PasswordAuthenticator) SetCredential(ctx context.Context, owner models.Owner, credential string) error {
	if !a.owners.Contains(owner) {
		return fmt.Errorf("%w: %s", ErrUnknownOwner, owner)
	}
	if err := a.ValidateCredential(credential); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	cred := &models.OwnerCredential{Owner: owner, PasswordHash: string(hashedPassword)}
	if err := a.storage.SetOwnerCredential(ctx, cred); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	return nil
}

// Authenticate verifies an owner's password.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, owner models.Owner, credential string) error {
	if !a.owners.Contains(owner) {
		return ErrInvalidCredentials
	}

	cred, err := a.storage.GetOwnerCredential(ctx, owner)
	if err != nil {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(credential)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

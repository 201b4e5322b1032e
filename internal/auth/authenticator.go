package auth

import (
	"context"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// Owners are fixed by configuration, so there is no self-registration: an
// operator sets each owner's credential and owners log in with it.
type Authenticator interface {
	// SetCredential stores a new credential for an owner of the set.
	SetCredential(ctx context.Context, owner models.Owner, credential string) error

	// Authenticate verifies the owner's credential.
	// Returns ErrInvalidCredentials if authentication fails.
	Authenticate(ctx context.Context, owner models.Owner, credential string) error

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}

package models

// OwnerCredential holds the password hash an owner authenticates with.
// Owners themselves live in configuration; only their credentials are stored.
type OwnerCredential struct {
	Owner        Owner
	PasswordHash string
	UpdatedAt    int64
}

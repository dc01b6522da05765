// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"resumecoach/internal/domain/entity"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the credential store.
type AccountRepository interface {
	// Create persists a new account and assigns its ID. A duplicate email fails with
	// domainerrors.ErrUserAlreadyExists and never overwrites the existing account.
	Create(ctx context.Context, account *entity.Account) error

	// FindByEmail retrieves an account by its exact email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}

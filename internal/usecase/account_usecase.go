// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}

// AccountUsecase defines the account manager operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates an account. A taken email fails with ErrUserAlreadyExists.
	Register(ctx context.Context, input SignupInput) error

	// Login verifies credentials and issues a session token. Unknown email and wrong
	// password fail with the same ErrInvalidCredentials.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}

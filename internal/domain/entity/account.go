// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user able to request analyses.
// Accounts are created on signup and never updated afterwards.
type Account struct {
	ID           uuid.UUID // Assigned by the store at creation.
	Email        string    // Unique, compared exactly as stored.
	PasswordHash string    // Versioned "salt:key" hex pair produced by the password hasher.
	CreatedAt    time.Time
}

// SessionClaims is the identity asserted by a session token.
type SessionClaims struct {
	Subject   uuid.UUID // Account ID.
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

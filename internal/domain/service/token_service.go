package service

import (
	"time"

	"resumecoach/internal/domain/entity"
)

// TokenService signs and verifies stateless session tokens.
type TokenService interface {
	// Sign produces a token for the claims. Zero IssuedAt/ExpiresAt are filled from the configured TTL.
	Sign(claims *entity.SessionClaims) (string, error)

	// Verify checks signature, expiry and the presence of a subject.
	Verify(token string) (*entity.SessionClaims, error)

	// TTL returns the lifetime given to newly signed tokens.
	TTL() time.Duration
}

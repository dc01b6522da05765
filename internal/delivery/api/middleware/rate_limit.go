package middleware

import (
	"time"

	"resumecoach/config"
	domainerrors "resumecoach/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const rateLimitVisitorTTL = 3 * time.Minute

// NewRateLimiter throttles requests per client IP with a token bucket. A disabled or
// missing configuration yields a pass-through middleware.
func NewRateLimiter(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg == nil || !cfg.Enabled || cfg.Rate <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Rate),
		Burst:     burst,
		ExpiresIn: rateLimitVisitorTTL,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(echo.Context, error) error {
			return errors.WithStack(domainerrors.ErrInternalError)
		},
		DenyHandler: func(echo.Context, string, error) error {
			return errors.WithStack(domainerrors.ErrTooManyRequests)
		},
	})
}

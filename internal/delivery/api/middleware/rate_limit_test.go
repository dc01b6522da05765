package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resumecoach/config"
	domainerrors "resumecoach/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func callLimited(mw echo.MiddlewareFunc, ip string) error {
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	return mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
}

func TestNewRateLimiter_DeniesAfterBurst(t *testing.T) {
	mw := NewRateLimiter(&config.RateLimitConfig{Enabled: true, Rate: 0.001, Burst: 2})

	assert.NoError(t, callLimited(mw, "10.0.0.1"))
	assert.NoError(t, callLimited(mw, "10.0.0.1"))
	assert.ErrorIs(t, callLimited(mw, "10.0.0.1"), domainerrors.ErrTooManyRequests)

	// Buckets are per client.
	assert.NoError(t, callLimited(mw, "10.0.0.2"))
}

func TestNewRateLimiter_Disabled(t *testing.T) {
	mw := NewRateLimiter(&config.RateLimitConfig{Enabled: false, Rate: 0.001, Burst: 1})

	for range 5 {
		assert.NoError(t, callLimited(mw, "10.0.0.1"))
	}
	assert.NoError(t, callLimited(NewRateLimiter(nil), "10.0.0.1"))
}

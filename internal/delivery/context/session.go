package context

import (
	"resumecoach/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key holding the verified session claims.
const KeySession ContextKey = "session"

// SetSession stores the verified claims for downstream handlers.
func SetSession(c echo.Context, claims *entity.SessionClaims) {
	c.Set(string(KeySession), claims)
}

// GetSession returns the claims set by the auth middleware.
func GetSession(c echo.Context) (*entity.SessionClaims, bool) {
	claims, ok := c.Get(string(KeySession)).(*entity.SessionClaims)

	return claims, ok && claims != nil
}

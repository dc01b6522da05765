package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "resumecoach/internal/delivery/context"
	"resumecoach/internal/domain/entity"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests carrying a session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate verifies the bearer token and stores the session claims for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return errors.WithStack(domainerrors.ErrMissingToken)
		}

		tokenString, _, _ := strings.Cut(strings.TrimPrefix(authHeader, bearerPrefix), " ")

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Token verification failed", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrInvalidToken, "verify session token")
		}

		deliverycontext.SetSession(c, claims)

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", claims.Subject.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// GetSession retrieves the authenticated session from the Echo context.
func GetSession(c echo.Context) (*entity.SessionClaims, bool) {
	return deliverycontext.GetSession(c)
}

package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	apimiddleware "resumecoach/internal/delivery/api/middleware"
	"resumecoach/internal/delivery/api/validator"
	deliverycontext "resumecoach/internal/delivery/context"
	"resumecoach/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

// withSession stands in for the auth middleware.
func withSession(claims *entity.SessionClaims) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetSession(c, claims)

			return next(c)
		}
	}
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resumecoach/internal/delivery/api/response"
	domainerrors "resumecoach/internal/domain/errors"
	mockUsecase "resumecoach/internal/mocks/usecase"
	"resumecoach/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountEcho(t *testing.T) (*mockUsecase.MockAccountUsecase, func(method, path, body string) (int, string)) {
	t.Helper()

	accountUC := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/api/signup", h.Signup)
	e.POST("/api/login", h.Login)

	return accountUC, func(method, path, body string) (int, string) {
		rec := doRequest(e, method, path, body)

		return rec.Code, rec.Body.String()
	}
}

func TestAccountHandler_Signup(t *testing.T) {
	accountUC, call := newAccountEcho(t)
	accountUC.EXPECT().
		Register(mock.Anything, usecase.SignupInput{Email: "ada@example.com", Password: "hunter22"}).
		Return(nil)

	code, body := call(http.MethodPost, "/api/signup", `{"email":"ada@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "User created successfully.", body)
}

func TestAccountHandler_Signup_MissingFields(t *testing.T) {
	for _, body := range []string{`{}`, `{"email":"ada@example.com"}`, `{"password":"x"}`, `{"email":"","password":""}`} {
		t.Run(body, func(t *testing.T) {
			_, call := newAccountEcho(t)

			code, msg := call(http.MethodPost, "/api/signup", body)

			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "Email and password are required.", msg)
		})
	}
}

func TestAccountHandler_Signup_MissingFieldsJSON(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/api/signup", h.Signup)

	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{"password":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "Email and password are required.", body.Error.Message)
	assert.Equal(t, "email", body.Error.Details)
}

func TestAccountHandler_Signup_Duplicate(t *testing.T) {
	accountUC, call := newAccountEcho(t)
	accountUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(errors.WithStack(domainerrors.ErrUserAlreadyExists))

	code, msg := call(http.MethodPost, "/api/signup", `{"email":"ada@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "User already exists.", msg)
}

func TestAccountHandler_Signup_MalformedBody(t *testing.T) {
	_, call := newAccountEcho(t)

	code, _ := call(http.MethodPost, "/api/signup", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAccountHandler_Login(t *testing.T) {
	accountUC, call := newAccountEcho(t)
	accountUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "ada@example.com", Password: "hunter22"}).
		RunAndReturn(func(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
			return &usecase.LoginOutput{Token: "signed.jwt.value", ExpiresAt: time.Now().Add(time.Hour)}, nil
		})

	code, body := call(http.MethodPost, "/api/login", `{"email":"ada@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"token":"signed.jwt.value"}`, body)
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	accountUC, call := newAccountEcho(t)
	accountUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	code, msg := call(http.MethodPost, "/api/login", `{"email":"ada@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password.", msg)
}

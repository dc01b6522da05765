package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"resumecoach/internal/delivery/api/response"
	"resumecoach/internal/delivery/api/validator"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const signupSuccessMessage = "User created successfully."

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves signup and login.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// CredentialsRequest is the body of both signup and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Signup registers a new account.
func (h *AccountHandler) Signup(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	if err := h.accountUC.Register(c.Request().Context(), usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Text(c, http.StatusCreated, signupSuccessMessage)
}

// Login authenticates an account and returns a session token.
func (h *AccountHandler) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, LoginResponse{Token: output.Token})
}

func bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "bind credentials")
	}

	if err := c.Validate(&req); err != nil {
		return nil, errors.Wrap(invalidFields(domainerrors.ErrCredentialsRequired, err), "validate credentials")
	}

	return &req, nil
}

// invalidFields names the failed request fields in the error details.
func invalidFields(base *domainerrors.BaseError, err error) *domainerrors.BaseError {
	return base.WithDetails(strings.Join(validator.FailedFields(err), ","))
}

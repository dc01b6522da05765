// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "resumecoach/internal/delivery/context"
	"resumecoach/internal/domain/entity"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/domain/repository"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
	// decoyHash is verified against on unknown emails so both login failures pay the KDF cost.
	decoyHash func() string
}

const decoyPassword = "resumecoach-decoy-password"

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
	srv.decoyHash = sync.OnceValue(func() string {
		hash, err := srv.hasher.Hash(decoyPassword)
		if err != nil {
			srv.logger.Error("Failed to prepare decoy password hash", slog.Any("error", err))

			return ""
		}

		return hash
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and stores a new account. The store rejects duplicate emails.
func (srv *accountService) Register(ctx context.Context, input usecase.SignupInput) error {
	if input.Email == "" || input.Password == "" {
		return errors.WithStack(domainerrors.ErrCredentialsRequired)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	account := &entity.Account{
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Signup rejected, email already registered")
		}

		return errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.String("account_id", account.ID.String()))

	return nil
}

// Login verifies the credentials and signs a session token for the account.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrCredentialsRequired)
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.hasher.Check(input.Password, srv.decoyHash())
		srv.log(ctx).Warn("Login failed", slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("reason", "password mismatch"), slog.String("account_id", account.ID.String()))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	issuedAt := srv.now()
	claims := &entity.SessionClaims{
		Subject:   account.ID,
		Email:     account.Email,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(srv.tokenService.TTL()),
	}

	token, err := srv.tokenService.Sign(claims)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.Any("error", err))

		return nil, domainerrors.ErrTokenSigningFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Account logged in", slog.String("account_id", account.ID.String()))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

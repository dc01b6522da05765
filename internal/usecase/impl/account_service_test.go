package impl

import (
	"context"
	"testing"
	"time"

	"resumecoach/internal/domain/entity"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/domain/repository"
	mockRepo "resumecoach/internal/mocks/repository"
	mockSvc "resumecoach/internal/mocks/service"
	"resumecoach/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service      *accountService
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewAccountService(AccountServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	}).(*accountService)

	return accountServiceFixtures{
		service:      srv,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret").Return("scrypt$16384$8$1$aa:bb", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Email == "ada@example.com" && a.PasswordHash == "scrypt$16384$8$1$aa:bb"
		})).
		Run(func(_ context.Context, a *entity.Account) { a.ID = uuid.New() }).
		Return(nil)

	err := fx.service.Register(ctx, usecase.SignupInput{Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SignupInput
	}{
		{name: "missing email", input: usecase.SignupInput{Password: "s3cret"}},
		{name: "missing password", input: usecase.SignupInput{Email: "ada@example.com"}},
		{name: "both missing", input: usecase.SignupInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)

			err := fx.service.Register(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "Email and password are required.", appErr.Message())
		})
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret").Return("hash", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate email"))

	err := fx.service.Register(ctx, usecase.SignupInput{Email: "ada@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	fx.hasher.EXPECT().Hash("s3cret").Return("", errors.New("entropy exhausted"))

	err := fx.service.Register(context.Background(), usecase.SignupInput{Email: "ada@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return now }

	account := &entity.Account{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "stored"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("s3cret", "stored").Return(true)
	fx.tokenService.EXPECT().TTL().Return(24 * time.Hour)
	fx.tokenService.EXPECT().
		Sign(&entity.SessionClaims{
			Subject:   account.ID,
			Email:     "ada@example.com",
			IssuedAt:  now,
			ExpiresAt: now.Add(24 * time.Hour),
		}).
		Return("signed.jwt.token", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, now.Add(24*time.Hour), out.ExpiresAt)
}

func TestAccountService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAccountService(t)
	unknown.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)
	unknown.hasher.EXPECT().Hash(decoyPassword).Return("decoy", nil).Once()
	unknown.hasher.EXPECT().Check("x", "decoy").Return(false)

	_, unknownErr := unknown.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

	wrong := createTestAccountService(t)
	wrong.accountRepo.EXPECT().
		FindByEmail(ctx, "ada@example.com").
		Return(&entity.Account{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "stored"}, nil)
	wrong.hasher.EXPECT().Check("x", "stored").Return(false)

	_, wrongErr := wrong.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "x"})

	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
}

func TestAccountService_Login_UnknownEmailRunsHashCheck(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, mock.Anything).
		Return(nil, repository.ErrAccountNotFound).
		Times(2)
	fx.hasher.EXPECT().Hash(decoyPassword).Return("decoy", nil).Once()
	fx.hasher.EXPECT().Check(mock.Anything, "decoy").Return(false).Times(2)

	for _, email := range []string{"nobody@example.com", "ghost@example.com"} {
		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: email, Password: "x"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestAccountService_Login_StoreFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find account")

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, storeErr)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, err, storeErr)
}

func TestAccountService_Login_SigningFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "ada@example.com").
		Return(&entity.Account{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "stored"}, nil)
	fx.hasher.EXPECT().Check("s3cret", "stored").Return(true)
	fx.tokenService.EXPECT().TTL().Return(time.Hour)
	fx.tokenService.EXPECT().Sign(mock.Anything).Return("", errors.New("bad key"))

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "s3cret"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenSigningFailed)
}

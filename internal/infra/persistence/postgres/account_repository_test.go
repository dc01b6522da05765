package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"resumecoach/internal/domain/entity"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	insertAccountQuery = `^INSERT INTO "accounts" \(.+\) VALUES \(.+\) RETURNING "id"$`
	findAccountQuery   = `^` + regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1 ORDER BY "accounts"."id" LIMIT $2`) + `$`
)

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	id := uuid.New()
	mock.ExpectQuery(insertAccountQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	account := &entity.Account{Email: "ada@example.com", PasswordHash: "scrypt$16384$8$1$00:11"}
	require.NoError(t, repo.Create(context.Background(), account))

	assert.Equal(t, id, account.ID)
	assert.False(t, account.CreatedAt.IsZero())
}

func TestAccountRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(insertAccountQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

	err := repo.Create(context.Background(), &entity.Account{Email: "ada@example.com", PasswordHash: "h"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountRepository_Create_OtherFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(insertAccountQuery).WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &entity.Account{Email: "ada@example.com", PasswordHash: "h"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	id := uuid.New()
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(findAccountQuery).
		WithArgs("ada@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(id.String(), "ada@example.com", "scrypt$16384$8$1$00:11", createdAt))

	account, err := repo.FindByEmail(context.Background(), "ada@example.com")

	require.NoError(t, err)
	assert.Equal(t, &entity.Account{
		ID:           id,
		Email:        "ada@example.com",
		PasswordHash: "scrypt$16384$8$1$00:11",
		CreatedAt:    createdAt,
	}, account)
}

func TestAccountRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(findAccountQuery).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	account, err := repo.FindByEmail(context.Background(), "nobody@example.com")

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

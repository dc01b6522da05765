package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"resumecoach/config"
	deliverycontext "resumecoach/internal/delivery/context"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&base, nil))
	reqLogger := slog.New(slog.NewJSONHandler(&scoped, nil)).With(slog.String("request_id", "req-1"))

	l := newGormSlogLogger(baseLogger, &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, assert.AnError)

	assert.Empty(t, base.String())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(scoped.Bytes(), &entry))
	assert.Equal(t, "GORM query failed", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "SELECT 1", entry["sql"])
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_QueriesLogWithoutBoundValues(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	db, mock := newMockDB(t)
	db = db.Session(&gorm.Session{
		Logger: newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), cfg),
	})

	mock.ExpectQuery(findAccountQuery).
		WithArgs("ada@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _ = NewAccountRepository(db).FindByEmail(context.Background(), "ada@example.com")

	assert.Contains(t, buf.String(), "email = $1")
	assert.NotContains(t, buf.String(), "ada@example.com")
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"resumecoach/internal/errors"
	"resumecoach/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// runMigrations applies the embedded goose migrations to the primary.
func runMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(&gooseSlogLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// gooseSlogLogger routes goose output through slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	l.logger.Info("goose", slog.String("message", fmt.Sprintf(format, v...)))
}

// Fatalf is only reached on unrecoverable goose errors; UpContext already returns them,
// so this logs instead of exiting.
func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	l.logger.Error("goose", slog.String("message", fmt.Sprintf(format, v...)))
}

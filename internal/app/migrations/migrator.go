package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/yigit/lms/internal/pkg/logger"
)

//go:embed sql/*.sql
var migrationFS embed.FS

const migrationDir = "sql"

// Migrator applies the embedded schema migrations with goose
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{db: db}
}

// gooseLogger routes goose output through the application logger
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	l := logger.Component("migrations")
	l.Info().Msgf(format, v...)
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	l := logger.Component("migrations")
	l.Fatal().Msgf(format, v...)
}

// Up applies every pending migration and returns the resulting schema version
func (m *Migrator) Up(ctx context.Context) (int64, error) {
	goose.SetBaseFS(migrationFS)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("failed to set migration dialect: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(m.db)
	defer sqlDB.Close()

	if err := goose.UpContext(ctx, sqlDB, migrationDir); err != nil {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}

	logger.Info().Int64("version", version).Msg("Database schema is up to date")
	return version, nil
}

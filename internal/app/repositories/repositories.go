package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/lms/internal/db"
)

func newBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// PostgresStore implements Store on top of a pgx pool or an open transaction
type PostgresStore struct {
	pg   *db.PostgresDB
	inTx bool

	users       *UserRepository
	profiles    *ProfileRepository
	resetTokens *PasswordResetTokenRepository
	dashboards  *DashboardRepository
	batches     *BatchRepository
	hires       *HireRepository
}

// NewStore creates a store that runs statements on the pool
func NewStore(pg *db.PostgresDB) *PostgresStore {
	return newPostgresStore(pg, pg.Pool, false)
}

func newPostgresStore(pg *db.PostgresDB, q db.DBTX, inTx bool) *PostgresStore {
	users := NewUserRepository(q)
	return &PostgresStore{
		pg:          pg,
		inTx:        inTx,
		users:       users,
		profiles:    NewProfileRepository(q, users),
		resetTokens: NewPasswordResetTokenRepository(q),
		dashboards:  NewDashboardRepository(q),
		batches:     NewBatchRepository(q),
		hires:       NewHireRepository(q),
	}
}

func (s *PostgresStore) Users() UserStore             { return s.users }
func (s *PostgresStore) Profiles() ProfileStore       { return s.profiles }
func (s *PostgresStore) ResetTokens() ResetTokenStore { return s.resetTokens }
func (s *PostgresStore) Dashboards() DashboardStore   { return s.dashboards }
func (s *PostgresStore) Batches() BatchStore          { return s.batches }
func (s *PostgresStore) Hires() HireStore             { return s.hires }

// WithTx runs fn with every repository bound to one transaction
func (s *PostgresStore) WithTx(ctx context.Context, fn TxFn) error {
	if s.inTx {
		return fn(ctx, s)
	}
	return s.pg.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, newPostgresStore(s.pg, tx, true))
	})
}

package repositories

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/migrations"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/config"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// Integration tests run only when LMS_TEST_DATABASE_URL points at a disposable database.
func newIntegrationStore(t *testing.T) *PostgresStore {
	t.Helper()
	url := os.Getenv("LMS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("LMS_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	cfg := &config.Config{Database: config.DatabaseConfig{URL: url, ConnMaxLifetime: "5m", MaxOpenConns: 10}}
	pg, err := db.NewPostgresDB(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pg.Close)

	_, err = migrations.NewMigrator(pg.Pool).Up(ctx)
	require.NoError(t, err)

	_, err = pg.Pool.Exec(ctx, `TRUNCATE users, technologies, batches, admin_dashboard RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return NewStore(pg)
}

func createUser(t *testing.T, s Store, email string, role models.RoleType) *models.User {
	t.Helper()
	u := &models.User{Email: email, HashedPassword: "hash", Role: role, IsActive: true}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func TestPostgresUserUniqueness(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()

	u := createUser(t, s, "ada@example.com", models.RoleStudent)
	assert.NotZero(t, u.ID)

	err := s.Users().Create(ctx, &models.User{Email: "ada@example.com", HashedPassword: "h", Role: models.RoleStudent})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = s.Users().GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestPostgresResetTokenClaimIsSingleUse(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()
	u := createUser(t, s, "ada@example.com", models.RoleStudent)

	now := time.Now().UTC()
	tok := &models.PasswordResetToken{UserID: u.ID, Token: "tok-1", ExpiresAt: now.Add(30 * time.Minute)}
	require.NoError(t, s.ResetTokens().Create(ctx, tok))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ResetTokens().Claim(ctx, "tok-1", now)
			if err == nil {
				wins.Add(1)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())

	expired := &models.PasswordResetToken{UserID: u.ID, Token: "tok-2", ExpiresAt: now.Add(30 * time.Minute)}
	require.NoError(t, s.ResetTokens().Create(ctx, expired))
	_, err := s.ResetTokens().Claim(ctx, "tok-2", now.Add(30*time.Minute))
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestPostgresWithTxRollsBack(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(ctx context.Context, tx Store) error {
		createUser(t, tx, "ghost@example.com", models.RoleStudent)
		return tx.WithTx(ctx, func(ctx context.Context, inner Store) error {
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestPostgresDashboardCounts(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()

	student := createUser(t, s, "s@example.com", models.RoleStudent)
	createUser(t, s, "m@example.com", models.RoleMentor)

	batch := &models.Batch{BatchName: "Go", Status: models.BatchStatusCompleted}
	require.NoError(t, s.Batches().Create(ctx, batch))
	require.NoError(t, s.Batches().Create(ctx, &models.Batch{BatchName: "Rust", Status: "Scheduled"}))

	d, err := s.Dashboards().GetOrCreate(ctx)
	require.NoError(t, err)
	again, err := s.Dashboards().GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, d.ID, again.ID)

	hire := &models.StudentsHired{
		UserID: student.ID, Fullname: "S", Email: "s@example.com", HiredCompany: "Acme",
		HiredDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), BatchID: &batch.ID, DashboardID: &d.ID,
	}
	require.NoError(t, s.Hires().Create(ctx, hire))

	dup := *hire
	dup.ID = 0
	err = s.Hires().Create(ctx, &dup)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	hires, err := s.Hires().CountByDashboard(ctx, d.ID)
	require.NoError(t, err)
	completed, err := s.Batches().CountByStatus(ctx, models.BatchStatusCompleted)
	require.NoError(t, err)
	students, err := s.Users().CountByRole(ctx, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 1}, []int64{hires, completed, students})

	err = s.Users().Delete(ctx, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestPostgresMentorTechnologyFilter(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()

	addMentor := func(email, name string, techs ...string) {
		u := createUser(t, s, email, models.RoleMentor)
		p := &models.MentorProfile{UserID: u.ID, Name: name}
		require.NoError(t, s.Profiles().CreateMentorProfile(ctx, p))
		list, err := s.Profiles().GetOrCreateTechnologies(ctx, techs)
		require.NoError(t, err)
		ids := make([]int64, 0, len(list))
		for _, tech := range list {
			ids = append(ids, tech.ID)
		}
		require.NoError(t, s.Profiles().LinkTechnologies(ctx, p.ID, ids))
	}
	addMentor("py@example.com", "Pythonista", "Django", "MongoDB")
	addMentor("gopher@example.com", "Gopher", "Go")

	got, err := s.Profiles().ListMentors(ctx, models.MentorFilter{Limit: 10, Technology: "GO"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Gopher", got[0].Name)

	got, err = s.Profiles().ListMentors(ctx, models.MentorFilter{Limit: 10, Technology: "mongo"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

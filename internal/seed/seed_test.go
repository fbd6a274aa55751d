package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/config"
	"github.com/yigit/lms/internal/pkg/auth"
	"github.com/yigit/lms/internal/testutils"
)

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()
	store := testutils.NewMemStore()
	hasher := auth.NewBcryptHasher(4)
	admin := config.AdminConfig{Email: " Admin@LMS.local ", Password: "supersecret", FullName: "Root"}

	first, err := CreateDefaultData(ctx, store, hasher, admin, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, first.AdminCreated)
	assert.NotZero(t, first.DashboardID)

	user, err := store.Users().GetByEmail(ctx, "admin@lms.local")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "supersecret", user.HashedPassword)
	assert.True(t, hasher.Verify("supersecret", user.HashedPassword))

	second, err := CreateDefaultData(ctx, store, hasher, admin, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, second.AdminCreated)
	assert.Equal(t, first.AdminID, second.AdminID)
	assert.Equal(t, first.DashboardID, second.DashboardID)
}

func TestCreateDefaultDataWithoutAdmin(t *testing.T) {
	ctx := context.Background()
	store := testutils.NewMemStore()

	result, err := CreateDefaultData(ctx, store, auth.NewBcryptHasher(4), config.AdminConfig{}, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, result.AdminCreated)
	assert.Zero(t, result.AdminID)

	n, err := store.Users().CountByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.Zero(t, n)
}

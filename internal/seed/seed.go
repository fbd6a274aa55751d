// Package seed creates the data a fresh installation needs
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/config"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/auth"
)

// Result reports what CreateDefaultData did
type Result struct {
	AdminCreated bool
	AdminID      int64
	DashboardID  int64
}

// CreateDefaultData creates the configured admin account and the dashboard row if they
// don't exist. Running it again changes nothing.
func CreateDefaultData(ctx context.Context, store repositories.Store, hasher auth.PasswordHasher, admin config.AdminConfig, lgr zerolog.Logger) (*Result, error) {
	result := &Result{}

	err := store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		dashboard, err := tx.Dashboards().GetOrCreate(ctx)
		if err != nil {
			return fmt.Errorf("failed to ensure dashboard: %w", err)
		}
		result.DashboardID = dashboard.ID

		email := strings.ToLower(strings.TrimSpace(admin.Email))
		if email == "" || admin.Password == "" {
			lgr.Warn().Msg("Admin credentials not configured, skipping admin seed")
			return nil
		}

		existing, err := tx.Users().GetByEmail(ctx, email)
		switch {
		case err == nil:
			if existing.Role != models.RoleAdmin {
				lgr.Warn().Str("email", email).Str("role", string(existing.Role)).Msg("Seed admin email belongs to a non-admin account")
			}
			result.AdminID = existing.ID
			return nil
		case !errors.Is(err, apperrors.ErrUserNotFound):
			return fmt.Errorf("failed to look up admin: %w", err)
		}

		hash, err := hasher.Hash(admin.Password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		user := &models.User{
			Email:          email,
			HashedPassword: hash,
			Role:           models.RoleAdmin,
			IsActive:       true,
		}
		if name := strings.TrimSpace(admin.FullName); name != "" {
			user.FullName = &name
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		result.AdminCreated = true
		result.AdminID = user.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.AdminCreated {
		lgr.Info().Str("email", admin.Email).Int64("userID", result.AdminID).Msg("Admin account created")
	}
	return result, nil
}

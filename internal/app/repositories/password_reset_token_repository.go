package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/dberrors"
	"github.com/yigit/lms/internal/pkg/logger"
)

const resetTokenReturning = "RETURNING id, user_id, token, expires_at, used, created_at"

// PasswordResetTokenRepository manages password reset tokens in the database
type PasswordResetTokenRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewPasswordResetTokenRepository creates a new PasswordResetTokenRepository
func NewPasswordResetTokenRepository(q db.DBTX) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{db: q, sb: newBuilder()}
}

// Create stores a new, unused token
func (r *PasswordResetTokenRepository) Create(ctx context.Context, token *models.PasswordResetToken) error {
	sql, args, err := r.sb.Insert("password_reset_tokens").
		Columns("user_id", "token", "expires_at", "used").
		Values(token.UserID, token.Token, token.ExpiresAt, false).
		Suffix(resetTokenReturning).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create reset token query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.db, token, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", token.UserID).Msg("Error creating password reset token")
		return fmt.Errorf("error creating password reset token: %w", err)
	}
	return nil
}

// Claim flips used to true only while the token is unused and unexpired. Concurrent callers
// race on the row lock and at most one of them gets the row back.
func (r *PasswordResetTokenRepository) Claim(ctx context.Context, token string, now time.Time) (*models.PasswordResetToken, error) {
	sql, args, err := r.sb.Update("password_reset_tokens").
		Set("used", true).
		Where(squirrel.Eq{"token": token}).
		Where(squirrel.Eq{"used": false}).
		Where(squirrel.Gt{"expires_at": now}).
		Suffix(resetTokenReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build claim reset token query: %w", err)
	}

	var claimed models.PasswordResetToken
	if err := pgxscan.Get(ctx, r.db, &claimed, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperrors.ErrInvalidResetToken
		}
		logger.Error().Err(err).Msg("Error claiming password reset token")
		return nil, fmt.Errorf("error claiming password reset token: %w", err)
	}
	return &claimed, nil
}

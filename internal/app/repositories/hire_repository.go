package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/dberrors"
	"github.com/yigit/lms/internal/pkg/logger"
)

// HireRepository persists hire records
type HireRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewHireRepository creates a new HireRepository
func NewHireRepository(q db.DBTX) *HireRepository {
	return &HireRepository{db: q, sb: newBuilder()}
}

// Create inserts a hire record
func (r *HireRepository) Create(ctx context.Context, h *models.StudentsHired) error {
	sql, args, err := r.sb.Insert("students_hired").
		Columns("user_id", "fullname", "email", "hired_company", "hired_date", "batch_id", "dashboard_id").
		Values(h.UserID, h.Fullname, h.Email, h.HiredCompany, h.HiredDate, h.BatchID, h.DashboardID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create hire query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&h.ID); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "students_hired_email_key"):
			return apperrors.NewConflictError("a hire with this email is already recorded")
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.NewBadRequestError("referenced user, batch or dashboard does not exist")
		}
		logger.Error().Err(err).Int64("userID", h.UserID).Msg("Error creating hire record")
		return fmt.Errorf("error creating hire record: %w", err)
	}
	return nil
}

// CountByDashboard counts hires attached to a dashboard
func (r *HireRepository) CountByDashboard(ctx context.Context, dashboardID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("students_hired").
		Where(squirrel.Eq{"dashboard_id": dashboardID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count hires query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting hires: %w", err)
	}
	return n, nil
}

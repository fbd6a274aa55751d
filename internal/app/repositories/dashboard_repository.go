package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

var dashboardColumns = []string{
	"id", "batches_completed_count", "students_hired", "no_of_students", "no_of_mentors",
}

// DashboardRepository persists the admin dashboard
type DashboardRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(q db.DBTX) *DashboardRepository {
	return &DashboardRepository{db: q, sb: newBuilder()}
}

// GetOrCreate returns the first dashboard row, inserting a zeroed one if the table is empty
func (r *DashboardRepository) GetOrCreate(ctx context.Context) (*models.AdminDashboard, error) {
	sql, args, err := r.sb.Select(dashboardColumns...).From("admin_dashboard").OrderBy("id").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get dashboard query: %w", err)
	}

	var d models.AdminDashboard
	err = pgxscan.Get(ctx, r.db, &d, sql, args...)
	if err == nil {
		return &d, nil
	}
	if !pgxscan.NotFound(err) {
		return nil, fmt.Errorf("error retrieving dashboard: %w", err)
	}

	sql, args, err = r.sb.Insert("admin_dashboard").
		Columns("batches_completed_count", "students_hired", "no_of_students", "no_of_mentors").
		Values(0, 0, 0, 0).
		Suffix("RETURNING id, batches_completed_count, students_hired, no_of_students, no_of_mentors").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create dashboard query: %w", err)
	}
	if err := pgxscan.Get(ctx, r.db, &d, sql, args...); err != nil {
		return nil, fmt.Errorf("error creating dashboard: %w", err)
	}
	return &d, nil
}

// GetByID retrieves a dashboard by ID
func (r *DashboardRepository) GetByID(ctx context.Context, id int64) (*models.AdminDashboard, error) {
	sql, args, err := r.sb.Select(dashboardColumns...).From("admin_dashboard").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get dashboard query: %w", err)
	}

	var d models.AdminDashboard
	if err := pgxscan.Get(ctx, r.db, &d, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperrors.NewResourceNotFoundError("dashboard not found")
		}
		return nil, fmt.Errorf("error retrieving dashboard: %w", err)
	}
	return &d, nil
}

// UpdateCounts overwrites all four counters
func (r *DashboardRepository) UpdateCounts(ctx context.Context, d *models.AdminDashboard) error {
	sql, args, err := r.sb.Update("admin_dashboard").
		SetMap(map[string]interface{}{
			"batches_completed_count": d.BatchesCompletedCount,
			"students_hired":          d.StudentsHired,
			"no_of_students":          d.NoOfStudents,
			"no_of_mentors":           d.NoOfMentors,
		}).
		Where(squirrel.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update dashboard query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating dashboard: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("dashboard not found")
	}
	return nil
}

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/pkg/metrics"
)

// DashboardMaintainer keeps the admin dashboard counters in line with the underlying rows
type DashboardMaintainer struct {
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewDashboardMaintainer creates a new DashboardMaintainer
func NewDashboardMaintainer(m *metrics.Metrics, logger zerolog.Logger) *DashboardMaintainer {
	return &DashboardMaintainer{metrics: m, logger: logger}
}

// Recompute rescans hires, completed batches, students and mentors and overwrites the four
// counters of dashboard id. Pass the transaction-bound store so the counts include the
// caller's pending writes.
func (d *DashboardMaintainer) Recompute(ctx context.Context, store repositories.Store, id int64) (*models.AdminDashboard, error) {
	dashboard, err := store.Dashboards().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hired, err := store.Hires().CountByDashboard(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting hires: %w", err)
	}

	completed, err := store.Batches().CountByStatus(ctx, models.BatchStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("error counting completed batches: %w", err)
	}

	students, err := store.Users().CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	mentors, err := store.Users().CountByRole(ctx, models.RoleMentor)
	if err != nil {
		return nil, fmt.Errorf("error counting mentors: %w", err)
	}

	dashboard.StudentsHired = hired
	dashboard.BatchesCompletedCount = completed
	dashboard.NoOfStudents = students
	dashboard.NoOfMentors = mentors

	if err := store.Dashboards().UpdateCounts(ctx, dashboard); err != nil {
		return nil, fmt.Errorf("error updating dashboard counts: %w", err)
	}

	d.metrics.DashboardRecomputed()
	d.logger.Debug().
		Int64("dashboardID", id).
		Int64("studentsHired", hired).
		Int64("batchesCompleted", completed).
		Int64("students", students).
		Int64("mentors", mentors).
		Msg("Dashboard recomputed")

	return dashboard, nil
}

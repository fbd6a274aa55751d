package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/dberrors"
)

var batchColumns = []string{
	"id", "batch_name", "no_of_students", "start_date", "completion_date", "status", "mentor_id",
}

// BatchRepository persists batches
type BatchRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewBatchRepository creates a new BatchRepository
func NewBatchRepository(q db.DBTX) *BatchRepository {
	return &BatchRepository{db: q, sb: newBuilder()}
}

// Create inserts a batch
func (r *BatchRepository) Create(ctx context.Context, b *models.Batch) error {
	sql, args, err := r.sb.Insert("batches").
		Columns(batchColumns[1:]...).
		Values(b.BatchName, b.NoOfStudents, b.StartDate, b.CompletionDate, b.Status, b.MentorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create batch query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&b.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("mentor does not exist")
		}
		return fmt.Errorf("error creating batch: %w", err)
	}
	return nil
}

// GetByID retrieves a batch by ID
func (r *BatchRepository) GetByID(ctx context.Context, id int64) (*models.Batch, error) {
	sql, args, err := r.sb.Select(batchColumns...).From("batches").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get batch query: %w", err)
	}

	var b models.Batch
	if err := pgxscan.Get(ctx, r.db, &b, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperrors.NewResourceNotFoundError("batch not found")
		}
		return nil, fmt.Errorf("error retrieving batch: %w", err)
	}
	return &b, nil
}

// UpdateStatus sets the batch status
func (r *BatchRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	sql, args, err := r.sb.Update("batches").Set("status", status).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update batch query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("batch not found")
	}
	return nil
}

// CountByStatus counts batches in the given status
func (r *BatchRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("batches").Where(squirrel.Eq{"status": status}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count batches query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting batches: %w", err)
	}
	return n, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/auth"
	"github.com/yigit/lms/internal/pkg/validation"
)

const defaultBatchStatus = "Scheduled"

// AdminService handles administrator operations
type AdminService struct {
	store     repositories.Store
	hasher    auth.PasswordHasher
	dashboard *DashboardMaintainer
	logger    zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(store repositories.Store, hasher auth.PasswordHasher, dashboard *DashboardMaintainer, logger zerolog.Logger) *AdminService {
	return &AdminService{
		store:     store,
		hasher:    hasher,
		dashboard: dashboard,
		logger:    logger,
	}
}

// CreateMentor creates an active mentor account without a profile
func (s *AdminService) CreateMentor(ctx context.Context, req *dto.CreateMentorRequest) (*dto.UserResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:          validation.NormalizeEmail(req.Email),
		FullName:       req.FullName,
		HashedPassword: hash,
		Role:           models.RoleMentor,
		IsActive:       true,
		PhoneNumber:    req.PhoneNumber,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("Mentor account created by admin")
	return dto.NewUserResponse(user), nil
}

// GetDashboard returns the dashboard, creating a zeroed one on first access
func (s *AdminService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	dashboard, err := s.store.Dashboards().GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewDashboardResponse(dashboard), nil
}

// CreateBatch stores a new batch
func (s *AdminService) CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid start date",
			map[string]interface{}{"startDate": "must be a date in the form YYYY-MM-DD"})
	}
	completion, err := dto.ParseDate(req.CompletionDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid completion date",
			map[string]interface{}{"completionDate": "must be a date in the form YYYY-MM-DD"})
	}
	if start != nil && completion != nil && completion.Before(*start) {
		return nil, apperrors.NewValidationError("Completion date precedes start date",
			map[string]interface{}{"completionDate": "must not be before startDate"})
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = defaultBatchStatus
	}

	batch := &models.Batch{
		BatchName:      req.BatchName,
		NoOfStudents:   req.NoOfStudents,
		StartDate:      start,
		CompletionDate: completion,
		Status:         status,
		MentorID:       req.MentorID,
	}
	if err := s.store.Batches().Create(ctx, batch); err != nil {
		return nil, err
	}

	return dto.NewBatchResponse(batch), nil
}

// UpdateBatchStatus changes the status of a batch. The dashboard is not recomputed.
func (s *AdminService) UpdateBatchStatus(ctx context.Context, id int64, status string) (*dto.BatchResponse, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, apperrors.NewValidationError("Status is required",
			map[string]interface{}{"status": "is required"})
	}

	if err := s.store.Batches().UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	batch, err := s.store.Batches().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewBatchResponse(batch), nil
}

// RecordHire inserts a hire and, when it references a dashboard, recomputes that dashboard in
// the same transaction. A failed recompute rolls the insert back.
func (s *AdminService) RecordHire(ctx context.Context, req *dto.CreateHireRequest) (*dto.HireResponse, error) {
	hiredDate, err := dto.ParseDate(&req.HiredDate)
	if err != nil || hiredDate == nil {
		return nil, apperrors.NewValidationError("Invalid hired date",
			map[string]interface{}{"hiredDate": "must be a date in the form YYYY-MM-DD"})
	}

	hire := &models.StudentsHired{
		UserID:       req.UserID,
		Fullname:     req.Fullname,
		Email:        validation.NormalizeEmail(req.Email),
		HiredCompany: req.HiredCompany,
		HiredDate:    *hiredDate,
		BatchID:      req.BatchID,
		DashboardID:  req.DashboardID,
	}

	var dashboard *models.AdminDashboard
	err = s.store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		if err := tx.Hires().Create(ctx, hire); err != nil {
			return err
		}
		if hire.DashboardID == nil {
			return nil
		}

		var err error
		dashboard, err = s.dashboard.Recompute(ctx, tx, *hire.DashboardID)
		return err
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", req.UserID).Msg("Failed to record hire")
		return nil, err
	}

	s.logger.Info().Int64("hireID", hire.ID).Int64("userID", hire.UserID).Msg("Hire recorded")
	return dto.NewHireResponse(hire, dashboard), nil
}

// SetUserActive enables or disables an account. Admins cannot disable themselves.
func (s *AdminService) SetUserActive(ctx context.Context, actorID, userID int64, active bool) (*dto.UserResponse, error) {
	if actorID == userID && !active {
		return nil, apperrors.NewForbiddenError("Admins cannot disable their own account")
	}

	if err := s.store.Users().SetActive(ctx, userID, active); err != nil {
		return nil, err
	}

	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Bool("active", active).Msg("User active flag changed")
	return dto.NewUserResponse(user), nil
}

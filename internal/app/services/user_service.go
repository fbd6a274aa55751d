package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/filestorage"
)

// UserService handles profile reads and account removal
type UserService struct {
	store  repositories.Store
	files  filestorage.FileStorage
	logger zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(store repositories.Store, files filestorage.FileStorage, logger zerolog.Logger) *UserService {
	return &UserService{store: store, files: files, logger: logger}
}

// GetMe returns the user with its student and mentor profiles
func (s *UserService) GetMe(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	u, err := s.store.Profiles().LoadUserWithProfiles(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewMeResponse(u), nil
}

// GetUser returns any user with its profiles
func (s *UserService) GetUser(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	return s.GetMe(ctx, userID)
}

// StudentDetails returns the current user's account
func (s *UserService) StudentDetails(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	u, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(u), nil
}

// ListStudents returns a page of student profiles
func (s *UserService) ListStudents(ctx context.Context, q dto.StudentListQuery) ([]*dto.StudentResponse, error) {
	profiles, err := s.store.Profiles().ListStudents(ctx, q.ToFilter())
	if err != nil {
		return nil, err
	}
	return dto.NewStudentListResponse(profiles), nil
}

// GetStudent returns a student profile by its id
func (s *UserService) GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	p, err := s.store.Profiles().GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponse(p), nil
}

// ListMentors returns a page of mentor profiles
func (s *UserService) ListMentors(ctx context.Context, q dto.MentorListQuery) ([]*dto.MentorResponse, error) {
	profiles, err := s.store.Profiles().ListMentors(ctx, q.ToFilter())
	if err != nil {
		return nil, err
	}
	return dto.NewMentorListResponse(profiles), nil
}

// GetMentor returns a mentor profile by its id
func (s *UserService) GetMentor(ctx context.Context, id int64) (*dto.MentorResponse, error) {
	p, err := s.store.Profiles().GetMentorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewMentorResponse(p), nil
}

// DeleteUser removes an account and everything it owns in one transaction, then removes its
// uploaded files. Admins cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, actorID, userID int64) error {
	if actorID == userID {
		return apperrors.NewForbiddenError("Admins cannot delete their own account")
	}

	var files []string
	err := s.store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		u, err := tx.Profiles().LoadUserWithProfiles(ctx, userID)
		if err != nil {
			return err
		}
		files = uploadedFiles(u.StudentProfile, u.MentorProfile)
		return tx.Users().Delete(ctx, userID)
	})
	if err != nil {
		return err
	}

	if s.files != nil {
		for _, f := range files {
			if err := s.files.DeleteFile(f); err != nil {
				s.logger.Warn().Err(err).Str("fileURL", f).Msg("Failed to remove file of deleted user")
			}
		}
	}

	s.logger.Info().Int64("userID", userID).Int64("actorID", actorID).Msg("User deleted")
	return nil
}

func uploadedFiles(student *models.StudentProfile, mentor *models.MentorProfile) []string {
	var out []string
	if student != nil {
		for _, u := range []*string{student.PhotoURL, student.ResumeURL} {
			if u != nil && *u != "" {
				out = append(out, *u)
			}
		}
	}
	if mentor != nil && mentor.ResumeURL != nil && *mentor.ResumeURL != "" {
		out = append(out, *mentor.ResumeURL)
	}
	return out
}

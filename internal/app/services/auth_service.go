package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/auth"
	"github.com/yigit/lms/internal/pkg/email"
	"github.com/yigit/lms/internal/pkg/filestorage"
	"github.com/yigit/lms/internal/pkg/metrics"
	"github.com/yigit/lms/internal/pkg/validation"
)

// Upload folders under the storage root
const (
	studentPhotoDir = "student/photos"
	studentDocDir   = "student/docs"
	mentorResumeDir = "mentor/resumes"
	tokenTypeBearer = "bearer"
	roleClaim       = "role"
	defaultResetTTL = 30 * time.Minute
)

// AuthSettings configures the password reset flow
type AuthSettings struct {
	ResetTokenTTL time.Duration
	// ResetURL is a format string with one %s for the token
	ResetURL string
}

// AuthService handles authentication operations
type AuthService struct {
	store    repositories.Store
	hasher   auth.PasswordHasher
	jwt      *auth.JWTService
	mailer   email.EmailService
	files    filestorage.FileStorage
	metrics  *metrics.Metrics
	settings AuthSettings
	now      Clock
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	store repositories.Store,
	hasher auth.PasswordHasher,
	jwt *auth.JWTService,
	mailer email.EmailService,
	files filestorage.FileStorage,
	m *metrics.Metrics,
	settings AuthSettings,
	now Clock,
	logger zerolog.Logger,
) *AuthService {
	if settings.ResetTokenTTL <= 0 {
		settings.ResetTokenTTL = defaultResetTTL
	}
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		store:    store,
		hasher:   hasher,
		jwt:      jwt,
		mailer:   mailer,
		files:    files,
		metrics:  m,
		settings: settings,
		now:      now,
		logger:   logger,
	}
}

// RegisterStudent creates a student account and profile. Uploaded files are removed again if
// the account cannot be stored.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest, photo, document *multipart.FileHeader) (*dto.UserResponse, error) {
	emailAddr := validation.NormalizeEmail(req.Email)
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewValidationError("Passwords do not match",
			map[string]interface{}{"confirm_password": "must match password"})
	}

	dob, err := dto.ParseDate(&req.DOB)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date of birth",
			map[string]interface{}{"dob": "must be a date in the form YYYY-MM-DD"})
	}

	if err := s.ensureEmailAvailable(ctx, emailAddr); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var saved []string
	photoURL, err := s.saveUpload(photo, studentPhotoDir, &saved)
	if err != nil {
		return nil, err
	}
	docURL, err := s.saveUpload(document, studentDocDir, &saved)
	if err != nil {
		s.discardUploads(saved)
		return nil, err
	}

	gender := strings.ToLower(strings.TrimSpace(req.Gender))
	fullName := strings.TrimSpace(req.FirstName + " " + req.LastName)
	phone := req.PhoneNumber
	user := &models.User{
		Email:          emailAddr,
		FullName:       &fullName,
		HashedPassword: hash,
		Role:           models.RoleStudent,
		IsActive:       true,
		PhoneNumber:    &phone,
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		return tx.Profiles().CreateStudentProfile(ctx, &models.StudentProfile{
			UserID:         user.ID,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			PhoneNumber:    &phone,
			WhatsappNumber: req.WhatsappNumber,
			DateOfBirth:    dob,
			Gender:         &gender,
			Address:        req.Address,
			PhotoURL:       photoURL,
			ResumeURL:      docURL,
			CourseInterest: req.CourseInterest,
			IsReferred:     req.IsReferred,
			ReferralCode:   req.ReferralCode,
		})
	})
	if err != nil {
		s.discardUploads(saved)
		s.logger.Error().Err(err).Str("email", emailAddr).Msg("Failed to register student")
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", emailAddr).Msg("Student registered")
	return dto.NewUserResponse(user), nil
}

// RegisterMentor creates a mentor account, its profile and its technology links
func (s *AuthService) RegisterMentor(ctx context.Context, req *dto.RegisterMentorRequest, resume *multipart.FileHeader) (*dto.UserResponse, error) {
	emailAddr := validation.NormalizeEmail(req.Email)
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewValidationError("Passwords do not match",
			map[string]interface{}{"confirm_password": "must match password"})
	}

	dob, err := dto.ParseDate(req.DOB)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date of birth",
			map[string]interface{}{"dob": "must be a date in the form YYYY-MM-DD"})
	}

	if err := s.ensureEmailAvailable(ctx, emailAddr); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var saved []string
	resumeURL, err := s.saveUpload(resume, mentorResumeDir, &saved)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	user := &models.User{
		Email:          emailAddr,
		FullName:       &name,
		HashedPassword: hash,
		Role:           models.RoleMentor,
		IsActive:       true,
		PhoneNumber:    req.PhoneNumber,
	}
	profile := &models.MentorProfile{
		Name:                     name,
		PhoneNumber:              req.PhoneNumber,
		DateOfBirth:              dob,
		Gender:                   lowerPtr(req.Gender),
		Address:                  req.Address,
		ExperienceSummary:        req.ExperienceSummary,
		TotalExperienceYears:     req.TotalExperienceYears,
		TotalExperienceMonths:    req.TotalExperienceMonths,
		ResumeURL:                resumeURL,
		LinkedinURL:              req.LinkedinURL,
		PortfolioURL:             req.PortfolioURL,
		PreferredMode:            lowerPtr(req.PreferredMode),
		AvailabilityHoursPerWeek: req.AvailabilityHoursPerWeek,
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		if err := tx.Profiles().CreateMentorProfile(ctx, profile); err != nil {
			return err
		}

		techs, err := tx.Profiles().GetOrCreateTechnologies(ctx, req.Technologies)
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(techs))
		for _, t := range techs {
			ids = append(ids, t.ID)
		}
		return tx.Profiles().LinkTechnologies(ctx, profile.ID, ids)
	})
	if err != nil {
		s.discardUploads(saved)
		s.logger.Error().Err(err).Str("email", emailAddr).Msg("Failed to register mentor")
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", emailAddr).Msg("Mentor registered")
	return dto.NewUserResponse(user), nil
}

// Login verifies credentials and issues a token pair carrying the user's role
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (resp *dto.TokenResponse, err error) {
	defer func() { s.metrics.AuthEvent(metrics.EventLogin, err) }()

	emailAddr := validation.NormalizeEmail(req.Email)
	user, err := s.store.Users().GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.HashedPassword) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a new pair. The old refresh token stays
// valid until it expires.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (resp *dto.TokenResponse, err error) {
	defer func() { s.metrics.AuthEvent(metrics.EventRefresh, err) }()

	claims, err := s.jwt.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", apperrors.ErrTokenInvalid)
	}

	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error getting user by id: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokens(user)
}

// RequestPasswordReset stores a fresh reset token for a known email and sends the link.
// Unknown emails are not an error; generated reports whether a token was created.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailAddr string) (token string, generated bool, err error) {
	defer func() { s.metrics.AuthEvent(metrics.EventResetRequest, err) }()

	emailAddr = validation.NormalizeEmail(emailAddr)
	user, err := s.store.Users().GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Debug().Str("email", emailAddr).Msg("Password reset requested for unknown email")
			return "", false, nil
		}
		return "", false, fmt.Errorf("error getting user by email: %w", err)
	}

	token, err = auth.GenerateResetToken()
	if err != nil {
		return "", false, err
	}

	record := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: s.now().Add(s.settings.ResetTokenTTL),
	}
	if err := s.store.ResetTokens().Create(ctx, record); err != nil {
		return "", false, fmt.Errorf("error storing reset token: %w", err)
	}

	if s.mailer != nil {
		link := fmt.Sprintf(s.settings.ResetURL, token)
		if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, deref(user.FullName), link, s.settings.ResetTokenTTL); err != nil {
			s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to deliver password reset email")
		}
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Password reset token generated")
	return token, true, nil
}

// ResetPassword consumes a reset token and sets the new password in one transaction.
// Unknown, used and expired tokens all fail with apperrors.ErrInvalidResetToken.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (err error) {
	defer func() { s.metrics.AuthEvent(metrics.EventResetConsume, err) }()

	if strings.TrimSpace(token) == "" {
		return apperrors.ErrInvalidResetToken
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return apperrors.NewValidationError("Invalid password",
			map[string]interface{}{"new_password": err.Error()})
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		claimed, err := tx.ResetTokens().Claim(ctx, token, s.now())
		if err != nil {
			return err
		}

		if err := tx.Users().UpdatePasswordHash(ctx, claimed.UserID, hash); err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return apperrors.ErrInvalidResetToken
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidResetToken) {
			s.logger.Error().Err(err).Msg("Failed to reset password")
		}
		return err
	}

	s.logger.Info().Msg("Password reset completed")
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	pair, err := s.jwt.IssuePair(strconv.FormatInt(user.ID, 10), map[string]interface{}{
		roleClaim: string(user.Role),
	})
	if err != nil {
		return nil, fmt.Errorf("error issuing tokens: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		TokenType:             tokenTypeBearer,
		ExpiresIn:             int64(s.jwt.AccessTokenTTL().Seconds()),
		AccessTokenExpiresAt:  pair.AccessExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshExpiresAt,
	}, nil
}

func (s *AuthService) ensureEmailAvailable(ctx context.Context, emailAddr string) error {
	_, err := s.store.Users().GetByEmail(ctx, emailAddr)
	switch {
	case err == nil:
		return apperrors.ErrEmailAlreadyExists
	case errors.Is(err, apperrors.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("error checking if email exists: %w", err)
	}
}

func (s *AuthService) saveUpload(fh *multipart.FileHeader, dir string, saved *[]string) (*string, error) {
	if fh == nil || s.files == nil {
		return nil, nil
	}
	url, err := s.files.SaveFileWithPath(fh, dir)
	if err != nil {
		return nil, fmt.Errorf("error saving upload: %w", err)
	}
	*saved = append(*saved, url)
	return &url, nil
}

func (s *AuthService) discardUploads(urls []string) {
	for _, u := range urls {
		if err := s.files.DeleteFile(u); err != nil {
			s.logger.Warn().Err(err).Str("fileURL", u).Msg("Failed to remove orphaned upload")
		}
	}
}

func lowerPtr(v *string) *string {
	if v == nil {
		return nil
	}
	l := strings.ToLower(strings.TrimSpace(*v))
	return &l
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

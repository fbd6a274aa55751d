package repositories

import (
	"context"
	"time"

	"github.com/yigit/lms/internal/app/models"
)

// UserStore is the credential store
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	SetActive(ctx context.Context, id int64, active bool) error
	CountByRole(ctx context.Context, role models.RoleType) (int64, error)
	// Delete removes the user and everything it owns. Run it inside WithTx.
	Delete(ctx context.Context, id int64) error
}

// ProfileStore manages student and mentor profiles and the technology catalogue
type ProfileStore interface {
	CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error
	CreateMentorProfile(ctx context.Context, profile *models.MentorProfile) error
	GetOrCreateTechnologies(ctx context.Context, names []string) ([]models.Technology, error)
	LinkTechnologies(ctx context.Context, mentorProfileID int64, technologyIDs []int64) error
	GetStudentByID(ctx context.Context, id int64) (*models.StudentProfile, error)
	GetMentorByID(ctx context.Context, id int64) (*models.MentorProfile, error)
	ListStudents(ctx context.Context, filter models.StudentFilter) ([]*models.StudentProfile, error)
	ListMentors(ctx context.Context, filter models.MentorFilter) ([]*models.MentorProfile, error)
	LoadUserWithProfiles(ctx context.Context, userID int64) (*models.UserWithProfiles, error)
}

// ResetTokenStore persists password reset tokens
type ResetTokenStore interface {
	Create(ctx context.Context, token *models.PasswordResetToken) error
	// Claim marks the token used if it is unused and unexpired at now, in one conditional
	// update. Any other state yields apperrors.ErrInvalidResetToken.
	Claim(ctx context.Context, token string, now time.Time) (*models.PasswordResetToken, error)
}

// DashboardStore persists the admin dashboard counters
type DashboardStore interface {
	GetOrCreate(ctx context.Context) (*models.AdminDashboard, error)
	GetByID(ctx context.Context, id int64) (*models.AdminDashboard, error)
	UpdateCounts(ctx context.Context, dashboard *models.AdminDashboard) error
}

// BatchStore persists batches
type BatchStore interface {
	Create(ctx context.Context, batch *models.Batch) error
	GetByID(ctx context.Context, id int64) (*models.Batch, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// HireStore persists hire records
type HireStore interface {
	Create(ctx context.Context, hire *models.StudentsHired) error
	CountByDashboard(ctx context.Context, dashboardID int64) (int64, error)
}

// TxFn runs against a Store bound to an open transaction
type TxFn func(ctx context.Context, tx Store) error

// Store groups the repositories and scopes them to transactions
type Store interface {
	Users() UserStore
	Profiles() ProfileStore
	ResetTokens() ResetTokenStore
	Dashboards() DashboardStore
	Batches() BatchStore
	Hires() HireStore
	// WithTx commits when fn returns nil and rolls back otherwise. Nested calls join the
	// outer transaction.
	WithTx(ctx context.Context, fn TxFn) error
}

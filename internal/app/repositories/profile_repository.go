package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/dberrors"
	"github.com/yigit/lms/internal/pkg/logger"
)

var studentColumns = []string{
	"id", "user_id", "first_name", "last_name", "phone_number", "whatsapp_number", "date_of_birth",
	"gender", "address", "photo_url", "resume_url", "course_interest", "is_referred", "referral_code",
}

var mentorColumns = []string{
	"id", "user_id", "name", "phone_number", "date_of_birth", "gender", "address", "experience_summary",
	"total_experience_years", "total_experience_months", "resume_url", "linkedin_url", "portfolio_url",
	"preferred_mode", "availability_hours_per_week",
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// ProfileRepository handles student and mentor profiles and technologies
type ProfileRepository struct {
	db    db.DBTX
	sb    squirrel.StatementBuilderType
	users *UserRepository
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(q db.DBTX, users *UserRepository) *ProfileRepository {
	return &ProfileRepository{db: q, sb: newBuilder(), users: users}
}

// CreateStudentProfile inserts a student profile
func (r *ProfileRepository) CreateStudentProfile(ctx context.Context, p *models.StudentProfile) error {
	sql, args, err := r.sb.Insert("student_profiles").
		Columns(studentColumns[1:]...).
		Values(p.UserID, p.FirstName, p.LastName, p.PhoneNumber, p.WhatsappNumber, p.DateOfBirth,
			p.Gender, p.Address, p.PhotoURL, p.ResumeURL, p.CourseInterest, p.IsReferred, p.ReferralCode).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student profile query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "student_profiles_user_id_key") {
			return apperrors.NewConflictError("student profile already exists")
		}
		logger.Error().Err(err).Int64("userID", p.UserID).Msg("Error creating student profile")
		return fmt.Errorf("error creating student profile: %w", err)
	}
	return nil
}

// CreateMentorProfile inserts a mentor profile
func (r *ProfileRepository) CreateMentorProfile(ctx context.Context, p *models.MentorProfile) error {
	sql, args, err := r.sb.Insert("mentor_profiles").
		Columns(mentorColumns[1:]...).
		Values(p.UserID, p.Name, p.PhoneNumber, p.DateOfBirth, p.Gender, p.Address, p.ExperienceSummary,
			p.TotalExperienceYears, p.TotalExperienceMonths, p.ResumeURL, p.LinkedinURL, p.PortfolioURL,
			p.PreferredMode, p.AvailabilityHoursPerWeek).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create mentor profile query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mentor_profiles_user_id_key") {
			return apperrors.NewConflictError("mentor profile already exists")
		}
		logger.Error().Err(err).Int64("userID", p.UserID).Msg("Error creating mentor profile")
		return fmt.Errorf("error creating mentor profile: %w", err)
	}
	return nil
}

// GetOrCreateTechnologies resolves names case-insensitively, creating the missing ones.
// Blank and repeated names are skipped.
func (r *ProfileRepository) GetOrCreateTechnologies(ctx context.Context, names []string) ([]models.Technology, error) {
	seen := make(map[string]struct{}, len(names))
	out := make([]models.Technology, 0, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		tech, err := r.findTechnology(ctx, name)
		if err == nil {
			out = append(out, *tech)
			continue
		}
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}

		sql, args, err := r.sb.Insert("technologies").Columns("name").Values(name).
			Suffix("ON CONFLICT DO NOTHING").ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build create technology query: %w", err)
		}
		if _, err := r.db.Exec(ctx, sql, args...); err != nil {
			return nil, fmt.Errorf("error creating technology: %w", err)
		}

		tech, err = r.findTechnology(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, *tech)
	}
	return out, nil
}

func (r *ProfileRepository) findTechnology(ctx context.Context, name string) (*models.Technology, error) {
	sql, args, err := r.sb.Select("id", "name").From("technologies").
		Where(squirrel.Expr("LOWER(name) = LOWER(?)", name)).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find technology query: %w", err)
	}

	var tech models.Technology
	if err := pgxscan.Get(ctx, r.db, &tech, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error finding technology: %w", err)
	}
	return &tech, nil
}

// LinkTechnologies attaches technologies to a mentor profile
func (r *ProfileRepository) LinkTechnologies(ctx context.Context, mentorProfileID int64, technologyIDs []int64) error {
	if len(technologyIDs) == 0 {
		return nil
	}

	q := r.sb.Insert("mentor_technologies").Columns("mentor_id", "technology_id")
	for _, id := range technologyIDs {
		q = q.Values(mentorProfileID, id)
	}
	sql, args, err := q.Suffix("ON CONFLICT (mentor_id, technology_id) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build link technologies query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error linking technologies: %w", err)
	}
	return nil
}

// GetStudentByID retrieves a student profile with its user
func (r *ProfileRepository) GetStudentByID(ctx context.Context, id int64) (*models.StudentProfile, error) {
	p, err := r.getStudent(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewResourceNotFoundError("student not found")
	}
	if err := r.attachStudentUsers(ctx, []*models.StudentProfile{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// GetMentorByID retrieves a mentor profile with its user and technologies
func (r *ProfileRepository) GetMentorByID(ctx context.Context, id int64) (*models.MentorProfile, error) {
	p, err := r.getMentor(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewResourceNotFoundError("mentor not found")
	}
	if err := r.attachMentorDetails(ctx, []*models.MentorProfile{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// getStudent returns nil, nil when no profile matches
func (r *ProfileRepository) getStudent(ctx context.Context, where squirrel.Sqlizer) (*models.StudentProfile, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("student_profiles").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var p models.StudentProfile
	if err := pgxscan.Get(ctx, r.db, &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return &p, nil
}

// getMentor returns nil, nil when no profile matches
func (r *ProfileRepository) getMentor(ctx context.Context, where squirrel.Sqlizer) (*models.MentorProfile, error) {
	sql, args, err := r.sb.Select(mentorColumns...).From("mentor_profiles").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get mentor query: %w", err)
	}

	var p models.MentorProfile
	if err := pgxscan.Get(ctx, r.db, &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving mentor profile: %w", err)
	}
	return &p, nil
}

// ListStudents pages through students, optionally matching search against name, email or phone
func (r *ProfileRepository) ListStudents(ctx context.Context, filter models.StudentFilter) ([]*models.StudentProfile, error) {
	q := r.sb.Select(prefixed("sp", studentColumns)...).
		From("student_profiles sp").
		Join("users u ON u.id = sp.user_id")

	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"sp.first_name": like},
			squirrel.ILike{"sp.last_name": like},
			squirrel.ILike{"u.email": like},
			squirrel.ILike{"u.phone_number": like},
		})
	}

	sql, args, err := q.OrderBy("sp.id").Offset(uint64(filter.Skip)).Limit(uint64(filter.Limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	var profiles []*models.StudentProfile
	if err := pgxscan.Select(ctx, r.db, &profiles, sql, args...); err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	if err := r.attachStudentUsers(ctx, profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// ListMentors pages through mentors filtered by technology, minimum experience and search text
func (r *ProfileRepository) ListMentors(ctx context.Context, filter models.MentorFilter) ([]*models.MentorProfile, error) {
	q := r.sb.Select(prefixed("mp", mentorColumns)...).
		From("mentor_profiles mp").
		Join("users u ON u.id = mp.user_id")

	if tech := strings.TrimSpace(filter.Technology); tech != "" {
		q = q.Where(squirrel.Expr(`EXISTS (
			SELECT 1 FROM mentor_technologies mt
			JOIN technologies t ON t.id = mt.technology_id
			WHERE mt.mentor_id = mp.id AND LOWER(t.name) = LOWER(?))`, tech))
	}
	if filter.MinYears != nil {
		q = q.Where(squirrel.GtOrEq{"mp.total_experience_years": *filter.MinYears})
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"mp.name": like},
			squirrel.ILike{"u.email": like},
			squirrel.ILike{"mp.phone_number": like},
		})
	}

	sql, args, err := q.OrderBy("mp.id").Offset(uint64(filter.Skip)).Limit(uint64(filter.Limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list mentors query: %w", err)
	}

	var profiles []*models.MentorProfile
	if err := pgxscan.Select(ctx, r.db, &profiles, sql, args...); err != nil {
		return nil, fmt.Errorf("error listing mentors: %w", err)
	}
	if err := r.attachMentorDetails(ctx, profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// LoadUserWithProfiles loads a user and whichever profiles it owns
func (r *ProfileRepository) LoadUserWithProfiles(ctx context.Context, userID int64) (*models.UserWithProfiles, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &models.UserWithProfiles{User: user}

	if out.StudentProfile, err = r.getStudent(ctx, squirrel.Eq{"user_id": userID}); err != nil {
		return nil, err
	}
	if out.StudentProfile != nil {
		out.StudentProfile.User = user
	}

	if out.MentorProfile, err = r.getMentor(ctx, squirrel.Eq{"user_id": userID}); err != nil {
		return nil, err
	}
	if out.MentorProfile != nil {
		if err := r.attachMentorDetails(ctx, []*models.MentorProfile{out.MentorProfile}); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *ProfileRepository) attachStudentUsers(ctx context.Context, profiles []*models.StudentProfile) error {
	ids := make([]int64, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	users, err := r.users.getMany(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		p.User = users[p.UserID]
	}
	return nil
}

func (r *ProfileRepository) attachMentorDetails(ctx context.Context, profiles []*models.MentorProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	userIDs := make([]int64, 0, len(profiles))
	mentorIDs := make([]int64, 0, len(profiles))
	for _, p := range profiles {
		userIDs = append(userIDs, p.UserID)
		mentorIDs = append(mentorIDs, p.ID)
	}

	users, err := r.users.getMany(ctx, userIDs)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Select("mt.mentor_id", "t.name").
		From("mentor_technologies mt").
		Join("technologies t ON t.id = mt.technology_id").
		Where(squirrel.Eq{"mt.mentor_id": mentorIDs}).
		OrderBy("t.name").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mentor technologies query: %w", err)
	}

	var rows []struct {
		MentorID int64  `db:"mentor_id"`
		Name     string `db:"name"`
	}
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return fmt.Errorf("error loading mentor technologies: %w", err)
	}

	techs := make(map[int64][]string, len(profiles))
	for _, row := range rows {
		techs[row.MentorID] = append(techs[row.MentorID], row.Name)
	}
	for _, p := range profiles {
		p.User = users[p.UserID]
		p.Technologies = techs[p.ID]
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
	}
	return nil
}

package dto

import (
	"github.com/yigit/lms/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"is_active"`
}

// StudentResponse is a student profile together with its user
type StudentResponse struct {
	ID             int64         `json:"id"`
	User           *UserResponse `json:"user,omitempty"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	PhoneNumber    *string       `json:"phoneNumber"`
	WhatsappNumber *string       `json:"whatsappNumber"`
	DOB            *string       `json:"dob"`
	Gender         *string       `json:"gender"`
	Address        *string       `json:"address"`
	CourseInterest *string       `json:"courseInterest"`
	IsReferred     bool          `json:"isReferred"`
	ReferralCode   *string       `json:"referralCode"`
	PhotoURL       *string       `json:"photoUrl"`
	ResumeURL      *string       `json:"resumeUrl"`
}

// MentorResponse is a mentor profile together with its user and technologies
type MentorResponse struct {
	ID                       int64         `json:"id"`
	User                     *UserResponse `json:"user,omitempty"`
	Name                     string        `json:"name"`
	PhoneNumber              *string       `json:"phoneNumber"`
	DOB                      *string       `json:"dob"`
	Gender                   *string       `json:"gender"`
	Address                  *string       `json:"address"`
	TotalExperienceYears     *int          `json:"totalExperienceYears"`
	TotalExperienceMonths    *int          `json:"totalExperienceMonths"`
	ExperienceSummary        *string       `json:"experienceSummary"`
	PreferredMode            *string       `json:"preferredMode"`
	AvailabilityHoursPerWeek *int          `json:"availabilityHoursPerWeek"`
	Technologies             []string      `json:"technologies"`
	ResumeURL                *string       `json:"resumeUrl"`
	LinkedinURL              *string       `json:"linkedinUrl"`
	PortfolioURL             *string       `json:"portfolioUrl"`
}

// MeResponse combines a user with whichever profiles it has
type MeResponse struct {
	User           *UserResponse    `json:"user"`
	StudentProfile *StudentResponse `json:"studentProfile"`
	MentorProfile  *MentorResponse  `json:"mentorProfile"`
}

// StudentListQuery holds the student listing parameters
type StudentListQuery struct {
	Skip   int    `form:"skip,default=0" binding:"min=0"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Search string `form:"search" binding:"max=200"`
}

// MentorListQuery holds the mentor listing parameters
type MentorListQuery struct {
	Skip       int    `form:"skip,default=0" binding:"min=0"`
	Limit      int    `form:"limit,default=20" binding:"min=1,max=100"`
	Technology string `form:"technology" binding:"max=100"`
	MinYears   *int   `form:"min_years" binding:"omitempty,min=0"`
	Search     string `form:"search" binding:"max=200"`
}

// ToFilter converts the query into a repository filter
func (q StudentListQuery) ToFilter() models.StudentFilter {
	return models.StudentFilter{Skip: q.Skip, Limit: q.Limit, Search: q.Search}
}

// ToFilter converts the query into a repository filter
func (q MentorListQuery) ToFilter() models.MentorFilter {
	return models.MentorFilter{
		Skip:       q.Skip,
		Limit:      q.Limit,
		Technology: q.Technology,
		MinYears:   q.MinYears,
		Search:     q.Search,
	}
}

// NewUserResponse converts a user model
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
	}
}

// NewStudentResponse converts a student profile
func NewStudentResponse(p *models.StudentProfile) *StudentResponse {
	if p == nil {
		return nil
	}
	return &StudentResponse{
		ID:             p.ID,
		User:           NewUserResponse(p.User),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		PhoneNumber:    p.PhoneNumber,
		WhatsappNumber: p.WhatsappNumber,
		DOB:            formatDate(p.DateOfBirth),
		Gender:         p.Gender,
		Address:        p.Address,
		CourseInterest: p.CourseInterest,
		IsReferred:     p.IsReferred,
		ReferralCode:   p.ReferralCode,
		PhotoURL:       p.PhotoURL,
		ResumeURL:      p.ResumeURL,
	}
}

// NewMentorResponse converts a mentor profile
func NewMentorResponse(p *models.MentorProfile) *MentorResponse {
	if p == nil {
		return nil
	}
	techs := p.Technologies
	if techs == nil {
		techs = []string{}
	}
	return &MentorResponse{
		ID:                       p.ID,
		User:                     NewUserResponse(p.User),
		Name:                     p.Name,
		PhoneNumber:              p.PhoneNumber,
		DOB:                      formatDate(p.DateOfBirth),
		Gender:                   p.Gender,
		Address:                  p.Address,
		TotalExperienceYears:     p.TotalExperienceYears,
		TotalExperienceMonths:    p.TotalExperienceMonths,
		ExperienceSummary:        p.ExperienceSummary,
		PreferredMode:            p.PreferredMode,
		AvailabilityHoursPerWeek: p.AvailabilityHoursPerWeek,
		Technologies:             techs,
		ResumeURL:                p.ResumeURL,
		LinkedinURL:              p.LinkedinURL,
		PortfolioURL:             p.PortfolioURL,
	}
}

// NewMeResponse converts a user loaded with its profiles
func NewMeResponse(u *models.UserWithProfiles) *MeResponse {
	if u == nil {
		return nil
	}
	return &MeResponse{
		User:           NewUserResponse(u.User),
		StudentProfile: NewStudentResponse(u.StudentProfile),
		MentorProfile:  NewMentorResponse(u.MentorProfile),
	}
}

// NewStudentListResponse converts a page of student profiles
func NewStudentListResponse(profiles []*models.StudentProfile) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewStudentResponse(p))
	}
	return out
}

// NewMentorListResponse converts a page of mentor profiles
func NewMentorListResponse(profiles []*models.MentorProfile) []*MentorResponse {
	out := make([]*MentorResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewMentorResponse(p))
	}
	return out
}

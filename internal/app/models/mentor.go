package models

import "time"

// MentorProfile defines the mentor model based on the 'mentor_profiles' table
type MentorProfile struct {
	ID                       int64      `db:"id"`
	UserID                   int64      `db:"user_id"`
	Name                     string     `db:"name"`
	PhoneNumber              *string    `db:"phone_number"`
	DateOfBirth              *time.Time `db:"date_of_birth"`
	Gender                   *string    `db:"gender"`
	Address                  *string    `db:"address"`
	ExperienceSummary        *string    `db:"experience_summary"`
	TotalExperienceYears     *int       `db:"total_experience_years"`
	TotalExperienceMonths    *int       `db:"total_experience_months"`
	ResumeURL                *string    `db:"resume_url"`
	LinkedinURL              *string    `db:"linkedin_url"`
	PortfolioURL             *string    `db:"portfolio_url"`
	PreferredMode            *string    `db:"preferred_mode"`
	AvailabilityHoursPerWeek *int       `db:"availability_hours_per_week"`
	User                     *User      `db:"-"`
	Technologies             []string   `db:"-"`
}

// Technology is a skill a mentor can teach
type Technology struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// MentorFilter narrows mentor listings
type MentorFilter struct {
	Skip       int
	Limit      int
	Technology string
	MinYears   *int
	Search     string
}

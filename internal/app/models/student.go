package models

import "time"

// StudentProfile defines the student model based on the 'student_profiles' table
type StudentProfile struct {
	ID             int64      `db:"id"`
	UserID         int64      `db:"user_id"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	PhoneNumber    *string    `db:"phone_number"`
	WhatsappNumber *string    `db:"whatsapp_number"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
	Gender         *string    `db:"gender"`
	Address        *string    `db:"address"`
	PhotoURL       *string    `db:"photo_url"`
	ResumeURL      *string    `db:"resume_url"`
	CourseInterest *string    `db:"course_interest"`
	IsReferred     bool       `db:"is_referred"`
	ReferralCode   *string    `db:"referral_code"`
	User           *User      `db:"-"`
}

// StudentFilter narrows student listings
type StudentFilter struct {
	Skip   int
	Limit  int
	Search string
}

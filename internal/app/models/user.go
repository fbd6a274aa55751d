package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             int64     `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	FullName       *string   `json:"fullName,omitempty" db:"full_name"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	Role           RoleType  `json:"role" db:"role"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	PhoneNumber    *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// UserWithProfiles is a user together with whichever role profiles exist for it
type UserWithProfiles struct {
	User           *User
	StudentProfile *StudentProfile
	MentorProfile  *MentorProfile
}

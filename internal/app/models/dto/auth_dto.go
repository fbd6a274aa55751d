package dto

import "time"

// RegisterStudentRequest is the JSON carried in the "data" part of a student registration
type RegisterStudentRequest struct {
	FirstName       string  `json:"firstName" binding:"required,max=100"`
	LastName        string  `json:"lastName" binding:"required,max=100"`
	Gender          string  `json:"gender" binding:"required,gender"`
	CourseInterest  *string `json:"courseInterest"`
	ReferralCode    *string `json:"referralCode"`
	Address         *string `json:"address"`
	DOB             string  `json:"dob" binding:"required,datetime=2006-01-02"`
	PhoneNumber     string  `json:"phoneNumber" binding:"required,max=32"`
	WhatsappNumber  *string `json:"whatsappNumber" binding:"omitempty,max=32"`
	Email           string  `json:"email" binding:"required,lmsemail"`
	Password        string  `json:"password" binding:"required,password"`
	ConfirmPassword string  `json:"confirm_password" binding:"required,eqfield=Password"`
	IsReferred      bool    `json:"isReferred"`
}

// RegisterMentorRequest is the JSON carried in the "data" part of a mentor registration
type RegisterMentorRequest struct {
	Email                    string   `json:"email" binding:"required,lmsemail"`
	Password                 string   `json:"password" binding:"required,password"`
	ConfirmPassword          string   `json:"confirm_password" binding:"required,eqfield=Password"`
	Name                     string   `json:"name" binding:"required,max=200"`
	PhoneNumber              *string  `json:"phoneNumber" binding:"omitempty,max=32"`
	DOB                      *string  `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Gender                   *string  `json:"gender" binding:"omitempty,gender"`
	Address                  *string  `json:"address"`
	TotalExperienceYears     *int     `json:"totalExperienceYears" binding:"omitempty,min=0,max=60"`
	TotalExperienceMonths    *int     `json:"totalExperienceMonths" binding:"omitempty,min=0,max=11"`
	ExperienceSummary        *string  `json:"experienceSummary"`
	PreferredMode            *string  `json:"preferredMode" binding:"omitempty,mode"`
	AvailabilityHoursPerWeek *int     `json:"availabilityHoursPerWeek" binding:"omitempty,min=0,max=80"`
	Technologies             []string `json:"technologies" binding:"omitempty,dive,max=100"`
	LinkedinURL              *string  `json:"linkedinUrl" binding:"omitempty,url"`
	PortfolioURL             *string  `json:"portfolioUrl" binding:"omitempty,url"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,lmsemail"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgotPasswordRequest starts a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,lmsemail"`
}

// ResetPasswordRequest consumes a password reset token
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,password"`
}

// TokenResponse is the token pair returned by login and refresh
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	TokenType             string    `json:"token_type"`
	ExpiresIn             int64     `json:"expires_in"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
}

// ForgotPasswordResponse carries the generic acknowledgement and, in development, the token
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

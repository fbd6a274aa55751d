// Package services holds the application use cases
package services

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/pkg/auth"
	"github.com/yigit/lms/internal/pkg/email"
	"github.com/yigit/lms/internal/pkg/filestorage"
	"github.com/yigit/lms/internal/pkg/metrics"
)

// Clock returns the current time
type Clock func() time.Time

// Services defined in this package:
// - AuthService: registration, login, token refresh and password reset
// - UserService: profiles, listings and account deletion
// - AdminService: mentor accounts, batches, hires and the dashboard
// - DashboardMaintainer: recomputes the dashboard counters
type Services struct {
	Auth      *AuthService
	User      *UserService
	Admin     *AdminService
	Dashboard *DashboardMaintainer
}

// Dependencies are the collaborators shared by the services
type Dependencies struct {
	Store    repositories.Store
	Hasher   auth.PasswordHasher
	JWT      *auth.JWTService
	Mailer   email.EmailService
	Files    filestorage.FileStorage
	Metrics  *metrics.Metrics
	Settings AuthSettings
	Clock    Clock
	Logger   zerolog.Logger
}

// NewServices wires every service from deps
func NewServices(deps Dependencies) *Services {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	dashboard := NewDashboardMaintainer(deps.Metrics, deps.Logger)

	return &Services{
		Auth: NewAuthService(deps.Store, deps.Hasher, deps.JWT, deps.Mailer, deps.Files,
			deps.Metrics, deps.Settings, deps.Clock, deps.Logger),
		User:      NewUserService(deps.Store, deps.Files, deps.Logger),
		Admin:     NewAdminService(deps.Store, deps.Hasher, dashboard, deps.Logger),
		Dashboard: dashboard,
	}
}

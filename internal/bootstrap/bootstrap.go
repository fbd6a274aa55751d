// Package bootstrap assembles the application from its configuration
package bootstrap

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appControllers "github.com/yigit/lms/internal/app/controllers"
	appMigrations "github.com/yigit/lms/internal/app/migrations"
	appRepos "github.com/yigit/lms/internal/app/repositories"
	appRoutes "github.com/yigit/lms/internal/app/routes"
	appServices "github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/config"
	"github.com/yigit/lms/internal/db"
	appMiddleware "github.com/yigit/lms/internal/middleware"
	pkgAuth "github.com/yigit/lms/internal/pkg/auth"
	"github.com/yigit/lms/internal/pkg/email"
	"github.com/yigit/lms/internal/pkg/filestorage"
	"github.com/yigit/lms/internal/pkg/logger"
	"github.com/yigit/lms/internal/pkg/metrics"
	"github.com/yigit/lms/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store          appRepos.Store
	DB             appRoutes.Pinger
	JWTService     *pkgAuth.JWTService
	Hasher         *pkgAuth.BcryptHasher
	FileStorage    *filestorage.LocalStorage
	Mailer         email.EmailService
	Metrics        *metrics.Metrics
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool
func ConnectDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// RunMigrations applies pending schema migrations
func RunMigrations(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	version, err := appMigrations.NewMigrator(database.Pool).Up(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int64("version", version).Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase connects, migrates and seeds the database.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, database, lgr); err != nil {
		database.Close()
		return nil, err
	}

	if _, err := seed.CreateDefaultData(ctx, appRepos.NewStore(database), NewHasher(cfg), cfg.Admin, lgr); err != nil {
		// Startup proceeds without the seed
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// NewHasher builds the password hasher from config
func NewHasher(cfg *config.Config) *pkgAuth.BcryptHasher {
	return pkgAuth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// NewJWTService builds the token service from config
func NewJWTService(cfg *config.Config, now func() time.Time) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		AccessSecret:    cfg.JWT.AccessSecret,
		RefreshSecret:   cfg.JWT.RefreshSecret,
		AccessTokenExp:  cfg.JWT.AccessTokenTTL(),
		RefreshTokenExp: cfg.JWT.RefreshTokenTTL(),
		TokenIssuer:     cfg.JWT.Issuer,
		Now:             now,
	})
}

// BuildDependencies initializes services, controllers and middleware on top of store.
// database may be nil, in which case /health does not check it.
func BuildDependencies(cfg *config.Config, store appRepos.Store, database appRoutes.Pinger, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Store:   store,
		DB:      database,
		Logger:  lgr,
		Metrics: metrics.New(),
		Hasher:  NewHasher(cfg),
	}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	if !cfg.SMTP.Enabled() {
		lgr.Warn().Msg("SMTP is not configured, password reset links will be logged")
	}
	deps.Mailer = email.NewEmailService(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, lgr)

	deps.JWTService = NewJWTService(cfg, nil)

	deps.Services = appServices.NewServices(appServices.Dependencies{
		Store:   store,
		Hasher:  deps.Hasher,
		JWT:     deps.JWTService,
		Mailer:  deps.Mailer,
		Files:   deps.FileStorage,
		Metrics: deps.Metrics,
		Settings: appServices.AuthSettings{
			ResetTokenTTL: cfg.Auth.ResetTokenTTL(),
			ResetURL:      cfg.Auth.ResetURL,
		},
		Logger: lgr,
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, store.Users())

	deps.Controllers = appRoutes.Controllers{
		Auth:  appControllers.NewAuthController(deps.Services.Auth, cfg.Server.ExposeResetToken, lgr),
		User:  appControllers.NewUserController(deps.Services.User),
		Admin: appControllers.NewAdminController(deps.Services.Admin, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(lgr),
		appMiddleware.RequestLogger(lgr),
		deps.Metrics.GinMiddleware(),
		cors.New(corsConfig(cfg.Server.CORSOrigins)),
	)
	router.MaxMultipartMemory = 8 << 20

	router.Static(filestorage.URLPrefix, deps.FileStorage.BasePath())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.Metrics, deps.DB)
	appRoutes.SetupSwagger(router)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Auth     AuthConfig     `yaml:"auth"`
	Admin    AdminConfig    `yaml:"admin"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        string   `yaml:"port" env:"SERVER_PORT"`
	Mode        string   `yaml:"mode" env:"GIN_MODE"`
	StoragePath string   `yaml:"storage_path" env:"STORAGE_PATH"`
	BaseURL     string   `yaml:"base_url" env:"BASE_URL"`
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
	// ExposeResetToken returns generated reset tokens in the forgot-password response.
	ExposeResetToken bool `yaml:"expose_reset_token" env:"EXPOSE_RESET_TOKEN"`
}

type DatabaseConfig struct {
	Host            string `yaml:"host" env:"DB_HOST"`
	Port            string `yaml:"port" env:"DB_PORT"`
	User            string `yaml:"user" env:"DB_USER"`
	Password        string `yaml:"password" env:"DB_PASSWORD"`
	DBName          string `yaml:"dbname" env:"DB_NAME"`
	SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
	MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	// URL overrides the individual connection fields when set.
	URL string `yaml:"url" env:"DATABASE_URL"`
}

type JWTConfig struct {
	AccessSecret       string `yaml:"access_secret" env:"JWT_SECRET"`
	RefreshSecret      string `yaml:"refresh_secret" env:"JWT_REFRESH_SECRET"`
	AccessTokenMinutes int    `yaml:"access_token_minutes" env:"ACCESS_MIN"`
	RefreshTokenDays   int    `yaml:"refresh_token_days" env:"REFRESH_DAYS"`
	Issuer             string `yaml:"issuer" env:"JWT_ISSUER"`
}

type AuthConfig struct {
	BcryptCost        int    `yaml:"bcrypt_cost" env:"BCRYPT_COST"`
	ResetTokenMinutes int    `yaml:"reset_token_minutes" env:"RESET_TOKEN_MINUTES"`
	ResetURL          string `yaml:"reset_url" env:"RESET_URL"`
}

type AdminConfig struct {
	Email    string `yaml:"email" env:"ADMIN_EMAIL"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	FullName string `yaml:"full_name" env:"ADMIN_FULL_NAME"`
}

type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// AccessTokenTTL returns the access token lifetime
func (c JWTConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenMinutes) * time.Minute
}

// RefreshTokenTTL returns the refresh token lifetime
func (c JWTConfig) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenDays) * 24 * time.Hour
}

// ResetTokenTTL returns how long a password reset token stays valid
func (c AuthConfig) ResetTokenTTL() time.Duration {
	return time.Duration(c.ResetTokenMinutes) * time.Minute
}

// Enabled reports whether SMTP credentials are present
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// IsProduction reports whether the server runs in release mode
func (c ServerConfig) IsProduction() bool {
	return c.Mode == "release" || c.Mode == "production"
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env file is not an error
	_ = godotenv.Load()

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "debug"
	config.Server.StoragePath = "./uploads"
	config.Server.BaseURL = "http://localhost:8080"
	config.Server.CORSOrigins = []string{"*"}

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "lms"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.AccessTokenMinutes = 240
	config.JWT.RefreshTokenDays = 7
	config.JWT.Issuer = "lms"

	config.Auth.BcryptCost = 12
	config.Auth.ResetTokenMinutes = 30
	config.Auth.ResetURL = "http://localhost:3000/reset-password?token=%s"

	config.Admin.FullName = "Administrator"

	config.SMTP.Port = 587
	config.SMTP.From = "no-reply@lms.local"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URL == "" && config.Database.Host == "" {
		return errors.New("database host is required")
	}

	if config.JWT.AccessSecret == "" || config.JWT.RefreshSecret == "" {
		return errors.New("both JWT access and refresh secrets are required")
	}

	if config.JWT.AccessSecret == config.JWT.RefreshSecret {
		return errors.New("JWT access and refresh secrets must differ")
	}

	if config.JWT.AccessTokenMinutes <= 0 {
		return fmt.Errorf("access token minutes must be positive, got %d", config.JWT.AccessTokenMinutes)
	}

	if config.JWT.RefreshTokenDays <= 0 {
		return fmt.Errorf("refresh token days must be positive, got %d", config.JWT.RefreshTokenDays)
	}

	if config.Auth.ResetTokenMinutes <= 0 {
		return fmt.Errorf("reset token minutes must be positive, got %d", config.Auth.ResetTokenMinutes)
	}

	if err := validateResetURL(config.Auth.ResetURL); err != nil {
		return err
	}

	if config.Auth.BcryptCost < bcrypt.MinCost || config.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime: %w", err)
	}

	if config.Admin.Email != "" {
		config.Admin.Email = strings.ToLower(strings.TrimSpace(config.Admin.Email))
	}

	return nil
}

// validateResetURL requires exactly one %s placeholder for the token; %% is the only other verb allowed.
func validateResetURL(url string) error {
	if strings.Count(url, "%s") != 1 {
		return fmt.Errorf("reset URL must contain exactly one %%s placeholder, got %q", url)
	}
	rest := strings.ReplaceAll(strings.Replace(url, "%s", "", 1), "%%", "")
	if strings.Contains(rest, "%") {
		return fmt.Errorf("reset URL may not contain format verbs other than %%s, got %q", url)
	}
	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

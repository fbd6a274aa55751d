package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/bootstrap"
	"github.com/yigit/lms/internal/pkg/logger"
	"github.com/yigit/lms/internal/seed"
	"github.com/yigit/lms/internal/server"
)

// @title LMS API
// @version 1.0
// @description Learning management backend: student and mentor registration, authentication, batches and placements.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access token as "Bearer <token>"
func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	serve := newServeCommand(&configPath)
	cmd := &cobra.Command{
		Use:           "lms",
		Short:         "LMS backend API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", filepath.Join("configs", "config.yaml"), "Path to the YAML config file")

	cmd.AddCommand(serve)
	cmd.AddCommand(newMigrateCommand(&configPath))
	cmd.AddCommand(newSeedCommand(&configPath))
	return cmd
}

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}

			srv, err := server.NewServer(ctx, cfg, lgr)
			if err != nil {
				return err
			}
			if err := srv.Run(ctx); err != nil {
				return err
			}
			lgr.Info().Msg("Application finished gracefully.")
			return nil
		},
	}
}

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}

			database, err := bootstrap.ConnectDatabase(ctx, cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			return bootstrap.RunMigrations(ctx, database, lgr)
		},
	}
}

func newSeedCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the configured admin account and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}

			database, err := bootstrap.ConnectDatabase(ctx, cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			result, err := seed.CreateDefaultData(ctx, repositories.NewStore(database), bootstrap.NewHasher(cfg), cfg.Admin, lgr)
			if err != nil {
				return err
			}
			lgr.Info().Bool("adminCreated", result.AdminCreated).Int64("dashboardID", result.DashboardID).Msg("Seed complete")
			return nil
		},
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

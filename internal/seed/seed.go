// Package seed creates the records a fresh installation needs: the bootstrap
// admin account and a starter set of departments.
package seed

import (
	"context"
	"fmt"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/repositories"
	"github.com/emrek/registra/internal/config"
	"github.com/emrek/registra/internal/pkg/auth"
	"github.com/emrek/registra/internal/pkg/logger"
)

// defaultDepartments are created on an empty installation.
var defaultDepartments = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"Business",
}

// Run is idempotent: existing records are left alone.
func Run(ctx context.Context, cfg *config.Config, repos *repositories.Repositories) error {
	if err := seedAdmin(ctx, cfg, repos); err != nil {
		return err
	}
	return seedDepartments(ctx, repos)
}

func seedAdmin(ctx context.Context, cfg *config.Config, repos *repositories.Repositories) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		logger.Warn().Msg("No admin seed configured, skipping admin creation")
		return nil
	}

	exists, err := repos.UserRepository.EmailExists(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	passwordHash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	fullName := "Administrator"
	admin := &models.User{
		Email:    cfg.Seed.AdminEmail,
		Password: passwordHash,
		FullName: &fullName,
		RoleType: models.RoleAdmin,
	}
	if err := repos.UserRepository.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info().Str("email", cfg.Seed.AdminEmail).Msg("Bootstrap admin created")
	return nil
}

func seedDepartments(ctx context.Context, repos *repositories.Repositories) error {
	existing, err := repos.DepartmentRepository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list departments: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, name := range defaultDepartments {
		department := &models.Department{Name: name}
		if err := repos.DepartmentRepository.Create(ctx, department); err != nil {
			return fmt.Errorf("failed to seed department %s: %w", name, err)
		}
	}

	logger.Info().Int("count", len(defaultDepartments)).Msg("Default departments seeded")
	return nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apponislam/vinies709-backend/domain"
)

// SeedManager creates the distinguished MANAGER account once at
// startup if none exists. Idempotent; not part of the request-driven
// lifecycle.
func SeedManager(ctx context.Context, userRepo domain.UserRepository, passwordSvc domain.PasswordService, logger *slog.Logger, email, password string) error {
	if _, err := userRepo.FindByRole(ctx, domain.RoleManager); err == nil {
		return nil
	} else if err != domain.ErrUserNotFound {
		return fmt.Errorf("failed to look up manager account: %w", err)
	}

	if email == "" || password == "" {
		return fmt.Errorf("manager seed credentials not configured")
	}

	hashedPassword, err := passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash manager password: %w", err)
	}

	manager := &domain.User{
		FirstName:       "Super",
		LastName:        "Admin",
		Email:           email,
		PasswordHash:    hashedPassword,
		Role:            domain.RoleManager,
		Phone:           "0000000000",
		Location:        "Headquarters",
		IsActive:        true,
		IsEmailVerified: true,
	}

	if err := userRepo.Create(ctx, manager); err != nil {
		return fmt.Errorf("failed to create manager account: %w", err)
	}

	logger.Info("manager account seeded", slog.String("email", email))
	return nil
}

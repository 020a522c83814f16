package usecase

import (
	"context"
	"fmt"
	"time"

	"gift-shop/internal/data/entity"
	"gift-shop/internal/data/repository"
	"gift-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EnsureAdminAccount creates the initial admin account from
// configuration when none exists. It runs once at startup and is the
// only state mutation not triggered by a client request. The created
// account is verified immediately.
func EnsureAdminAccount(ctx context.Context, repo *repository.Repository, config *utils.Config, log *zap.Logger) error {
	count, err := repo.User.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("count admin accounts: %w", err)
	}
	if count > 0 {
		log.Info("Admin account already exists")
		return nil
	}

	if config.Admin.Email == "" || config.Admin.Password == "" {
		return fmt.Errorf("no admin account exists and ADMIN_EMAIL/ADMIN_PASSWORD are not configured")
	}

	hashedPassword, err := utils.HashPassword(config.Admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now()
	admin := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         config.Admin.Name,
		Email:        config.Admin.Email,
		PasswordHash: hashedPassword,
		Phone:        config.Admin.Phone,
		Role:         entity.RoleAdmin,
		IsVerified:   true,
	}

	if err := repo.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	log.Info("Admin account created",
		zap.String("user_id", admin.ID.String()),
		zap.String("email", admin.Email))
	return nil
}

package usecase

import (
	"context"
	"testing"

	"gift-shop/internal/data/entity"
	"gift-shop/internal/data/repository"
	"gift-shop/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func bootstrapConfig() *utils.Config {
	cfg := testConfig()
	cfg.Admin = utils.AdminConfig{
		Name:     "Shop Admin",
		Email:    "admin@example.com",
		Phone:    "0812345678",
		Password: "admin-password",
	}
	return cfg
}

func TestEnsureAdminAccount_CreatesVerifiedAdmin(t *testing.T) {
	userRepo := newFakeUserRepo()
	repo := &repository.Repository{User: userRepo, Product: newFakeProductRepo(), List: newFakeListRepo()}

	require.NoError(t, EnsureAdminAccount(context.Background(), repo, bootstrapConfig(), zap.NewNop()))

	created, err := userRepo.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleAdmin, created.Role)
	assert.True(t, created.IsVerified)
	assert.True(t, utils.CheckPasswordHash("admin-password", created.PasswordHash))
}

func TestEnsureAdminAccount_NoOpWhenAdminExists(t *testing.T) {
	existing := admin()
	userRepo := newFakeUserRepo(existing)
	repo := &repository.Repository{User: userRepo, Product: newFakeProductRepo(), List: newFakeListRepo()}

	require.NoError(t, EnsureAdminAccount(context.Background(), repo, bootstrapConfig(), zap.NewNop()))
	assert.Len(t, userRepo.users, 1)
}

func TestEnsureAdminAccount_MissingCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	repo := &repository.Repository{User: userRepo, Product: newFakeProductRepo(), List: newFakeListRepo()}

	err := EnsureAdminAccount(context.Background(), repo, testConfig(), zap.NewNop())
	assert.Error(t, err)
	assert.Empty(t, userRepo.users)
}

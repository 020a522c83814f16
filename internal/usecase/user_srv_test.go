package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gift-shop/internal/data/entity"
	"gift-shop/internal/data/repository"
	"gift-shop/internal/dto/request"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserFixture(users ...*entity.User) (*fakeUserRepo, *fakeSender, UserService) {
	userRepo := newFakeUserRepo(users...)
	mail := &fakeSender{}
	repo := &repository.Repository{
		User:    userRepo,
		Product: newFakeProductRepo(),
		List:    newFakeListRepo(),
	}
	service := NewUserService(repo, mail, testConfig(), zap.NewNop())
	return userRepo, mail, service
}

func admin() *entity.User {
	user := verifiedUser("admin@example.com", "admin-password")
	user.Role = entity.RoleAdmin
	return user
}

func TestUpdateUser_GrantAdminRejectedWhenAdminExists(t *testing.T) {
	existing := admin()
	target := verifiedUser("bob@example.com", "secret123")
	userRepo, _, service := newUserFixture(existing, target)

	_, err := service.UpdateUser(context.Background(), target.ID, &request.AdminUpdateUserRequest{
		Role: "admin",
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, entity.RoleUser, userRepo.users[target.ID].Role, "role must be unchanged")
}

func TestUpdateUser_GrantAdminWhenNoneExists(t *testing.T) {
	target := verifiedUser("bob@example.com", "secret123")
	userRepo, _, service := newUserFixture(target)

	resp, err := service.UpdateUser(context.Background(), target.ID, &request.AdminUpdateUserRequest{
		Role: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
	assert.Equal(t, entity.RoleAdmin, userRepo.users[target.ID].Role)
}

func TestUpdateUser_KeepingAdminRoleIsAllowed(t *testing.T) {
	existing := admin()
	_, _, service := newUserFixture(existing)

	// Re-asserting the role on the only admin does not trip the
	// invariant check.
	resp, err := service.UpdateUser(context.Background(), existing.ID, &request.AdminUpdateUserRequest{
		Role: "admin",
		Name: "Renamed Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Admin", resp.Name)
}

func TestUpdateUser_ManualVerificationClearsToken(t *testing.T) {
	token := "pending-token"
	target := verifiedUser("bob@example.com", "secret123")
	target.IsVerified = false
	target.VerificationToken = &token
	userRepo, _, service := newUserFixture(target)

	verified := true
	_, err := service.UpdateUser(context.Background(), target.ID, &request.AdminUpdateUserRequest{
		IsVerified: &verified,
	})
	require.NoError(t, err)

	stored := userRepo.users[target.ID]
	assert.True(t, stored.IsVerified)
	assert.Nil(t, stored.VerificationToken)
}

func TestUpdateUser_EmailConflict(t *testing.T) {
	a := verifiedUser("a@example.com", "secret123")
	b := verifiedUser("b@example.com", "secret123")
	_, _, service := newUserFixture(a, b)

	_, err := service.UpdateUser(context.Background(), b.ID, &request.AdminUpdateUserRequest{
		Email: "a@example.com",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteUser_AdminIsProtected(t *testing.T) {
	existing := admin()
	userRepo, _, service := newUserFixture(existing)

	err := service.DeleteUser(context.Background(), existing.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, userRepo.users, existing.ID)
}

func TestDeleteUser_Success(t *testing.T) {
	target := verifiedUser("bob@example.com", "secret123")
	userRepo, _, service := newUserFixture(target)

	require.NoError(t, service.DeleteUser(context.Background(), target.ID))
	assert.NotContains(t, userRepo.users, target.ID)
}

func TestCreateStaff_SendsVerification(t *testing.T) {
	userRepo, mail, service := newUserFixture()

	resp, err := service.CreateStaff(context.Background(), &request.CreateStaffRequest{
		Name:     "Bob Staff",
		Email:    "bob@example.com",
		Phone:    "0812345678",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, resp.Role)
	assert.False(t, resp.IsVerified)
	require.Len(t, mail.sent, 1)

	created, _ := userRepo.FindByEmail(context.Background(), "bob@example.com")
	require.NotNil(t, created)
	assert.NotNil(t, created.VerificationToken)
}

func TestCreateStaff_MailFailureRollsBack(t *testing.T) {
	userRepo, mail, service := newUserFixture()
	mail.err = errors.New("smtp: connection refused")

	_, err := service.CreateStaff(context.Background(), &request.CreateStaffRequest{
		Name:     "Bob Staff",
		Email:    "bob@example.com",
		Phone:    "0812345678",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrUpstream)

	created, _ := userRepo.FindByEmail(context.Background(), "bob@example.com")
	assert.Nil(t, created, "staff provisioning never degrades to auto-verify")
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	a := verifiedUser("a@example.com", "secret123")
	b := verifiedUser("b@example.com", "secret123")
	_, _, service := newUserFixture(a, b)

	_, err := service.UpdateProfile(context.Background(), b.ID, &request.UpdateProfileRequest{
		Email: "a@example.com",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateProfile_EmailConflictRace(t *testing.T) {
	// The uniqueness pre-check passes, but another request claims the
	// email before the write lands.
	user := verifiedUser("b@example.com", "secret123")
	userRepo, _, service := newUserFixture(user)
	userRepo.updateErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email_active"}

	_, err := service.UpdateProfile(context.Background(), user.ID, &request.UpdateProfileRequest{
		Email: "a@example.com",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateProfile_UserVanishedBeforeWrite(t *testing.T) {
	user := verifiedUser("alice@example.com", "secret123")
	userRepo, _, service := newUserFixture(user)
	userRepo.updateErr = fmt.Errorf("update user %s: %w", user.ID, pgx.ErrNoRows)

	_, err := service.UpdateProfile(context.Background(), user.ID, &request.UpdateProfileRequest{
		Name: "Renamed",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser_EmailConflictRace(t *testing.T) {
	user := verifiedUser("b@example.com", "secret123")
	userRepo, _, service := newUserFixture(user)
	userRepo.updateErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email_active"}

	_, err := service.UpdateUser(context.Background(), user.ID, &request.AdminUpdateUserRequest{
		Email: "a@example.com",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteUser_UserVanishedBeforeWrite(t *testing.T) {
	user := verifiedUser("bob@example.com", "secret123")
	userRepo, _, service := newUserFixture(user)
	userRepo.deleteErr = fmt.Errorf("delete user %s: %w", user.ID, pgx.ErrNoRows)

	err := service.DeleteUser(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	user := verifiedUser("alice@example.com", "secret123")
	userRepo, _, service := newUserFixture(user)

	address := "12 Test Street"
	resp, err := service.UpdateProfile(context.Background(), user.ID, &request.UpdateProfileRequest{
		Address: &address,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Name, "omitted fields keep their values")
	require.NotNil(t, userRepo.users[user.ID].Address)
	assert.Equal(t, address, *userRepo.users[user.ID].Address)
}

func TestEnsureAdminInvariant(t *testing.T) {
	t.Run("no admin, pending grant", func(t *testing.T) {
		repo := newFakeUserRepo()
		assert.NoError(t, EnsureAdminInvariant(context.Background(), repo, 1))
	})

	t.Run("one admin, gate check", func(t *testing.T) {
		repo := newFakeUserRepo(admin())
		assert.NoError(t, EnsureAdminInvariant(context.Background(), repo, 0))
	})

	t.Run("one admin, pending grant", func(t *testing.T) {
		repo := newFakeUserRepo(admin())
		assert.ErrorIs(t, EnsureAdminInvariant(context.Background(), repo, 1), ErrForbidden)
	})

	t.Run("two admins, gate check", func(t *testing.T) {
		second := admin()
		second.Email = "admin2@example.com"
		repo := newFakeUserRepo(admin(), second)
		assert.ErrorIs(t, EnsureAdminInvariant(context.Background(), repo, 0), ErrForbidden)
	})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gift-shop/internal/data/entity"
	"gift-shop/internal/data/repository"
	"gift-shop/internal/dto/request"
	"gift-shop/internal/dto/response"
	"gift-shop/internal/notifier"
	"gift-shop/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	// verificationTTL is the validity window of an email verification token.
	verificationTTL = 24 * time.Hour
	// resetTTL is the validity window of a password reset token.
	resetTTL = 15 * time.Minute
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	mail   notifier.Sender
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail notifier.Sender,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input before touching the store
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Check email is not taken yet
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: check email", ErrUpstream)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already exists", ErrConflict)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("%w: process password", ErrUpstream)
	}

	// 4. Attach a verification token with a 24h window
	token := utils.GenerateSecureToken()
	expires := time.Now().Add(verificationTTL)

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                req.Name,
		Email:               req.Email,
		PasswordHash:        hashedPassword,
		Phone:               req.Phone,
		Role:                entity.RoleUser,
		IsVerified:          false,
		VerificationToken:   &token,
		VerificationExpires: &expires,
	}

	// 5. Save. The unique index on email is the real enforcement
	// point for concurrent duplicate registrations.
	if err := s.repo.User.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email already exists", ErrConflict)
		}
		return nil, fmt.Errorf("%w: create account", ErrUpstream)
	}

	// 6. Deliver the verification link. A missing mail configuration
	// degrades to auto-verification; any other delivery failure rolls
	// the freshly created account back.
	link := s.verificationLink(token)
	sendErr := s.mail.Send(ctx, notifier.VerificationEmail(user.Name, user.Email, link))
	switch {
	case sendErr == nil:
		s.log.Info("User registered, verification email sent",
			zap.String("user_id", user.ID.String()),
			zap.String("email", user.Email))
		return &response.RegisterResponse{RequiresVerification: true}, nil

	case errors.Is(sendErr, notifier.ErrNotConfigured):
		s.log.Warn("Mail transport not configured, auto-verifying account",
			zap.String("user_id", user.ID.String()),
			zap.String("email", user.Email))

		user.IsVerified = true
		user.VerificationToken = nil
		user.VerificationExpires = nil
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("%w: verify account", ErrUpstream)
		}

		resp := response.UserToResponse(user)
		return &response.RegisterResponse{RequiresVerification: false, User: &resp}, nil

	default:
		s.log.Error("Failed to send verification email, rolling back account",
			zap.Error(sendErr),
			zap.String("user_id", user.ID.String()),
			zap.String("email", user.Email))

		if err := s.repo.User.Delete(ctx, user.ID); err != nil {
			s.log.Error("Rollback of unverifiable account failed",
				zap.Error(err), zap.String("user_id", user.ID.String()))
		}
		return nil, fmt.Errorf("%w: registration failed", ErrUpstream)
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by exact email. Unknown email and wrong password
	// produce the same generic error.
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: find user", ErrUpstream)
	}
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login with wrong password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Verified accounts only. This outcome discloses state so the
	// client can offer a resend action.
	if !user.IsVerified {
		s.log.Warn("Login attempt on unverified account", zap.String("user_id", user.ID.String()))
		return nil, ErrVerificationRequired
	}

	// 5. Issue the session credential
	ttl := time.Duration(s.config.JWT.ExpiryDays) * 24 * time.Hour
	token, expiresAt, err := utils.GenerateToken(user.ID, string(user.Role), s.config.JWT.Secret, ttl)
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: issue session", ErrUpstream)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: token is required", ErrValidation)
	}

	// The lookup folds in all validity conditions: token match,
	// unexpired window, account still unverified. No match is a single
	// generic outcome.
	user, err := s.repo.User.FindByVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: find verification token", ErrUpstream)
	}
	if user == nil {
		return ErrInvalidToken
	}

	// Consume: clearing the fields invalidates the token immediately.
	user.IsVerified = true
	user.VerificationToken = nil
	user.VerificationExpires = nil
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("%w: verify email", ErrUpstream)
	}

	s.log.Info("Email verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))
	return nil
}

func (s *authService) ResendVerification(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: find user", ErrUpstream)
	}
	if user == nil || user.IsVerified {
		return fmt.Errorf("%w: user not found or already verified", ErrNotFound)
	}

	// A fresh token always replaces any outstanding one.
	token := utils.GenerateSecureToken()
	expires := time.Now().Add(verificationTTL)
	user.VerificationToken = &token
	user.VerificationExpires = &expires
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("%w: store verification token", ErrUpstream)
	}

	link := s.verificationLink(token)
	if err := s.mail.Send(ctx, notifier.VerificationEmail(user.Name, user.Email, link)); err != nil {
		s.log.Error("Failed to resend verification email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("%w: send verification email", ErrUpstream)
	}

	s.log.Info("Verification email resent", zap.String("email", email))
	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: find user", ErrUpstream)
	}
	if user == nil {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}

	// Issue a 15-minute reset token, overwriting any prior one.
	token := utils.GenerateSecureToken()
	expires := time.Now().Add(resetTTL)
	user.ResetToken = &token
	user.ResetExpires = &expires
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("%w: store reset token", ErrUpstream)
	}

	link := fmt.Sprintf("%s/reset-password/%s", s.config.Client.BaseURL, token)
	if err := s.mail.Send(ctx, notifier.PasswordResetEmail(user.Name, user.Email, link)); err != nil {
		s.log.Error("Failed to send password reset email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("%w: send password reset email", ErrUpstream)
	}

	s.log.Info("Password reset email sent", zap.String("email", email))
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	// Password policy is enforced before any token lookup.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByResetToken(ctx, req.Token)
	if err != nil {
		return fmt.Errorf("%w: find reset token", ErrUpstream)
	}
	if user == nil {
		return ErrInvalidToken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("%w: process password", ErrUpstream)
	}

	user.PasswordHash = hashedPassword
	user.ResetToken = nil
	user.ResetExpires = nil
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("%w: reset password", ErrUpstream)
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: find user", ErrUpstream)
	}
	if user == nil {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}

	// The current password gates the change; a reset token is the
	// only other path to a new password.
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: incorrect old password", ErrValidation)
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: process password", ErrUpstream)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("%w: change password", ErrUpstream)
	}

	s.log.Info("Password changed", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) verificationLink(token string) string {
	return fmt.Sprintf("%s/verify-email/%s", s.config.Client.BaseURL, token)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

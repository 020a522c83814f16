package usecase

import (
	"context"
	"fmt"
	"time"

	"gift-shop/internal/data/entity"
	"gift-shop/internal/data/repository"
	"gift-shop/internal/dto/request"
	"gift-shop/internal/dto/response"
	"gift-shop/internal/notifier"
	"gift-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.UserResponse, error)
	ListUsers(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.UserResponse], error)
	GetUser(ctx context.Context, id uuid.UUID) (*response.UserDetailResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *request.AdminUpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo   *repository.Repository
	mail   notifier.Sender
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(
	repo *repository.Repository,
	mail notifier.Sender,
	config *utils.Config,
	log *zap.Logger,
) UserService {
	return &userService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: find user", ErrUpstream)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: find user", ErrUpstream)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	// An email change re-checks uniqueness.
	if req.Email != "" && req.Email != user.Email {
		existing, err := s.repo.User.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("%w: check email", ErrUpstream)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email already exists", ErrConflict)
		}
		user.Email = req.Email
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, storeError(err, "update profile")
	}

	s.log.Info("Profile updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// CreateStaff provisions a staff account. Unlike self-registration
// there is no degraded path: if the verification email cannot be
// delivered the account is rolled back.
func (s *userService) CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: check email", ErrUpstream)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already exists", ErrConflict)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: process password", ErrUpstream)
	}

	token := utils.GenerateSecureToken()
	expires := time.Now().Add(verificationTTL)

	now := time.Now()
	staff := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                req.Name,
		Email:               req.Email,
		PasswordHash:        hashedPassword,
		Phone:               req.Phone,
		Role:                entity.RoleStaff,
		IsVerified:          false,
		VerificationToken:   &token,
		VerificationExpires: &expires,
	}

	if err := s.repo.User.Create(ctx, staff); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email already exists", ErrConflict)
		}
		return nil, fmt.Errorf("%w: create staff account", ErrUpstream)
	}

	link := fmt.Sprintf("%s/verify-email/%s", s.config.Client.BaseURL, token)
	if err := s.mail.Send(ctx, notifier.VerificationEmail(staff.Name, staff.Email, link)); err != nil {
		s.log.Error("Failed to send staff verification email, rolling back",
			zap.Error(err), zap.String("email", staff.Email))
		if delErr := s.repo.User.Delete(ctx, staff.ID); delErr != nil {
			s.log.Error("Rollback of staff account failed",
				zap.Error(delErr), zap.String("user_id", staff.ID.String()))
		}
		return nil, fmt.Errorf("%w: staff creation failed", ErrUpstream)
	}

	s.log.Info("Staff account created",
		zap.String("user_id", staff.ID.String()),
		zap.String("email", staff.Email))

	resp := response.UserToResponse(staff)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.UserResponse], error) {
	offset := (page - 1) * perPage

	users, err := s.repo.User.FindAll(ctx, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: list users", ErrUpstream)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count users", ErrUpstream)
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, response.UserToResponse(user))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

// GetUser returns a user with cart and wishlist populated, for the
// admin/staff detail view.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*response.UserDetailResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find user", ErrUpstream)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	cart, err := s.populatedList(ctx, repository.ListCart, id)
	if err != nil {
		return nil, err
	}
	wishlist, err := s.populatedList(ctx, repository.ListWishlist, id)
	if err != nil {
		return nil, err
	}

	return &response.UserDetailResponse{
		UserResponse: response.UserToResponse(user),
		Cart:         cart,
		Wishlist:     wishlist,
	}, nil
}

func (s *userService) populatedList(ctx context.Context, kind repository.ListKind, userID uuid.UUID) ([]response.ProductResponse, error) {
	ids, err := s.repo.List.ProductIDs(ctx, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s", ErrUpstream, kind)
	}

	products, err := s.repo.Product.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: populate %s", ErrUpstream, kind)
	}

	items := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, response.ProductToResponse(product))
	}
	return items, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *request.AdminUpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find user", ErrUpstream)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if req.Email != "" && req.Email != user.Email {
		existing, err := s.repo.User.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("%w: check email", ErrUpstream)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email already exists", ErrConflict)
		}
		user.Email = req.Email
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	// Granting the admin role is the prevention point of the
	// single-admin rule: the mutation that would create a second
	// admin account is rejected here.
	if req.Role != "" {
		role := entity.UserRole(req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role", ErrValidation)
		}
		if role == entity.RoleAdmin && user.Role != entity.RoleAdmin {
			if err := EnsureAdminInvariant(ctx, s.repo.User, 1); err != nil {
				return nil, err
			}
		}
		user.Role = role
	}

	if req.Password != "" {
		hashedPassword, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: process password", ErrUpstream)
		}
		user.PasswordHash = hashedPassword
	}

	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
		// Manual verification retires any outstanding token.
		if *req.IsVerified {
			user.VerificationToken = nil
			user.VerificationExpires = nil
		}
	}

	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, storeError(err, "update user")
	}

	s.log.Info("User updated by admin", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: find user", ErrUpstream)
	}
	if user == nil {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}

	// Admin accounts cannot be deleted.
	if user.Role == entity.RoleAdmin {
		return fmt.Errorf("%w: cannot delete admin account", ErrForbidden)
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		return storeError(err, "delete user")
	}

	return nil
}

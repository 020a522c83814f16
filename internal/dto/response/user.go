package response

import (
	"time"

	"gift-shop/internal/data/entity"
)

// UserResponse is the public account projection. Password hash and
// token fields never leave the service layer.
type UserResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"whatsapp_number"`
	Address    *string         `json:"address,omitempty"`
	Role       entity.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	CreatedAt  time.Time       `json:"created_at"`
}

// UserDetailResponse adds the populated lists for the admin/staff view.
type UserDetailResponse struct {
	UserResponse
	Cart     []ProductResponse `json:"cart"`
	Wishlist []ProductResponse `json:"wishlist"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Address:    user.Address,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

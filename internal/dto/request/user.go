package request

type UpdateProfileRequest struct {
	Name    string  `json:"name" validate:"omitempty,min=2,max=100"`
	Email   string  `json:"email" validate:"omitempty,email"`
	Phone   string  `json:"whatsapp_number" validate:"omitempty,len=10,number"`
	Address *string `json:"address,omitempty"`
}

type CreateStaffRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"whatsapp_number" validate:"required,len=10,number"`
	Password string `json:"password" validate:"required,min=6"`
}

type AdminUpdateUserRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"whatsapp_number" validate:"omitempty,len=10,number"`
	Role       string `json:"role" validate:"omitempty,oneof=user staff admin"`
	Password   string `json:"password" validate:"omitempty,min=6"`
	IsVerified *bool  `json:"is_verified,omitempty"`
}

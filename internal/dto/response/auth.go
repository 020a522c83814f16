package response

import "time"

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type RegisterResponse struct {
	// RequiresVerification is false only when mail delivery was not
	// configured and the account was auto-verified.
	RequiresVerification bool          `json:"requires_verification"`
	User                 *UserResponse `json:"user,omitempty"`
}

package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        string   `db:"whatsapp_number"`
	Address      *string  `db:"address"`
	Role         UserRole `db:"role"`
	IsVerified   bool     `db:"is_verified"`

	// Email verification token, cleared on successful verification.
	VerificationToken   *string    `db:"verification_token"`
	VerificationExpires *time.Time `db:"verification_expires"`

	// Password reset token, cleared on successful reset.
	ResetToken   *string    `db:"reset_token"`
	ResetExpires *time.Time `db:"reset_expires"`
}

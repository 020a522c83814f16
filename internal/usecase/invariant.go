package usecase

import (
	"context"
	"fmt"

	"gift-shop/internal/data/entity"
)

// RoleCounter is the slice of the user repository needed to check the
// admin invariant.
type RoleCounter interface {
	CountByRole(ctx context.Context, role entity.UserRole) (int64, error)
}

// EnsureAdminInvariant verifies the system holds at most one admin
// account. pending is the number of admin accounts a mutation in
// flight would add: role-granting paths pass 1 so that a second admin
// is rejected before it exists, and the authorization gate passes 0 as
// a defensive re-check.
func EnsureAdminInvariant(ctx context.Context, users RoleCounter, pending int) error {
	count, err := users.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("count admin accounts: %w", err)
	}
	if count+int64(pending) > 1 {
		return fmt.Errorf("%w: only one admin account is allowed", ErrForbidden)
	}
	return nil
}

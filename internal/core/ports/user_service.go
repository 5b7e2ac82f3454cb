package ports

import (
	"context"

	"github.com/sellhub/marketplace-api/internal/core/domain"
)

// UserStats is the aggregate breakdown returned by the admin stats endpoint.
type UserStats struct {
	TotalUsers   int64 `json:"total_users"`
	AdminUsers   int64 `json:"admin_users"`
	RegularUsers int64 `json:"regular_users"`
}

// UserService covers the admin-only user management operations. Route-level
// RBAC guarantees the caller is an admin before any of these run.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error)
	// DeleteUser removes the account. Products created by the user are left
	// in place; CreatedBy becomes a dangling reference.
	DeleteUser(ctx context.Context, userID string) error
	Stats(ctx context.Context) (*UserStats, error)
}

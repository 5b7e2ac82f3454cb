package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sellhub/marketplace-api/internal/core/domain"
	"github.com/sellhub/marketplace-api/internal/core/ports"
)

// UserService implements the admin-only user management operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// ListUsers returns every account. Password hashes never leave the domain
// struct's json:"-" field, so the listing is safe to serialize directly.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// UpdateRole changes a user's role, validated against the closed role enum.
func (s *UserService) UpdateRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid role", domain.ErrInvalidInput)
	}

	user, err := s.repo.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("role", string(role)).Msg("user role updated")
	return user, nil
}

// DeleteUser removes the account. Products the user created are untouched.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}

// Stats computes the total/admin/regular user counts.
func (s *UserService) Stats(ctx context.Context) (*ports.UserStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	admins, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	regular, err := s.repo.CountByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("count regular users: %w", err)
	}

	return &ports.UserStats{
		TotalUsers:   total,
		AdminUsers:   admins,
		RegularUsers: regular,
	}, nil
}

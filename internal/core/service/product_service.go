package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sellhub/marketplace-api/internal/core/domain"
	"github.com/sellhub/marketplace-api/internal/core/ports"
)

const (
	minProductNameLength = 3
	maxProductNameLength = 100
	maxDescriptionLength = 500
)

// ProductService implements product CRUD with ownership-or-admin mutation.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

// Create validates the listing fields and persists a product owned by the
// caller. Quantity defaults to 0, category to "other", status to "active".
func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidInput)
	}
	description := strings.TrimSpace(in.Description)
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: description cannot exceed %d characters", domain.ErrInvalidInput, maxDescriptionLength)
	}

	category := in.Category
	if category == "" {
		category = domain.CategoryOther
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: invalid category", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        name,
		Description: description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Category:    category,
		Status:      domain.StatusActive,
		CreatedBy:   in.CallerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("failed to insert product")
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("created_by", in.CallerID).Msg("product created")
	return created, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: invalid category", domain.ErrInvalidInput)
	}
	return s.repo.FindByCategory(ctx, category)
}

// Search matches the query case-insensitively against product names and
// descriptions, newest first.
func (s *ProductService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrInvalidInput)
	}
	return s.repo.Search(ctx, query)
}

// Update applies a partial update under the ownership-or-admin rule. Only
// non-nil patch fields are written; an explicit zero value is applied as-is.
func (s *ProductService) Update(ctx context.Context, id string, patch domain.ProductPatch, callerID string, callerRole domain.Role) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.CanMutate(callerID, callerRole) {
		return nil, domain.ErrForbidden
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", id).Str("caller_id", callerID).Msg("product updated")
	return updated, nil
}

// Delete removes a product under the same ownership-or-admin rule as Update.
func (s *ProductService) Delete(ctx context.Context, id string, callerID string, callerRole domain.Role) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !product.CanMutate(callerID, callerRole) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("product_id", id).Str("caller_id", callerID).Msg("product deleted")
	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}
	if len(name) < minProductNameLength {
		return fmt.Errorf("%w: product name must be at least %d characters", domain.ErrInvalidInput, minProductNameLength)
	}
	if len(name) > maxProductNameLength {
		return fmt.Errorf("%w: product name cannot exceed %d characters", domain.ErrInvalidInput, maxProductNameLength)
	}
	return nil
}

func validatePatch(patch domain.ProductPatch) error {
	if patch.Name != nil {
		if err := validateName(strings.TrimSpace(*patch.Name)); err != nil {
			return err
		}
	}
	if patch.Description != nil && len(*patch.Description) > maxDescriptionLength {
		return fmt.Errorf("%w: description cannot exceed %d characters", domain.ErrInvalidInput, maxDescriptionLength)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidInput)
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return fmt.Errorf("%w: invalid category", domain.ErrInvalidInput)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return fmt.Errorf("%w: invalid status", domain.ErrInvalidInput)
	}
	return nil
}

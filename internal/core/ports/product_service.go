package ports

import (
	"context"

	"github.com/sellhub/marketplace-api/internal/core/domain"
)

// CreateProductInput carries the data needed to create a listing. Category
// and Status fall back to their defaults ("other", "active") when empty.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Category    domain.Category
	CallerID    string
}

// ProductService implements product CRUD with the ownership-or-admin rule on
// mutation. Reads require no authentication.
type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch, callerID string, callerRole domain.Role) (*domain.Product, error)
	Delete(ctx context.Context, id string, callerID string, callerRole domain.Role) error
}

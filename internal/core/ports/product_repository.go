package ports

import (
	"context"

	"github.com/sellhub/marketplace-api/internal/core/domain"
)

// ProductRepository defines persistence for product listings. All list-shaped
// reads return results ordered by creation time, newest first.
type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error)
	// Search matches query case-insensitively against name or description.
	Search(ctx context.Context, query string) ([]domain.Product, error)
	// Update applies only the non-nil fields of the patch and returns the
	// updated document, or domain.ErrProductNotFound.
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

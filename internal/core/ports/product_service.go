package ports

import (
	"context"

	"github.com/space-market/pos-server/internal/core/domain"
)

// CreateProductInput carries a create request. Nil fields are filled from
// the configured default product.
type CreateProductInput struct {
	Name     string
	Caffeine *int64
	Alcohol  *int64
	Energy   *int64
	Sugar    *int64
	Price    *int64
	Active   *bool
	Image    *int64
}

type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

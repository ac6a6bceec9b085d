package ports

import (
	"context"

	"github.com/space-market/pos-server/internal/core/domain"
)

// ProductRepository persists products. Name uniqueness is enforced by the
// store and reported as domain.ErrConflict.
type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// Create assigns ID, CreatedAt and UpdatedAt on p.
	Create(ctx context.Context, p *domain.Product) error
	// Update saves every column of p and rewrites UpdatedAt unconditionally.
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
}

package ports

import (
	"context"

	"github.com/space-market/pos-server/internal/core/domain"
)

// CreateUserInput carries a create request. Nil fields take the user
// defaults: balance 0, active, not audited, redirect on.
type CreateUserInput struct {
	Name     string
	Email    *string
	Balance  *int64
	Active   *bool
	Audit    *bool
	Redirect *bool
	Avatar   *int64
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (domain.UserStats, error)
}

package ports

import (
	"context"

	"github.com/space-market/pos-server/internal/core/domain"
)

// UserRepository persists users with the same contract as ProductRepository,
// except that Update leaves the balance column alone unless setBalance is
// true and reloads u from the stored row.
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User, setBalance bool) error
	Delete(ctx context.Context, id int64) error
}

// BalanceRepository applies balance mutations atomically. Every method
// returns the rows as they are after the write.
type BalanceRepository interface {
	// AdjustBalance adds delta (which may be negative) to the user's balance
	// in a single statement.
	AdjustBalance(ctx context.Context, userID, delta int64) (*domain.User, error)

	// Purchase reads the product price and debits it from the user inside
	// one transaction. The charged price is returned alongside the user.
	Purchase(ctx context.Context, userID, productID int64) (*domain.User, int64, error)

	// Transfer moves amount from sender to receiver inside one transaction.
	// If either row is missing nothing is written.
	Transfer(ctx context.Context, senderID, receiverID, amount int64) (sender, receiver *domain.User, err error)
}

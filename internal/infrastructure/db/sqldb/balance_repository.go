package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/space-market/pos-server/internal/core/domain"
)

// BalanceRepository implements ports.BalanceRepository. Every delta is a
// single UPDATE ... SET balance = balance + ? so concurrent requests against
// the same user never lose an update.
type BalanceRepository struct {
	db  *sqlx.DB
	now func() time.Time

	adjustSQL string
	priceSQL  string
}

func NewBalanceRepository(db *sqlx.DB) *BalanceRepository {
	return &BalanceRepository{
		db:        db,
		now:       storeNow,
		adjustSQL: db.Rebind("UPDATE users SET balance = balance + ?, updated_at = ? WHERE id = ? RETURNING " + userColumns),
		priceSQL:  db.Rebind("SELECT price FROM products WHERE id = ?"),
	}
}

func (r *BalanceRepository) AdjustBalance(ctx context.Context, userID, delta int64) (*domain.User, error) {
	return r.adjust(ctx, r.db, userID, delta)
}

func (r *BalanceRepository) Purchase(ctx context.Context, userID, productID int64) (*domain.User, int64, error) {
	var (
		user  *domain.User
		price int64
	)
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &price, r.priceSQL, productID); err != nil {
			return mapError(err, fmt.Sprintf("product %d", productID))
		}
		var err error
		user, err = r.adjust(ctx, tx, userID, -price)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return user, price, nil
}

// Transfer updates the lower id first so two opposite transfers between the
// same pair lock rows in the same order.
func (r *BalanceRepository) Transfer(ctx context.Context, senderID, receiverID, amount int64) (*domain.User, *domain.User, error) {
	var sender, receiver *domain.User
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		steps := []struct {
			id    int64
			delta int64
			out   **domain.User
		}{
			{senderID, -amount, &sender},
			{receiverID, amount, &receiver},
		}
		if receiverID < senderID {
			steps[0], steps[1] = steps[1], steps[0]
		}

		for _, s := range steps {
			u, err := r.adjust(ctx, tx, s.id, s.delta)
			if err != nil {
				return err
			}
			*s.out = u
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return sender, receiver, nil
}

func (r *BalanceRepository) adjust(ctx context.Context, q sqlx.QueryerContext, userID, delta int64) (*domain.User, error) {
	var u domain.User
	if err := sqlx.GetContext(ctx, q, &u, r.adjustSQL, delta, r.now(), userID); err != nil {
		return nil, mapError(err, fmt.Sprintf("user %d", userID))
	}
	return &u, nil
}

package ports

import (
	"context"

	"github.com/space-market/pos-server/internal/core/domain"
)

// JournalStore is the durable side of the balance journal.
type JournalStore interface {
	Insert(ctx context.Context, event *domain.BalanceEvent) error
	// ListByUser returns at most limit events for userID, newest first.
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.BalanceEvent, error)
}

// Journal accepts events for asynchronous persistence. Record never blocks
// and never fails the caller.
type Journal interface {
	Record(event domain.BalanceEvent)
}

// IdempotencyGuard claims request keys so a retried balance operation is
// applied at most once.
type IdempotencyGuard interface {
	// Claim reports false when key is already held.
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

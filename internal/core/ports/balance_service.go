package ports

import (
	"context"

	"github.com/space-market/pos-server/internal/core/domain"
)

// OperationMeta carries transport-level details of a balance request.
type OperationMeta struct {
	IdempotencyKey string // optional
	RequestID      string // optional, copied into journal events
}

// TransferInput moves Amount from SenderID to ReceiverID.
type TransferInput struct {
	SenderID   int64
	ReceiverID int64
	Amount     int64
	Meta       OperationMeta
}

// TransferResult holds both accounts after a committed transfer.
type TransferResult struct {
	Sender   *domain.User
	Receiver *domain.User
}

type BalanceService interface {
	Deposit(ctx context.Context, userID, amount int64, meta OperationMeta) (*domain.User, error)
	Spend(ctx context.Context, userID, amount int64, meta OperationMeta) (*domain.User, error)
	Purchase(ctx context.Context, userID, productID int64, meta OperationMeta) (*domain.User, error)
	Transfer(ctx context.Context, in TransferInput) (*TransferResult, error)
	// History returns journal entries for an existing user, newest first.
	History(ctx context.Context, userID int64, limit int) ([]domain.BalanceEvent, error)
}

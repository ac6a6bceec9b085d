package domain

import "time"

// BalanceOperation names a kind of balance mutation.
type BalanceOperation string

const (
	OpDeposit  BalanceOperation = "deposit"
	OpSpend    BalanceOperation = "spend"
	OpPurchase BalanceOperation = "purchase"
	OpTransfer BalanceOperation = "transfer"
)

// ParseBalanceOperation accepts the path segment of POST /users/:id/:operation.
// Only deposit and spend are addressable that way.
func ParseBalanceOperation(s string) (BalanceOperation, bool) {
	switch BalanceOperation(s) {
	case OpDeposit, OpSpend:
		return BalanceOperation(s), true
	}
	return "", false
}

// BalanceEvent is one journal entry. Amount is the signed delta applied to
// UserID; a transfer produces one event per side.
type BalanceEvent struct {
	Kind           BalanceOperation `json:"kind" bson:"kind"`
	UserID         int64            `json:"user_id" bson:"user_id"`
	CounterpartyID *int64           `json:"counterparty_id,omitempty" bson:"counterparty_id,omitempty"`
	ProductID      *int64           `json:"product_id,omitempty" bson:"product_id,omitempty"`
	Amount         int64            `json:"amount" bson:"amount"`
	BalanceAfter   int64            `json:"balance_after" bson:"balance_after"`
	RequestID      string           `json:"request_id,omitempty" bson:"request_id,omitempty"`
	RecordedAt     time.Time        `json:"recorded_at" bson:"recorded_at"`
}

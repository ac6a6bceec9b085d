package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/core/ports"
	"github.com/space-market/pos-server/internal/pkg/metrics"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type BalanceService struct {
	users    ports.UserRepository
	balances ports.BalanceRepository
	journal  ports.Journal
	history  ports.JournalStore
	guard    ports.IdempotencyGuard
	log      zerolog.Logger
	now      func() time.Time
}

// NewBalanceService wires the balance engine. journal, history and guard are
// optional; nil disables the corresponding feature.
func NewBalanceService(
	users ports.UserRepository,
	balances ports.BalanceRepository,
	journal ports.Journal,
	history ports.JournalStore,
	guard ports.IdempotencyGuard,
	log zerolog.Logger,
) *BalanceService {
	if journal == nil {
		journal = NopJournal{}
	}
	return &BalanceService{
		users:    users,
		balances: balances,
		journal:  journal,
		history:  history,
		guard:    guard,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *BalanceService) Deposit(ctx context.Context, userID, amount int64, meta ports.OperationMeta) (*domain.User, error) {
	return s.adjust(ctx, domain.OpDeposit, userID, amount, meta)
}

// Spend debits amount. There is no overdraft check.
func (s *BalanceService) Spend(ctx context.Context, userID, amount int64, meta ports.OperationMeta) (*domain.User, error) {
	return s.adjust(ctx, domain.OpSpend, userID, -amount, meta)
}

func (s *BalanceService) adjust(ctx context.Context, op domain.BalanceOperation, userID, delta int64, meta ports.OperationMeta) (*domain.User, error) {
	var user *domain.User
	err := s.run(ctx, op, userID, meta, func() error {
		var err error
		user, err = s.balances.AdjustBalance(ctx, userID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.BalanceAmountTotal.WithLabelValues(string(op)).Add(float64(abs(delta)))
	s.journal.Record(domain.BalanceEvent{
		Kind:         op,
		UserID:       userID,
		Amount:       delta,
		BalanceAfter: user.Balance,
		RequestID:    meta.RequestID,
		RecordedAt:   s.now(),
	})
	s.log.Info().
		Str("operation", string(op)).
		Int64("user_id", userID).
		Int64("delta", delta).
		Int64("balance", user.Balance).
		Msg("balance updated")
	return user, nil
}

// Purchase debits the current price of productID from userID.
func (s *BalanceService) Purchase(ctx context.Context, userID, productID int64, meta ports.OperationMeta) (*domain.User, error) {
	var (
		user  *domain.User
		price int64
	)
	err := s.run(ctx, domain.OpPurchase, userID, meta, func() error {
		var err error
		user, price, err = s.balances.Purchase(ctx, userID, productID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.BalanceAmountTotal.WithLabelValues(string(domain.OpPurchase)).Add(float64(abs(price)))
	s.journal.Record(domain.BalanceEvent{
		Kind:         domain.OpPurchase,
		UserID:       userID,
		ProductID:    &productID,
		Amount:       -price,
		BalanceAfter: user.Balance,
		RequestID:    meta.RequestID,
		RecordedAt:   s.now(),
	})
	s.log.Info().
		Int64("user_id", userID).
		Int64("product_id", productID).
		Int64("price", price).
		Int64("balance", user.Balance).
		Msg("product purchased")
	return user, nil
}

// Transfer moves funds between two distinct users atomically.
func (s *BalanceService) Transfer(ctx context.Context, in ports.TransferInput) (*ports.TransferResult, error) {
	if in.SenderID == in.ReceiverID {
		return nil, domain.ErrSelfTransfer
	}

	var res ports.TransferResult
	err := s.run(ctx, domain.OpTransfer, in.SenderID, in.Meta, func() error {
		var err error
		res.Sender, res.Receiver, err = s.balances.Transfer(ctx, in.SenderID, in.ReceiverID, in.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	sender, receiver := in.SenderID, in.ReceiverID
	metrics.BalanceAmountTotal.WithLabelValues(string(domain.OpTransfer)).Add(float64(abs(in.Amount)))
	s.journal.Record(domain.BalanceEvent{
		Kind:           domain.OpTransfer,
		UserID:         sender,
		CounterpartyID: &receiver,
		Amount:         -in.Amount,
		BalanceAfter:   res.Sender.Balance,
		RequestID:      in.Meta.RequestID,
		RecordedAt:     now,
	})
	s.journal.Record(domain.BalanceEvent{
		Kind:           domain.OpTransfer,
		UserID:         receiver,
		CounterpartyID: &sender,
		Amount:         in.Amount,
		BalanceAfter:   res.Receiver.Balance,
		RequestID:      in.Meta.RequestID,
		RecordedAt:     now,
	})
	s.log.Info().
		Int64("sender_id", sender).
		Int64("receiver_id", receiver).
		Int64("amount", in.Amount).
		Msg("funds transferred")
	return &res, nil
}

// History returns the most recent journal entries of an existing user.
// limit <= 0 selects the default; values above the maximum are capped.
func (s *BalanceService) History(ctx context.Context, userID int64, limit int) ([]domain.BalanceEvent, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	if s.history == nil {
		return []domain.BalanceEvent{}, nil
	}
	events, err := s.history.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("balance history %d: %w", userID, err)
	}
	if events == nil {
		events = []domain.BalanceEvent{}
	}
	return events, nil
}

// run executes mutate under an idempotency claim and records the outcome.
// The claim is released when mutate fails so the client may retry.
func (s *BalanceService) run(ctx context.Context, op domain.BalanceOperation, userID int64, meta ports.OperationMeta, mutate func() error) error {
	key := idempotencyKey(op, userID, meta.IdempotencyKey)
	claimed, err := s.claim(ctx, key)
	if err != nil {
		metrics.BalanceOperationsTotal.WithLabelValues(string(op), "duplicate").Inc()
		return err
	}

	if err := mutate(); err != nil {
		if claimed {
			// The request context may already be done.
			if relErr := s.guard.Release(context.WithoutCancel(ctx), key); relErr != nil {
				s.log.Warn().Err(relErr).Str("key", key).Msg("failed to release idempotency key")
			}
		}
		metrics.BalanceOperationsTotal.WithLabelValues(string(op), resultLabel(err)).Inc()
		return err
	}

	metrics.BalanceOperationsTotal.WithLabelValues(string(op), "ok").Inc()
	return nil
}

// claim reports whether key is now held by this request. An unavailable
// guard lets the operation proceed unprotected.
func (s *BalanceService) claim(ctx context.Context, key string) (bool, error) {
	if s.guard == nil || key == "" {
		return false, nil
	}

	ok, err := s.guard.Claim(ctx, key)
	if err != nil {
		metrics.IdempotencyTotal.WithLabelValues("unavailable").Inc()
		s.log.Warn().Err(err).Str("key", key).Msg("idempotency check failed, processing anyway")
		return false, nil
	}
	if !ok {
		metrics.IdempotencyTotal.WithLabelValues("duplicate").Inc()
		s.log.Debug().Str("key", key).Msg("duplicate balance request rejected")
		return false, domain.ErrDuplicateRequest
	}

	metrics.IdempotencyTotal.WithLabelValues("claimed").Inc()
	return true, nil
}

func idempotencyKey(op domain.BalanceOperation, userID int64, key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("idempotency:%s:%d:%s", op, userID, key)
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDuplicateRequest):
		return "duplicate"
	default:
		return "error"
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// NopJournal discards every event. It stands in when no journal store is
// configured.
type NopJournal struct{}

func (NopJournal) Record(domain.BalanceEvent) {}

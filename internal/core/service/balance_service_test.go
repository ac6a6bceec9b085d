package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/core/ports"
)

type balanceFixture struct {
	store   *memStore
	journal *recordingJournal
	history *stubJournalStore
	guard   *stubGuard
	svc     *BalanceService
}

func newBalanceFixture() *balanceFixture {
	f := &balanceFixture{
		store:   newMemStore(),
		journal: &recordingJournal{},
		history: &stubJournalStore{},
		guard:   newStubGuard(),
	}
	f.svc = NewBalanceService(
		stubUserRepo{f.store},
		stubBalanceRepo{f.store},
		f.journal,
		f.history,
		f.guard,
		zerolog.Nop(),
	)
	return f
}

func TestDepositAndSpend(t *testing.T) {
	f := newBalanceFixture()
	u := f.store.seedUser(domain.User{Name: "alice", Balance: 100})
	ctx := context.Background()

	got, err := f.svc.Deposit(ctx, u.ID, 50, ports.OperationMeta{})
	if err != nil || got.Balance != 150 {
		t.Fatalf("deposit: balance=%v err=%v", got, err)
	}

	got, err = f.svc.Spend(ctx, u.ID, 200, ports.OperationMeta{RequestID: "req-1"})
	if err != nil {
		t.Fatalf("spend: %v", err)
	}
	if got.Balance != -50 {
		t.Errorf("expected overdraft to -50, got %d", got.Balance)
	}

	if len(f.journal.events) != 2 {
		t.Fatalf("expected 2 journal events, got %d", len(f.journal.events))
	}
	spend := f.journal.events[1]
	if spend.Kind != domain.OpSpend || spend.Amount != -200 || spend.BalanceAfter != -50 || spend.RequestID != "req-1" {
		t.Errorf("unexpected spend event: %+v", spend)
	}
}

func TestDeposit_UnknownUser(t *testing.T) {
	f := newBalanceFixture()

	_, err := f.svc.Deposit(context.Background(), 42, 10, ports.OperationMeta{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(f.journal.events) != 0 {
		t.Error("failed operation must not be journaled")
	}
}

func TestPurchase(t *testing.T) {
	f := newBalanceFixture()
	u := f.store.seedUser(domain.User{Name: "alice", Balance: 500})
	p := f.store.seedProduct(domain.Product{Name: "Mate", Price: 150})

	got, err := f.svc.Purchase(context.Background(), u.ID, p.ID, ports.OperationMeta{})
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if got.Balance != 350 {
		t.Errorf("expected 350, got %d", got.Balance)
	}

	ev := f.journal.events[0]
	if ev.Kind != domain.OpPurchase || ev.Amount != -150 || ev.ProductID == nil || *ev.ProductID != p.ID {
		t.Errorf("unexpected purchase event: %+v", ev)
	}
}

func TestPurchase_UnknownProduct(t *testing.T) {
	f := newBalanceFixture()
	u := f.store.seedUser(domain.User{Name: "alice", Balance: 500})

	_, err := f.svc.Purchase(context.Background(), u.ID, 999, ports.OperationMeta{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if f.store.users[u.ID].Balance != 500 {
		t.Error("balance must be unchanged")
	}
}

func TestTransfer(t *testing.T) {
	f := newBalanceFixture()
	a := f.store.seedUser(domain.User{Name: "a", Balance: 100})
	b := f.store.seedUser(domain.User{Name: "b", Balance: 50})

	res, err := f.svc.Transfer(context.Background(), ports.TransferInput{SenderID: a.ID, ReceiverID: b.ID, Amount: 30})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if res.Sender.Balance != 70 || res.Receiver.Balance != 80 {
		t.Errorf("expected 70/80, got %d/%d", res.Sender.Balance, res.Receiver.Balance)
	}

	if len(f.journal.events) != 2 {
		t.Fatalf("expected one event per side, got %d", len(f.journal.events))
	}
	out, in := f.journal.events[0], f.journal.events[1]
	if out.UserID != a.ID || out.Amount != -30 || *out.CounterpartyID != b.ID {
		t.Errorf("unexpected sender event: %+v", out)
	}
	if in.UserID != b.ID || in.Amount != 30 || *in.CounterpartyID != a.ID {
		t.Errorf("unexpected receiver event: %+v", in)
	}
}

func TestTransfer_MissingReceiverLeavesSender(t *testing.T) {
	f := newBalanceFixture()
	a := f.store.seedUser(domain.User{Name: "a", Balance: 100})

	_, err := f.svc.Transfer(context.Background(), ports.TransferInput{SenderID: a.ID, ReceiverID: 404, Amount: 30})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if f.store.users[a.ID].Balance != 100 {
		t.Errorf("sender debited: %d", f.store.users[a.ID].Balance)
	}
}

func TestTransfer_Self(t *testing.T) {
	f := newBalanceFixture()
	a := f.store.seedUser(domain.User{Name: "a", Balance: 100})

	_, err := f.svc.Transfer(context.Background(), ports.TransferInput{SenderID: a.ID, ReceiverID: a.ID, Amount: 1})
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestIdempotency_DuplicateRejected(t *testing.T) {
	f := newBalanceFixture()
	u := f.store.seedUser(domain.User{Name: "a", Balance: 0})
	meta := ports.OperationMeta{IdempotencyKey: "k1"}
	ctx := context.Background()

	if _, err := f.svc.Deposit(ctx, u.ID, 10, meta); err != nil {
		t.Fatalf("first deposit: %v", err)
	}
	_, err := f.svc.Deposit(ctx, u.ID, 10, meta)
	if !errors.Is(err, domain.ErrDuplicateRequest) {
		t.Fatalf("expected ErrDuplicateRequest, got %v", err)
	}
	if f.store.users[u.ID].Balance != 10 {
		t.Errorf("expected balance applied once, got %d", f.store.users[u.ID].Balance)
	}

	// The same key for a different operation is independent.
	if _, err := f.svc.Spend(ctx, u.ID, 10, meta); err != nil {
		t.Fatalf("spend with same key: %v", err)
	}
}

func TestIdempotency_ReleasedOnFailure(t *testing.T) {
	f := newBalanceFixture()
	u := f.store.seedUser(domain.User{Name: "a"})
	f.store.writeErr = errors.New("disk full")
	meta := ports.OperationMeta{IdempotencyKey: "k1"}

	if _, err := f.svc.Deposit(context.Background(), u.ID, 10, meta); err == nil {
		t.Fatal("expected write error")
	}
	if len(f.guard.released) != 1 {
		t.Fatalf("expected claim released, got %v", f.guard.released)
	}

	f.store.writeErr = nil
	if _, err := f.svc.Deposit(context.Background(), u.ID, 10, meta); err != nil {
		t.Fatalf("retry should succeed: %v", err)
	}
}

func TestIdempotency_GuardUnavailableProceeds(t *testing.T) {
	f := newBalanceFixture()
	u := f.store.seedUser(domain.User{Name: "a"})
	f.guard.claimErr = errors.New("redis down")

	got, err := f.svc.Deposit(context.Background(), u.ID, 10, ports.OperationMeta{IdempotencyKey: "k"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got.Balance != 10 {
		t.Errorf("expected 10, got %d", got.Balance)
	}
}

func TestIdempotency_NoKeySkipsGuard(t *testing.T) {
	f := newBalanceFixture()
	u := f.store.seedUser(domain.User{Name: "a"})

	if _, err := f.svc.Deposit(context.Background(), u.ID, 1, ports.OperationMeta{}); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if f.guard.claimCalls != 0 {
		t.Errorf("guard consulted without a key")
	}
}

func TestHistory(t *testing.T) {
	f := newBalanceFixture()
	u := f.store.seedUser(domain.User{Name: "a"})
	f.history.events = []domain.BalanceEvent{{UserID: u.ID, Kind: domain.OpDeposit, Amount: 5}, {UserID: 77}}
	ctx := context.Background()

	events, err := f.svc.History(ctx, u.ID, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(events) != 1 || f.history.lastLimit != defaultHistoryLimit {
		t.Errorf("got %d events with limit %d", len(events), f.history.lastLimit)
	}

	if _, err := f.svc.History(ctx, u.ID, 10_000); err != nil {
		t.Fatalf("history: %v", err)
	}
	if f.history.lastLimit != maxHistoryLimit {
		t.Errorf("expected limit capped at %d, got %d", maxHistoryLimit, f.history.lastLimit)
	}

	if _, err := f.svc.History(ctx, 404, 10); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHistory_JournalDisabled(t *testing.T) {
	store := newMemStore()
	u := store.seedUser(domain.User{Name: "a"})
	svc := NewBalanceService(stubUserRepo{store}, stubBalanceRepo{store}, nil, nil, nil, zerolog.Nop())

	events, err := svc.History(context.Background(), u.ID, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", events)
	}

	if _, err := svc.Deposit(context.Background(), u.ID, 3, ports.OperationMeta{IdempotencyKey: "x"}); err != nil {
		t.Fatalf("deposit without journal or guard: %v", err)
	}
}

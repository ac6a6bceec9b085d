package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/space-market/pos-server/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory store shared by the product, user and balance stubs.
// ---------------------------------------------------------------------------

type memStore struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]*domain.Product
	users    map[int64]*domain.User

	createErr error
	updateErr error
	listErr   error
	writeErr  error // fails balance writes after lookups succeed
}

func newMemStore() *memStore {
	return &memStore{products: map[int64]*domain.Product{}, users: map[int64]*domain.User{}}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) seedUser(u domain.User) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = m.id()
	m.users[u.ID] = &u
	return &u
}

func (m *memStore) seedProduct(p domain.Product) *domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.id()
	m.products[p.ID] = &p
	return &p
}

type stubProductRepo struct{ *memStore }

func (r stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	c := *p
	return &c, nil
}

func (r stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return domain.ErrConflict
		}
	}
	p.ID = r.id()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	c := *p
	r.products[p.ID] = &c
	return nil
}

func (r stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.products {
		if id != p.ID && existing.Name == p.Name {
			return domain.ErrConflict
		}
	}
	p.UpdatedAt = time.Now().UTC()
	c := *p
	r.products[p.ID] = &c
	return nil
}

func (r stubProductRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type stubUserRepo struct{ *memStore }

func (r stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	c := *u
	return &c, nil
}

func (r stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Name == u.Name {
			return domain.ErrConflict
		}
	}
	u.ID = r.id()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	c := *u
	r.users[u.ID] = &c
	return nil
}

// Update mirrors the SQL store: the stored balance survives unless
// setBalance is true.
func (r stubUserRepo) Update(_ context.Context, u *domain.User, setBalance bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if !setBalance {
		u.Balance = stored.Balance
	}
	u.UpdatedAt = time.Now().UTC()
	c := *u
	r.users[u.ID] = &c
	return nil
}

func (r stubUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type stubBalanceRepo struct{ *memStore }

func (r stubBalanceRepo) AdjustBalance(_ context.Context, userID, delta int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if r.writeErr != nil {
		return nil, r.writeErr
	}
	u.Balance += delta
	c := *u
	return &c, nil
}

func (r stubBalanceRepo) Purchase(_ context.Context, userID, productID int64) (*domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return nil, 0, domain.ErrNotFound
	}
	u, ok := r.users[userID]
	if !ok {
		return nil, 0, domain.ErrNotFound
	}
	u.Balance -= p.Price
	c := *u
	return &c, p.Price, nil
}

func (r stubBalanceRepo) Transfer(_ context.Context, senderID, receiverID, amount int64) (*domain.User, *domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.users[senderID]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	rc, ok := r.users[receiverID]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	if r.writeErr != nil {
		return nil, nil, r.writeErr
	}
	s.Balance -= amount
	rc.Balance += amount
	sc, rcc := *s, *rc
	return &sc, &rcc, nil
}

// ---------------------------------------------------------------------------
// Journal and idempotency stubs.
// ---------------------------------------------------------------------------

type recordingJournal struct {
	events []domain.BalanceEvent
}

func (j *recordingJournal) Record(e domain.BalanceEvent) {
	j.events = append(j.events, e)
}

type stubJournalStore struct {
	events    []domain.BalanceEvent
	err       error
	lastLimit int
}

func (s *stubJournalStore) Insert(_ context.Context, e *domain.BalanceEvent) error {
	s.events = append(s.events, *e)
	return nil
}

func (s *stubJournalStore) ListByUser(_ context.Context, userID int64, limit int) ([]domain.BalanceEvent, error) {
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.BalanceEvent
	for _, e := range s.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubGuard struct {
	held       map[string]bool
	claimErr   error
	released   []string
	claimCalls int
}

func newStubGuard() *stubGuard {
	return &stubGuard{held: map[string]bool{}}
}

func (g *stubGuard) Claim(_ context.Context, key string) (bool, error) {
	g.claimCalls++
	if g.claimErr != nil {
		return false, g.claimErr
	}
	if g.held[key] {
		return false, nil
	}
	g.held[key] = true
	return true, nil
}

func (g *stubGuard) Release(_ context.Context, key string) error {
	delete(g.held, key)
	g.released = append(g.released, key)
	return nil
}

// Package accountrepo manages the repository layer of accounts. The store is
// in-memory: persistence between sessions belongs to an external layer, so
// the account set held here is the engine state itself.
package accountrepo

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-bic/bic-bank/internal/domain"
)

// RepoMem holds every account and the routing-key index behind a single
// lock. All mutating operations run their whole read-modify-write sequence
// inside the critical section, so balance changes and history appends land
// atomically and records gain a total order per account.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	keys     map[domain.KeyKind]map[string]string
}

// NewRepoMem returns an empty account store.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		accounts: make(map[string]*domain.Account),
		keys:     make(map[domain.KeyKind]map[string]string),
	}
}

func snapshot(a *domain.Account) domain.Account {
	cp := *a

	cp.History = make([]domain.Transaction, len(a.History))
	copy(cp.History, a.History)

	cp.Notifications = make([]domain.Transaction, len(a.Notifications))
	copy(cp.Notifications, a.Notifications)

	return cp
}

// Create stores the account and returns its snapshot.
func (r *RepoMem) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; ok {
		l.Error().Str("account_id", account.ID).Msg("duplicate account id from generator")
		return domain.Account{}, domain.ErrAccountAlreadyExists
	}

	stored := account
	r.accounts[account.ID] = &stored

	return snapshot(&stored), nil
}

// Get returns a snapshot of the account with the given id.
func (r *RepoMem) Get(ctx context.Context, id string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return snapshot(a), nil
}

// List returns snapshots of the accounts owned by the given client, in
// unspecified order.
func (r *RepoMem) List(ctx context.Context, owner string) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []domain.Account{}

	for _, a := range r.accounts {
		if a.Owner == owner {
			items = append(items, snapshot(a))
		}
	}

	return items, nil
}

// Update applies fn to the account under the store lock. If fn returns an
// error no mutation is published and the error is passed through unchanged.
func (r *RepoMem) Update(ctx context.Context, id string, fn func(a *domain.Account) error) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	// fn validates every precondition before touching any field, so a
	// returned error means the account is untouched.
	if err := fn(a); err != nil {
		return domain.Account{}, err
	}

	return snapshot(a), nil
}

// UpdatePair applies fn to two accounts inside one critical section so that
// a debit, the matching credit and both history appends land atomically.
// Self-transfers receive the same account twice.
func (r *RepoMem) UpdatePair(ctx context.Context, fromID, toID string, fn func(from, to *domain.Account) error) (domain.Account, domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	from, ok := r.accounts[fromID]
	if !ok {
		return domain.Account{}, domain.Account{}, domain.ErrAccountNotFound
	}

	to, ok := r.accounts[toID]
	if !ok {
		return domain.Account{}, domain.Account{}, domain.ErrAccountNotFound
	}

	if err := fn(from, to); err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	return snapshot(from), snapshot(to), nil
}

// RegisterKey adds a routing key to the index, rejecting duplicates and keys
// for unknown accounts.
func (r *RepoMem) RegisterKey(ctx context.Context, key domain.PixKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[key.AccountID]; !ok {
		return domain.ErrAccountNotFound
	}

	byValue, ok := r.keys[key.Kind]
	if !ok {
		byValue = make(map[string]string)
		r.keys[key.Kind] = byValue
	}

	if _, taken := byValue[key.Value]; taken {
		return domain.ErrPixKeyTaken
	}

	byValue[key.Value] = key.AccountID

	return nil
}

// ResolveKey returns the account id a routing key names.
func (r *RepoMem) ResolveKey(ctx context.Context, kind domain.KeyKind, value string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.keys[kind][value]
	if !ok {
		return "", domain.ErrPixKeyNotFound
	}

	return id, nil
}

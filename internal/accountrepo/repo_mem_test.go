package accountrepo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-bic/bic-bank/internal/domain"
)

func seedAccount(t *testing.T, repo *RepoMem, id, owner, balance string) {
	t.Helper()

	_, err := repo.Create(context.Background(), domain.Account{
		ID:      id,
		Owner:   owner,
		Tier:    domain.TierStandard,
		Balance: decimal.RequireFromString(balance),
	})
	require.NoError(t, err)
}

func TestCreateAndGet(t *testing.T) {
	repo := NewRepoMem()

	seedAccount(t, repo, "11111111", "alice", "100")

	got, err := repo.Get(context.Background(), "11111111")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Owner)
	require.True(t, got.Balance.Equal(decimal.RequireFromString("100")))

	_, err = repo.Get(context.Background(), "77777777")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = repo.Create(context.Background(), domain.Account{ID: "11111111", Owner: "bob"})
	require.ErrorIs(t, err, domain.ErrAccountAlreadyExists)
}

func TestList(t *testing.T) {
	repo := NewRepoMem()

	seedAccount(t, repo, "11111111", "alice", "0")
	seedAccount(t, repo, "22222222", "alice", "0")
	seedAccount(t, repo, "33333333", "bob", "0")

	accounts, err := repo.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	accounts, err = repo.List(context.Background(), "nobody")
	require.NoError(t, err)
	require.Empty(t, accounts)
}

func TestSnapshotIsolation(t *testing.T) {
	repo := NewRepoMem()

	seedAccount(t, repo, "11111111", "alice", "100")

	_, err := repo.Update(context.Background(), "11111111", func(a *domain.Account) error {
		a.AddHistory(domain.Transaction{ID: "tx-1"})
		return nil
	})
	require.NoError(t, err)

	first, err := repo.Get(context.Background(), "11111111")
	require.NoError(t, err)

	// Mutating a snapshot must not leak into the store.
	first.Balance = decimal.RequireFromString("999")
	first.History[0].ID = "mangled"
	first.History = append(first.History, domain.Transaction{ID: "tx-2"})

	second, err := repo.Get(context.Background(), "11111111")
	require.NoError(t, err)
	require.True(t, second.Balance.Equal(decimal.RequireFromString("100")))
	require.Len(t, second.History, 1)
	require.Equal(t, "tx-1", second.History[0].ID)
}

func TestUpdateErrorPublishesNothing(t *testing.T) {
	repo := NewRepoMem()

	seedAccount(t, repo, "11111111", "alice", "100")

	sentinel := errors.New("validation failed")

	_, err := repo.Update(context.Background(), "11111111", func(a *domain.Account) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = repo.Update(context.Background(), "77777777", func(a *domain.Account) error {
		return nil
	})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUpdatePair(t *testing.T) {
	repo := NewRepoMem()

	seedAccount(t, repo, "11111111", "alice", "100")
	seedAccount(t, repo, "22222222", "bob", "0")

	from, to, err := repo.UpdatePair(context.Background(), "11111111", "22222222",
		func(from, to *domain.Account) error {
			if err := from.Debit(decimal.RequireFromString("40")); err != nil {
				return err
			}

			to.Credit(decimal.RequireFromString("40"))

			return nil
		})
	require.NoError(t, err)
	require.True(t, from.Balance.Equal(decimal.RequireFromString("60")))
	require.True(t, to.Balance.Equal(decimal.RequireFromString("40")))

	_, _, err = repo.UpdatePair(context.Background(), "11111111", "77777777",
		func(from, to *domain.Account) error { return nil })
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUpdatePairSelf(t *testing.T) {
	repo := NewRepoMem()

	seedAccount(t, repo, "11111111", "alice", "100")

	// Both pointers must alias the same account so the callback can detect
	// a self-pair.
	_, _, err := repo.UpdatePair(context.Background(), "11111111", "11111111",
		func(from, to *domain.Account) error {
			require.Same(t, from, to)
			return nil
		})
	require.NoError(t, err)
}

func TestConcurrentUpdates(t *testing.T) {
	repo := NewRepoMem()

	seedAccount(t, repo, "11111111", "alice", "0")

	const workers = 20
	const perWorker = 25

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < perWorker; j++ {
				_, err := repo.Update(context.Background(), "11111111", func(a *domain.Account) error {
					a.Credit(decimal.NewFromInt(1))
					a.AddHistory(domain.Transaction{})
					return nil
				})
				require.NoError(t, err)
			}
		}()
	}

	wg.Wait()

	got, err := repo.Get(context.Background(), "11111111")
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.NewFromInt(workers*perWorker)))
	require.Len(t, got.History, workers*perWorker)
}

func TestKeyIndex(t *testing.T) {
	repo := NewRepoMem()

	seedAccount(t, repo, "11111111", "alice", "0")

	key := domain.PixKey{Kind: domain.KeyKindEmail, Value: "alice@example.com", AccountID: "11111111"}

	require.NoError(t, repo.RegisterKey(context.Background(), key))

	id, err := repo.ResolveKey(context.Background(), domain.KeyKindEmail, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "11111111", id)

	// The same value under another kind is a different key.
	_, err = repo.ResolveKey(context.Background(), domain.KeyKindPhone, "alice@example.com")
	require.ErrorIs(t, err, domain.ErrPixKeyNotFound)

	err = repo.RegisterKey(context.Background(), key)
	require.ErrorIs(t, err, domain.ErrPixKeyTaken)

	err = repo.RegisterKey(context.Background(), domain.PixKey{
		Kind: domain.KeyKindPhone, Value: "11999998888", AccountID: "77777777",
	})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

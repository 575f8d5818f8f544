package accountservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-bic/bic-bank/internal/accountrepo"
	"github.com/go-bic/bic-bank/internal/domain"
)

type stubGen struct {
	n int
}

func (g *stubGen) next(prefix string) string {
	g.n++
	return fmt.Sprintf("%s-%d", prefix, g.n)
}

func (g *stubGen) AccountID() string        { return g.next("acc") }
func (g *stubGen) TransactionID() string    { return g.next("tx") }
func (g *stubGen) SettlementNumber() string { return g.next("stl") }
func (g *stubGen) PixToken() string         { return g.next("token") }

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestCreate(t *testing.T) {
	repo := accountrepo.NewRepoMem()
	service := New(repo, &stubGen{})

	account, err := service.Create(context.Background(), "alice", domain.TierPremium)
	require.NoError(t, err)

	require.Equal(t, "acc-1", account.ID)
	require.Equal(t, "alice", account.Owner)
	require.Equal(t, domain.TierPremium, account.Tier)
	requireDecimalEqual(t, "0", account.Balance)
	requireDecimalEqual(t, "0", account.DepositedToday)
	require.Empty(t, account.History)

	_, err = service.Create(context.Background(), "bob", domain.Tier("GOLD"))
	require.ErrorIs(t, err, domain.ErrUnknownTier)
}

func TestDeposit(t *testing.T) {
	testCases := []struct {
		name               string
		tier               domain.Tier
		depositedToday     string
		amount             string
		wantErr            error
		wantBalance        string
		wantDepositedToday string
	}{
		{
			name:               "OK",
			tier:               domain.TierStandard,
			depositedToday:     "0",
			amount:             "500",
			wantBalance:        "500",
			wantDepositedToday: "500",
		},
		{
			name:               "ExactlyAtCeiling",
			tier:               domain.TierStandard,
			depositedToday:     "900",
			amount:             "100",
			wantBalance:        "100",
			wantDepositedToday: "1000",
		},
		{
			name:           "CeilingBreach",
			tier:           domain.TierStandard,
			depositedToday: "900",
			amount:         "101",
			wantErr: &domain.InvalidValueError{
				Cause: "deposit of 101 exceeds the daily ceiling of 1000 for tier STANDARD",
			},
		},
		{
			name:           "PremiumCeilingBreach",
			tier:           domain.TierPremium,
			depositedToday: "0",
			amount:         "50001",
			wantErr: &domain.InvalidValueError{
				Cause: "deposit of 50001 exceeds the daily ceiling of 50000 for tier PREMIUM",
			},
		},
		{
			name:           "DiamondCeilingBreach",
			tier:           domain.TierDiamond,
			depositedToday: "0",
			amount:         "80001",
			wantErr: &domain.InvalidValueError{
				Cause: "deposit of 80001 exceeds the daily ceiling of 80000 for tier DIAMOND",
			},
		},
		{
			name:               "PremiumAtCeiling",
			tier:               domain.TierPremium,
			depositedToday:     "0",
			amount:             "50000",
			wantBalance:        "50000",
			wantDepositedToday: "50000",
		},
		{
			name:    "ZeroAmount",
			tier:    domain.TierStandard,
			amount:  "0",
			wantErr: domain.ErrNonPositiveAmount,
		},
		{
			name:    "NegativeAmount",
			tier:    domain.TierStandard,
			amount:  "-100",
			wantErr: domain.ErrNonPositiveAmount,
		},
		{
			name:    "MalformedAmount",
			tier:    domain.TierStandard,
			amount:  "abc",
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			repo := accountrepo.NewRepoMem()
			service := New(repo, &stubGen{})

			account, err := service.Create(context.Background(), "alice", tc.tier)
			require.NoError(t, err)

			if tc.depositedToday != "" && tc.depositedToday != "0" {
				_, err = repo.Update(context.Background(), account.ID, func(a *domain.Account) error {
					a.DepositedToday = decimal.RequireFromString(tc.depositedToday)
					return nil
				})
				require.NoError(t, err)
			}

			got, err := service.Deposit(context.Background(), account.ID, tc.amount)

			if tc.wantErr != nil {
				require.EqualError(t, err, tc.wantErr.Error())

				unchanged, getErr := repo.Get(context.Background(), account.ID)
				require.NoError(t, getErr)
				requireDecimalEqual(t, "0", unchanged.Balance)
				require.Empty(t, unchanged.History)

				return
			}

			require.NoError(t, err)
			requireDecimalEqual(t, tc.wantBalance, got.Balance)
			requireDecimalEqual(t, tc.wantDepositedToday, got.DepositedToday)

			// A deposit is a self-transfer: one record, both ends this account.
			require.Len(t, got.History, 1)
			record := got.History[0]
			require.Equal(t, account.ID, record.FromAccountID)
			require.Equal(t, account.ID, record.ToAccountID)
			requireDecimalEqual(t, tc.amount, record.Amount)
			require.NotEmpty(t, record.ID)
			require.NotEmpty(t, record.SettlementNumber)
			require.Empty(t, got.Notifications)
		})
	}
}

func TestDepositNonPositiveIsPlainRejection(t *testing.T) {
	// Non-positive amounts are plain rejections, not message-carrying
	// violations like a ceiling breach.
	repo := accountrepo.NewRepoMem()
	service := New(repo, &stubGen{})

	account, err := service.Create(context.Background(), "alice", domain.TierStandard)
	require.NoError(t, err)

	_, err = service.Deposit(context.Background(), account.ID, "-1")
	require.ErrorIs(t, err, domain.ErrNonPositiveAmount)

	var invalid *domain.InvalidValueError
	require.False(t, errors.As(err, &invalid))
}

func TestDepositAccountNotFound(t *testing.T) {
	service := New(accountrepo.NewRepoMem(), &stubGen{})

	_, err := service.Deposit(context.Background(), "77777777", "100")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestResetDailyDeposits(t *testing.T) {
	repo := accountrepo.NewRepoMem()
	service := New(repo, &stubGen{})

	account, err := service.Create(context.Background(), "alice", domain.TierStandard)
	require.NoError(t, err)

	_, err = service.Deposit(context.Background(), account.ID, "1000")
	require.NoError(t, err)

	got, err := service.ResetDailyDeposits(context.Background(), account.ID)
	require.NoError(t, err)

	requireDecimalEqual(t, "0", got.DepositedToday)
	requireDecimalEqual(t, "1000", got.Balance)

	// The ceiling window starts over after the reset.
	got, err = service.Deposit(context.Background(), account.ID, "1000")
	require.NoError(t, err)
	requireDecimalEqual(t, "2000", got.Balance)
}

func TestHistoryOrder(t *testing.T) {
	repo := accountrepo.NewRepoMem()
	service := New(repo, &stubGen{})

	account, err := service.Create(context.Background(), "alice", domain.TierDiamond)
	require.NoError(t, err)

	amounts := []string{"10", "20", "30"}
	for _, amount := range amounts {
		_, err = service.Deposit(context.Background(), account.ID, amount)
		require.NoError(t, err)
	}

	history, err := service.History(context.Background(), account.ID)
	require.NoError(t, err)
	require.Len(t, history, len(amounts))

	for i, amount := range amounts {
		requireDecimalEqual(t, amount, history[i].Amount)
	}

	notifications, err := service.Notifications(context.Background(), account.ID)
	require.NoError(t, err)
	require.Empty(t, notifications)
}

func TestList(t *testing.T) {
	repo := accountrepo.NewRepoMem()
	service := New(repo, &stubGen{})

	_, err := service.Create(context.Background(), "alice", domain.TierStandard)
	require.NoError(t, err)
	_, err = service.Create(context.Background(), "alice", domain.TierPremium)
	require.NoError(t, err)
	_, err = service.Create(context.Background(), "bob", domain.TierStandard)
	require.NoError(t, err)

	accounts, err := service.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
}

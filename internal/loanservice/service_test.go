package loanservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-bic/bic-bank/internal/accountrepo"
	"github.com/go-bic/bic-bank/internal/domain"
)

func seedAccount(t *testing.T, repo *accountrepo.RepoMem, balance string) domain.Account {
	t.Helper()

	account := domain.Account{
		ID:              "11111111",
		Owner:           "owner",
		Tier:            domain.TierStandard,
		Balance:         decimal.RequireFromString(balance),
		DepositedToday:  decimal.Zero,
		LoanPrincipal:   decimal.Zero,
		LoanInstallment: decimal.Zero,
	}

	created, err := repo.Create(context.Background(), account)
	require.NoError(t, err)

	return created
}

func setLoanState(t *testing.T, repo *accountrepo.RepoMem, id, principal, installment string) {
	t.Helper()

	_, err := repo.Update(context.Background(), id, func(a *domain.Account) error {
		a.LoanPrincipal = decimal.RequireFromString(principal)
		a.LoanInstallment = decimal.RequireFromString(installment)
		return nil
	})
	require.NoError(t, err)
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name            string
		balance         string
		amount          string
		installments    int32
		wantErr         error
		wantBalance     string
		wantPrincipal   string
		wantInstallment string
	}{
		{
			name:            "OK",
			balance:         "0",
			amount:          "500",
			installments:    5,
			wantBalance:     "500",
			wantPrincipal:   "500",
			wantInstallment: "100",
		},
		{
			name:            "ProceedsAddToExistingBalance",
			balance:         "250",
			amount:          "1200",
			installments:    12,
			wantBalance:     "1450",
			wantPrincipal:   "1200",
			wantInstallment: "100",
		},
		{
			name:    "InvalidAmount",
			balance: "0",
			amount:  "abc",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:         "NegativeAmount",
			balance:      "0",
			amount:       "-500",
			installments: 5,
			wantErr:      &domain.InvalidValueError{Cause: "loan amount must be positive"},
		},
		{
			name:         "ZeroInstallments",
			balance:      "0",
			amount:       "500",
			installments: 0,
			wantErr:      &domain.InvalidValueError{Cause: "loan must have at least one installment"},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			repo := accountrepo.NewRepoMem()
			account := seedAccount(t, repo, tc.balance)
			service := New(repo)

			got, err := service.Create(context.Background(), account.ID, tc.amount, tc.installments)

			if tc.wantErr != nil {
				require.EqualError(t, err, tc.wantErr.Error())

				unchanged, getErr := repo.Get(context.Background(), account.ID)
				require.NoError(t, getErr)
				requireDecimalEqual(t, tc.balance, unchanged.Balance)
				requireDecimalEqual(t, "0", unchanged.LoanPrincipal)

				return
			}

			require.NoError(t, err)
			requireDecimalEqual(t, tc.wantBalance, got.Balance)
			requireDecimalEqual(t, tc.wantPrincipal, got.LoanPrincipal)
			requireDecimalEqual(t, tc.wantInstallment, got.LoanInstallment)
		})
	}
}

func TestCreateWhileActive(t *testing.T) {
	repo := accountrepo.NewRepoMem()
	account := seedAccount(t, repo, "0")
	service := New(repo)

	_, err := service.Create(context.Background(), account.ID, "500", 5)
	require.NoError(t, err)

	_, err = service.Create(context.Background(), account.ID, "100", 2)
	require.ErrorIs(t, err, domain.ErrLoanAlreadyActive)
}

func TestPay(t *testing.T) {
	t.Run("SettlesInFull", func(t *testing.T) {
		repo := accountrepo.NewRepoMem()
		account := seedAccount(t, repo, "0")
		service := New(repo)

		_, err := service.Create(context.Background(), account.ID, "500", 5)
		require.NoError(t, err)

		got, err := service.Pay(context.Background(), account.ID)
		require.NoError(t, err)

		requireDecimalEqual(t, "0", got.Balance)
		requireDecimalEqual(t, "0", got.LoanPrincipal)
		requireDecimalEqual(t, "0", got.LoanInstallment)
	})

	t.Run("PaysOnlyTheRemainder", func(t *testing.T) {
		// The remaining principal is smaller than the nominal
		// installment; paying in full must debit only the remainder.
		repo := accountrepo.NewRepoMem()
		account := seedAccount(t, repo, "100")
		service := New(repo)

		setLoanState(t, repo, account.ID, "50", "100")

		got, err := service.Pay(context.Background(), account.ID)
		require.NoError(t, err)

		requireDecimalEqual(t, "50", got.Balance)
		requireDecimalEqual(t, "0", got.LoanPrincipal)
		requireDecimalEqual(t, "0", got.LoanInstallment)
	})

	t.Run("InsufficientBalance", func(t *testing.T) {
		repo := accountrepo.NewRepoMem()
		account := seedAccount(t, repo, "100")
		service := New(repo)

		setLoanState(t, repo, account.ID, "1000", "100")

		_, err := service.Pay(context.Background(), account.ID)
		require.ErrorIs(t, err, domain.ErrLoanInsufficientBalance)

		unchanged, getErr := repo.Get(context.Background(), account.ID)
		require.NoError(t, getErr)
		requireDecimalEqual(t, "100", unchanged.Balance)
		requireDecimalEqual(t, "1000", unchanged.LoanPrincipal)
		requireDecimalEqual(t, "100", unchanged.LoanInstallment)
	})

	t.Run("NoActiveLoan", func(t *testing.T) {
		repo := accountrepo.NewRepoMem()
		account := seedAccount(t, repo, "100")
		service := New(repo)

		_, err := service.Pay(context.Background(), account.ID)
		require.ErrorIs(t, err, domain.ErrNoActiveLoan)
	})
}

func TestPayInstallment(t *testing.T) {
	t.Run("NominalInstallment", func(t *testing.T) {
		repo := accountrepo.NewRepoMem()
		account := seedAccount(t, repo, "0")
		service := New(repo)

		_, err := service.Create(context.Background(), account.ID, "600", 6)
		require.NoError(t, err)

		got, err := service.PayInstallment(context.Background(), account.ID)
		require.NoError(t, err)

		requireDecimalEqual(t, "500", got.Balance)
		requireDecimalEqual(t, "500", got.LoanPrincipal)
		// While principal remains, the installment stays frozen.
		requireDecimalEqual(t, "100", got.LoanInstallment)
	})

	t.Run("FinalInstallmentClippedToPrincipal", func(t *testing.T) {
		repo := accountrepo.NewRepoMem()
		account := seedAccount(t, repo, "100")
		service := New(repo)

		setLoanState(t, repo, account.ID, "50", "100")

		got, err := service.PayInstallment(context.Background(), account.ID)
		require.NoError(t, err)

		requireDecimalEqual(t, "50", got.Balance)
		requireDecimalEqual(t, "0", got.LoanPrincipal)
		requireDecimalEqual(t, "0", got.LoanInstallment)
	})

	t.Run("InsufficientBalance", func(t *testing.T) {
		repo := accountrepo.NewRepoMem()
		account := seedAccount(t, repo, "50")
		service := New(repo)

		setLoanState(t, repo, account.ID, "500", "100")

		_, err := service.PayInstallment(context.Background(), account.ID)
		require.ErrorIs(t, err, domain.ErrLoanInsufficientBalance)

		unchanged, getErr := repo.Get(context.Background(), account.ID)
		require.NoError(t, getErr)
		requireDecimalEqual(t, "50", unchanged.Balance)
		requireDecimalEqual(t, "500", unchanged.LoanPrincipal)
		requireDecimalEqual(t, "100", unchanged.LoanInstallment)
	})

	t.Run("FullCycleReturnsToNoLoan", func(t *testing.T) {
		repo := accountrepo.NewRepoMem()
		account := seedAccount(t, repo, "0")
		service := New(repo)

		_, err := service.Create(context.Background(), account.ID, "300", 3)
		require.NoError(t, err)

		var got domain.Account
		for i := 0; i < 3; i++ {
			got, err = service.PayInstallment(context.Background(), account.ID)
			require.NoError(t, err)
		}

		requireDecimalEqual(t, "0", got.Balance)
		requireDecimalEqual(t, "0", got.LoanPrincipal)
		requireDecimalEqual(t, "0", got.LoanInstallment)

		_, err = service.PayInstallment(context.Background(), account.ID)
		require.ErrorIs(t, err, domain.ErrNoActiveLoan)
	})
}

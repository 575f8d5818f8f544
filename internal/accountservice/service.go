// Package accountservice manages the business logic layer of accounts.
package accountservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-bic/bic-bank/internal/domain"
	"github.com/go-bic/bic-bank/pkg/idpkg"
)

// Repo provides the data access layer interface needed by the account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	Get(ctx context.Context, id string) (domain.Account, error)
	List(ctx context.Context, owner string) ([]domain.Account, error)
	Update(ctx context.Context, id string, fn func(a *domain.Account) error) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
	gen  idpkg.Generator
}

// New returns an account service struct to manage account business logic.
func New(ar Repo, gen idpkg.Generator) *Service {
	return &Service{repo: ar, gen: gen}
}

// Create creates and returns an account for the given owner. The tier is
// fixed here and never changes afterwards.
func (s *Service) Create(ctx context.Context, owner string, tier domain.Tier) (domain.Account, error) {
	if !tier.Valid() {
		return domain.Account{}, domain.ErrUnknownTier
	}

	account := domain.Account{
		ID:              s.gen.AccountID(),
		Owner:           owner,
		Tier:            tier,
		Balance:         decimal.Zero,
		DepositedToday:  decimal.Zero,
		LoanPrincipal:   decimal.Zero,
		LoanInstallment: decimal.Zero,
		CreatedAt:       time.Now(),
	}

	return s.repo.Create(ctx, account)
}

// Get returns the account for the given account id.
func (s *Service) Get(ctx context.Context, id string) (domain.Account, error) {
	return s.repo.Get(ctx, id)
}

// List returns the accounts owned by the given client.
func (s *Service) List(ctx context.Context, owner string) ([]domain.Account, error) {
	return s.repo.List(ctx, owner)
}

// Deposit credits the account with amount if the tier's daily ceiling
// allows it, recording a self-referential transaction. Non-positive amounts
// are plainly rejected; a ceiling breach carries a descriptive cause.
func (s *Service) Deposit(ctx context.Context, accountID, amount string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	value, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Account{}, domain.ErrInvalidAmount
	}

	if value.LessThanOrEqual(decimal.Zero) {
		return domain.Account{}, domain.ErrNonPositiveAmount
	}

	record := domain.Transaction{
		ID:               s.gen.TransactionID(),
		SettlementNumber: s.gen.SettlementNumber(),
		Amount:           value,
		FromAccountID:    accountID,
		ToAccountID:      accountID,
		IssuedAt:         time.Now(),
	}

	return s.repo.Update(ctx, accountID, func(a *domain.Account) error {
		total := a.DepositedToday.Add(value)

		if total.GreaterThan(a.Tier.DepositCeiling()) {
			return &domain.InvalidValueError{
				Cause: "deposit of " + value.String() + " exceeds the daily ceiling of " +
					a.Tier.DepositCeiling().String() + " for tier " + string(a.Tier),
			}
		}

		a.Credit(value)
		a.DepositedToday = total
		a.AddHistory(record)

		return nil
	})
}

// ResetDailyDeposits zeroes the cumulative same-day deposit counter. The day
// boundary is driven by the surrounding layer.
func (s *Service) ResetDailyDeposits(ctx context.Context, accountID string) (domain.Account, error) {
	return s.repo.Update(ctx, accountID, func(a *domain.Account) error {
		a.DepositedToday = decimal.Zero
		return nil
	})
}

// History returns the account's transaction records in insertion order.
func (s *Service) History(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	account, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return account.History, nil
}

// Notifications returns the account's incoming-transaction alerts in
// insertion order.
func (s *Service) Notifications(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	account, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return account.Notifications, nil
}

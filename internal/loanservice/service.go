// Package loanservice manages the business logic layer of installment loans.
package loanservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-bic/bic-bank/internal/domain"
)

// Repo provides the data access layer interface needed by the loan service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package loanservice
type Repo interface {
	Update(ctx context.Context, id string, fn func(a *domain.Account) error) (domain.Account, error)
}

// Service facilitates loan service layer logic.
type Service struct {
	repo Repo
}

// New returns a loan service struct to manage loan business logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create issues a loan: the principal is credited to the balance at once and
// the installment is frozen at principal divided by the agreed count. There
// is no interest beyond the flat division.
func (s *Service) Create(ctx context.Context, accountID, amount string, installments int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	value, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Account{}, domain.ErrInvalidAmount
	}

	if value.LessThanOrEqual(decimal.Zero) {
		return domain.Account{}, &domain.InvalidValueError{Cause: "loan amount must be positive"}
	}

	if installments <= 0 {
		return domain.Account{}, &domain.InvalidValueError{Cause: "loan must have at least one installment"}
	}

	return s.repo.Update(ctx, accountID, func(a *domain.Account) error {
		if a.LoanPrincipal.IsPositive() {
			return domain.ErrLoanAlreadyActive
		}

		a.LoanPrincipal = value
		a.LoanInstallment = value.Div(decimal.NewFromInt(int64(installments)))
		a.Credit(value)

		return nil
	})
}

// Pay settles the outstanding principal in full. The balance must cover the
// whole remaining principal; on failure nothing changes.
func (s *Service) Pay(ctx context.Context, accountID string) (domain.Account, error) {
	return s.repo.Update(ctx, accountID, func(a *domain.Account) error {
		if !a.LoanPrincipal.IsPositive() {
			return domain.ErrNoActiveLoan
		}

		if a.Balance.LessThan(a.LoanPrincipal) {
			return domain.ErrLoanInsufficientBalance
		}

		if err := a.Debit(a.LoanPrincipal); err != nil {
			return domain.ErrLoanInsufficientBalance
		}

		a.LoanPrincipal = decimal.Zero
		a.LoanInstallment = decimal.Zero

		return nil
	})
}

// PayInstallment settles one installment. The amount due is the nominal
// installment clipped to the remaining principal, so the final payment can
// be smaller. On insufficient balance nothing changes.
func (s *Service) PayInstallment(ctx context.Context, accountID string) (domain.Account, error) {
	return s.repo.Update(ctx, accountID, func(a *domain.Account) error {
		if !a.LoanPrincipal.IsPositive() {
			return domain.ErrNoActiveLoan
		}

		due := a.LoanInstallment
		if a.LoanPrincipal.LessThan(due) {
			due = a.LoanPrincipal
		}

		if a.Balance.LessThan(due) {
			return domain.ErrLoanInsufficientBalance
		}

		if err := a.Debit(due); err != nil {
			return domain.ErrLoanInsufficientBalance
		}

		a.LoanPrincipal = a.LoanPrincipal.Sub(due)
		if !a.LoanPrincipal.IsPositive() {
			a.LoanInstallment = decimal.Zero
		}

		return nil
	})
}

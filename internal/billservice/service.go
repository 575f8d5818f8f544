// Package billservice manages the business logic layer of boleto settlement.
package billservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-bic/bic-bank/internal/domain"
	"github.com/go-bic/bic-bank/pkg/datepkg"
	"github.com/go-bic/bic-bank/pkg/idpkg"
)

// Repo provides the data access layer interface needed by the bill service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package billservice
type Repo interface {
	UpdatePair(ctx context.Context, fromID, toID string, fn func(from, to *domain.Account) error) (domain.Account, domain.Account, error)
}

// Service facilitates bill service layer logic.
type Service struct {
	repo Repo
	gen  idpkg.Generator
}

// New returns a bill service struct to manage boleto business logic.
func New(ar Repo, gen idpkg.Generator) *Service {
	return &Service{repo: ar, gen: gen}
}

// Create validates the boleto data and issues the boleto with a fresh
// settlement number. Zero value and zero penalty are both legal.
func (s *Service) Create(ctx context.Context, arg domain.CreateBoletoParams) (domain.Boleto, error) {
	l := zerolog.Ctx(ctx)

	value, err := decimal.NewFromString(arg.Value)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Boleto{}, domain.ErrInvalidAmount
	}

	rate, err := decimal.NewFromString(arg.LatePercentPerDay)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Boleto{}, domain.ErrInvalidAmount
	}

	if value.IsNegative() || rate.IsNegative() {
		return domain.Boleto{}, domain.ErrNegativeAmount
	}

	dueDate, err := datepkg.Parse(arg.DueDate)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Boleto{}, &domain.InvalidValueError{Cause: err.Error()}
	}

	return domain.Boleto{
		SettlementNumber:  s.gen.SettlementNumber(),
		Value:             value,
		DueDate:           dueDate,
		LatePercentPerDay: rate,
		FromAccountID:     arg.FromAccountID,
		ToAccountID:       arg.ToAccountID,
	}, nil
}

// Pay settles a boleto. The payer is debited the face value plus the late
// fee; the payee is credited the face value only, the fee being retained by
// the system. Both histories gain a record and the payee a notification.
// On insufficient balance nothing changes.
func (s *Service) Pay(ctx context.Context, boleto domain.Boleto) (domain.BillTxResult, error) {
	now := time.Now()

	lateFee := boleto.LateFee(datepkg.DaysPastDue(boleto.DueDate, now))
	required := boleto.Value.Add(lateFee)

	record := domain.Transaction{
		ID:               s.gen.TransactionID(),
		SettlementNumber: boleto.SettlementNumber,
		Amount:           boleto.Value,
		FromAccountID:    boleto.FromAccountID,
		ToAccountID:      boleto.ToAccountID,
		IssuedAt:         now,
	}

	from, to, err := s.repo.UpdatePair(ctx, boleto.FromAccountID, boleto.ToAccountID,
		func(from, to *domain.Account) error {
			if from.Balance.LessThan(required) {
				return domain.ErrInsufficientBalance
			}

			if err := from.Debit(required); err != nil {
				return err
			}

			to.Credit(boleto.Value)

			from.AddHistory(record)

			// A bill can name its payer as payee; the record then lands once.
			if from != to {
				to.AddHistory(record)
			}

			to.AddNotification(record)

			return nil
		})
	if err != nil {
		return domain.BillTxResult{}, err
	}

	return domain.BillTxResult{
		Transaction: record,
		LateFee:     lateFee,
		FromAccount: from,
		ToAccount:   to,
	}, nil
}

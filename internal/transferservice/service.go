// Package transferservice manages the business logic layer of transfers.
package transferservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-bic/bic-bank/internal/domain"
	"github.com/go-bic/bic-bank/pkg/idpkg"
)

// Repo provides the data access layer interface needed by the transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	UpdatePair(ctx context.Context, fromID, toID string, fn func(from, to *domain.Account) error) (domain.Account, domain.Account, error)
}

// KeyResolver resolves a routing key to a destination account id.
type KeyResolver interface {
	Resolve(ctx context.Context, kind domain.KeyKind, value string) (string, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo     Repo
	resolver KeyResolver
	gen      idpkg.Generator
}

// New returns a transfer service struct to manage transfer business logic.
func New(tr Repo, kr KeyResolver, gen idpkg.Generator) *Service {
	return &Service{repo: tr, resolver: kr, gen: gen}
}

// Transfer settles a movement between two accounts. The destination comes
// from the routing key when one is supplied, otherwise from the explicit
// account id. A zero amount is a legal no-op settlement that still records
// history; there are no partial transfers.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.TransferTxResult{}, domain.ErrInvalidAmount
	}

	if amount.IsNegative() {
		return domain.TransferTxResult{}, domain.ErrNegativeAmount
	}

	now := time.Now()

	if arg.ScheduledFor != nil && arg.ScheduledFor.Before(now.Truncate(24*time.Hour)) {
		return domain.TransferTxResult{}, domain.ErrScheduledDateInPast
	}

	toAccountID := arg.ToAccountID

	if arg.RoutingKey != "" {
		toAccountID, err = s.resolver.Resolve(ctx, arg.RoutingKind, arg.RoutingKey)
		if err != nil {
			l.Info().Err(err).Str("kind", string(arg.RoutingKind)).Send()
			return domain.TransferTxResult{}, err
		}
	}

	record := domain.Transaction{
		ID:               s.gen.TransactionID(),
		SettlementNumber: s.gen.SettlementNumber(),
		Amount:           amount,
		FromAccountID:    arg.FromAccountID,
		ToAccountID:      toAccountID,
		IssuedAt:         now,
		ScheduledFor:     arg.ScheduledFor,
	}

	from, to, err := s.repo.UpdatePair(ctx, arg.FromAccountID, toAccountID,
		func(from, to *domain.Account) error {
			if from.Balance.LessThan(amount) {
				return domain.ErrInsufficientBalance
			}

			if err := from.Debit(amount); err != nil {
				return err
			}

			to.Credit(amount)

			from.AddHistory(record)

			// A key can resolve back to the payer; the self-transfer
			// then affects one account and gains one record.
			if from != to {
				to.AddHistory(record)
			}

			to.AddNotification(record)

			return nil
		})
	if err != nil {
		return domain.TransferTxResult{}, err
	}

	return domain.TransferTxResult{
		Transaction: record,
		FromAccount: from,
		ToAccount:   to,
	}, nil
}

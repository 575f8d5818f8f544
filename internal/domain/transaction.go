package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrScheduledDateInPast indicates a scheduled transfer dated before today.
var ErrScheduledDateInPast = errors.New("scheduled date is in the past")

// Transaction is an immutable snapshot of a settled or scheduled monetary
// movement. Amount is always non-negative; direction is implied by the
// source and destination accounts, which are equal for deposits.
type Transaction struct {
	ID               string          `json:"id"`
	SettlementNumber string          `json:"settlement_number"`
	Amount           decimal.Decimal `json:"amount"`
	FromAccountID    string          `json:"from_account_id"`
	ToAccountID      string          `json:"to_account_id"`
	IssuedAt         time.Time       `json:"issued_at"`
	ScheduledFor     *time.Time      `json:"scheduled_for,omitempty"`
}

// CreateTransferParams is the input data for the transfer transaction. The
// destination is either an explicit account id or a routing key with its
// kind; the routing key wins when both are present.
type CreateTransferParams struct {
	FromAccountID string
	ToAccountID   string
	RoutingKind   KeyKind
	RoutingKey    string
	Amount        string
	ScheduledFor  *time.Time
}

// TransferTxResult is the result of a settled transfer.
type TransferTxResult struct {
	Transaction Transaction `json:"transaction"`
	FromAccount Account     `json:"from_account"`
	ToAccount   Account     `json:"to_account"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Boleto is a bill with a face value, a due date and a daily late-payment
// penalty rate applied per day past due.
type Boleto struct {
	SettlementNumber  string          `json:"settlement_number"`
	Value             decimal.Decimal `json:"value"`
	DueDate           time.Time       `json:"due_date"`
	LatePercentPerDay decimal.Decimal `json:"late_percent_per_day"`
	FromAccountID     string          `json:"from_account_id"`
	ToAccountID       string          `json:"to_account_id"`
}

// LateFee computes the penalty owed at the given settlement time: rate times
// whole days past due times the face value. Zero when not past due.
func (b Boleto) LateFee(daysPastDue int) decimal.Decimal {
	if daysPastDue <= 0 {
		return decimal.Zero
	}

	return b.LatePercentPerDay.Mul(decimal.NewFromInt(int64(daysPastDue))).Mul(b.Value)
}

// CreateBoletoParams is the input data to issue a boleto. Value and rate
// arrive as strings and are validated before any boleto exists.
type CreateBoletoParams struct {
	Value             string
	LatePercentPerDay string
	DueDate           string
	FromAccountID     string
	ToAccountID       string
}

// BillTxResult is the result of a settled boleto payment.
type BillTxResult struct {
	Transaction Transaction     `json:"transaction"`
	LateFee     decimal.Decimal `json:"late_fee"`
	FromAccount Account         `json:"from_account"`
	ToAccount   Account         `json:"to_account"`
}

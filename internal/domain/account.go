// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates an id collision at account creation.
	ErrAccountAlreadyExists = errors.New("account already exists")
	// ErrInvalidAmount indicates that the amount does not parse as a number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a negative amount where zero or more is required.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrNonPositiveAmount indicates a zero or negative amount where a positive one is required.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance
	// to settle a transfer or a boleto.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrLoanInsufficientBalance indicates that the account cannot honor a loan repayment.
	ErrLoanInsufficientBalance = errors.New("insufficient balance to repay loan")
	// ErrNoActiveLoan indicates a repayment attempt with no outstanding loan.
	ErrNoActiveLoan = errors.New("no active loan")
	// ErrLoanAlreadyActive indicates a loan issuance attempt while one is outstanding.
	ErrLoanAlreadyActive = errors.New("loan already active")
)

// InvalidValueError reports a business-rule violation with a human-readable
// cause. It is always raised before any state mutation.
type InvalidValueError struct {
	Cause string
}

func (e *InvalidValueError) Error() string {
	return e.Cause
}

// Account holds the balance, daily deposit accumulator, loan state and the
// append-only transaction history of a single client.
type Account struct {
	ID              string          `json:"id"`
	Owner           string          `json:"owner"`
	Tier            Tier            `json:"tier"`
	Balance         decimal.Decimal `json:"balance"`
	DepositedToday  decimal.Decimal `json:"deposited_today"`
	LoanPrincipal   decimal.Decimal `json:"loan_principal"`
	LoanInstallment decimal.Decimal `json:"loan_installment"`
	History         []Transaction   `json:"-"`
	Notifications   []Transaction   `json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Credit adds amount to the balance. Callers validate sign and limits first.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Debit subtracts amount from the balance; it never drives the balance
// below zero and reports ErrInsufficientBalance instead.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	a.Balance = a.Balance.Sub(amount)

	return nil
}

// AddHistory appends a record to the account history. Insertion order is the
// chronological order and is never revisited.
func (a *Account) AddHistory(t Transaction) {
	a.History = append(a.History, t)
}

// AddNotification appends an incoming-transaction alert.
func (a *Account) AddNotification(t Transaction) {
	a.Notifications = append(a.Notifications, t)
}

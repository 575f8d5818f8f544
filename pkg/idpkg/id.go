// Package idpkg supplies the opaque unique identifiers the engine consumes:
// account ids, transaction ids, settlement numbers and random routing tokens.
package idpkg

import (
	"github.com/google/uuid"

	"github.com/go-bic/bic-bank/pkg/randompkg"
)

// Identifier lengths. PixTokenLength is the exact length a random routing
// key must have to pass format validation.
const (
	AccountIDLength        = 8
	SettlementNumberLength = 12
	PixTokenLength         = 32
)

// Generator supplies opaque unique strings. The engine never inspects them.
//
//go:generate mockgen -source id.go -destination id_mock.go -package idpkg
type Generator interface {
	AccountID() string
	TransactionID() string
	SettlementNumber() string
	PixToken() string
}

// Random is the production Generator backed by crypto/rand and uuid.
type Random struct{}

// NewRandom returns the production identifier generator.
func NewRandom() Random {
	return Random{}
}

// AccountID returns a fresh numeric account identifier.
func (Random) AccountID() string {
	return randompkg.NumericString(AccountIDLength)
}

// TransactionID returns a fresh transaction identifier.
func (Random) TransactionID() string {
	return uuid.NewString()
}

// SettlementNumber returns a fresh settlement number.
func (Random) SettlementNumber() string {
	return randompkg.NumericString(SettlementNumberLength)
}

// PixToken returns a fresh random routing key of PixTokenLength characters.
func (Random) PixToken() string {
	return randompkg.String(PixTokenLength)
}

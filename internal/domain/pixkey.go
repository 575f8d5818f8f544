package domain

import "errors"

var (
	// ErrPixKeyNotFound indicates that the routing key resolves to no account.
	ErrPixKeyNotFound = errors.New("pix key not found")
	// ErrPixKeyTaken indicates that the routing key is already registered.
	ErrPixKeyTaken = errors.New("pix key already registered")
	// ErrUnknownKeyKind indicates a routing-key kind outside the supported set.
	ErrUnknownKeyKind = errors.New("unknown pix key kind")
	// ErrInvalidKeyFormat indicates that the candidate key fails its kind's format check.
	ErrInvalidKeyFormat = errors.New("invalid pix key format")
)

// KeyKind tags a routing key with the format family it must satisfy.
type KeyKind string

// Supported routing-key kinds.
const (
	KeyKindEmail          KeyKind = "EMAIL"
	KeyKindPhone          KeyKind = "PHONE"
	KeyKindIdentification KeyKind = "IDENTIFICATION"
	KeyKindRandom         KeyKind = "RANDOM"
)

// Valid reports whether the kind is one of the supported set.
func (k KeyKind) Valid() bool {
	switch k {
	case KeyKindEmail, KeyKindPhone, KeyKindIdentification, KeyKindRandom:
		return true
	}

	return false
}

// PixKey names a destination account for transfers.
type PixKey struct {
	Kind      KeyKind `json:"kind"`
	Value     string  `json:"value"`
	AccountID string  `json:"account_id"`
}

package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnknownTier indicates a tier outside the supported set.
var ErrUnknownTier = errors.New("unknown account tier")

// Tier classifies an account and carries its limit constants. It is fixed at
// account creation.
type Tier string

// Supported account tiers.
const (
	TierStandard Tier = "STANDARD"
	TierPremium  Tier = "PREMIUM"
	TierDiamond  Tier = "DIAMOND"
)

// SupportedTiers holds all the supported tiers.
var SupportedTiers = []Tier{TierStandard, TierPremium, TierDiamond}

var depositCeilings = map[Tier]decimal.Decimal{
	TierStandard: decimal.NewFromInt(1000),
	TierPremium:  decimal.NewFromInt(50000),
	TierDiamond:  decimal.NewFromInt(80000),
}

// DepositCeiling returns the cumulative same-day deposit limit for the tier.
func (t Tier) DepositCeiling() decimal.Decimal {
	return depositCeilings[t]
}

// Valid reports whether the tier is one of the supported set.
func (t Tier) Valid() bool {
	_, ok := depositCeilings[t]
	return ok
}

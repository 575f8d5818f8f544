// Package pixservice manages registration and resolution of routing keys.
package pixservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-bic/bic-bank/internal/domain"
	"github.com/go-bic/bic-bank/pkg/idpkg"
)

// Validator provides the per-kind format checks for candidate routing keys.
// Format checking is injected so the dispatch can be exercised without
// touching process-wide state.
//
//go:generate mockgen -source service.go -destination service_mock.go -package pixservice
type Validator interface {
	ValidateEmail(candidate string) bool
	ValidatePhone(candidate string) bool
	ValidateIdentification(candidate string) bool
	ValidateRandomToken(candidate string) bool
}

// KeyRepo provides the data access layer interface needed by the pix service layer.
type KeyRepo interface {
	RegisterKey(ctx context.Context, key domain.PixKey) error
	ResolveKey(ctx context.Context, kind domain.KeyKind, value string) (string, error)
}

// Service facilitates routing-key service layer logic.
type Service struct {
	repo      KeyRepo
	validator Validator
	gen       idpkg.Generator
}

// New returns a pix service struct to manage routing-key business logic.
func New(kr KeyRepo, v Validator, gen idpkg.Generator) *Service {
	return &Service{repo: kr, validator: v, gen: gen}
}

// validFormat dispatches the candidate to its kind's format check. Unknown
// kinds fail closed.
func (s *Service) validFormat(kind domain.KeyKind, candidate string) error {
	var ok bool

	switch kind {
	case domain.KeyKindEmail:
		ok = s.validator.ValidateEmail(candidate)
	case domain.KeyKindPhone:
		ok = s.validator.ValidatePhone(candidate)
	case domain.KeyKindIdentification:
		ok = s.validator.ValidateIdentification(candidate)
	case domain.KeyKindRandom:
		ok = s.validator.ValidateRandomToken(candidate)
	default:
		return domain.ErrUnknownKeyKind
	}

	if !ok {
		return domain.ErrInvalidKeyFormat
	}

	return nil
}

// Register attaches a routing key of the given kind to the account after its
// format check passes.
func (s *Service) Register(ctx context.Context, accountID string, kind domain.KeyKind, value string) (domain.PixKey, error) {
	l := zerolog.Ctx(ctx)

	if err := s.validFormat(kind, value); err != nil {
		l.Info().Err(err).Str("kind", string(kind)).Send()
		return domain.PixKey{}, err
	}

	key := domain.PixKey{Kind: kind, Value: value, AccountID: accountID}

	if err := s.repo.RegisterKey(ctx, key); err != nil {
		return domain.PixKey{}, err
	}

	return key, nil
}

// RegisterRandom mints a random routing token for the account and registers
// it. The token passes through the same format check as user-supplied keys.
func (s *Service) RegisterRandom(ctx context.Context, accountID string) (domain.PixKey, error) {
	return s.Register(ctx, accountID, domain.KeyKindRandom, s.gen.PixToken())
}

// Resolve returns the id of the account the routing key names.
func (s *Service) Resolve(ctx context.Context, kind domain.KeyKind, value string) (string, error) {
	return s.repo.ResolveKey(ctx, kind, value)
}

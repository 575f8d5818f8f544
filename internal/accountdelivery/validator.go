package accountdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-bic/bic-bank/internal/domain"
)

// ValidTier validates whether the tier is supported.
var ValidTier validator.Func = func(fl validator.FieldLevel) bool {
	if t, ok := fl.Field().Interface().(string); ok {
		return domain.Tier(t).Valid()
	}
	return false
}

package pixdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-bic/bic-bank/internal/domain"
)

// ValidKeyKind validates whether the pix key kind is supported.
var ValidKeyKind validator.Func = func(fl validator.FieldLevel) bool {
	if k, ok := fl.Field().Interface().(string); ok {
		return domain.KeyKind(k).Valid()
	}
	return false
}

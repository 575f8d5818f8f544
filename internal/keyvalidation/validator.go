// Package keyvalidation implements the routing-key format checks consumed by
// the pix service. Only formats are judged here; resolution to an account
// happens in the key index.
package keyvalidation

import (
	"regexp"
	"strings"

	"github.com/go-bic/bic-bank/pkg/idpkg"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10,11}$`)
	digits  = regexp.MustCompile(`^[0-9]+$`)
)

// Identification lengths: 11 digits for a personal id (CPF), 14 for a
// company id (CNPJ).
const (
	personalIDLength = 11
	companyIDLength  = 14
)

// Validator is the production routing-key format checker.
type Validator struct{}

// New returns the production format validator.
func New() Validator {
	return Validator{}
}

// ValidateEmail reports whether the candidate looks like an email address.
func (Validator) ValidateEmail(candidate string) bool {
	return emailRe.MatchString(candidate)
}

// ValidatePhone reports whether the candidate is a 10 or 11 digit phone number.
func (Validator) ValidatePhone(candidate string) bool {
	return phoneRe.MatchString(candidate)
}

// ValidateIdentification reports whether the candidate is a digits-only
// national identifier of personal or company length. Non-numeric candidates
// are rejected regardless of length.
func (Validator) ValidateIdentification(candidate string) bool {
	if !digits.MatchString(candidate) {
		return false
	}

	return len(candidate) == personalIDLength || len(candidate) == companyIDLength
}

// ValidateRandomToken reports whether the candidate has the exact generator
// token length. Blank or padded strings are rejected.
func (Validator) ValidateRandomToken(candidate string) bool {
	if strings.TrimSpace(candidate) != candidate {
		return false
	}

	return len(candidate) == idpkg.PixTokenLength
}

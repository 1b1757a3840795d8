// Package validation provides pure predicates for user-supplied fields.
// Callers validate input before invoking the services; the services
// re-validate passwords on change.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// emailRe accepts local@domain.tld with alphanumerics plus . _ + - in the
// local part and at least one dot in the domain.
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// passwordSymbols is the set of symbols a password must draw from.
const passwordSymbols = "@$!%*?&"

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsPhone reports whether s is exactly ten decimal digits.
func IsPhone(s string) bool {
	return validate.Var(s, "len=10,number") == nil
}

// IsPassword reports whether s is at least eight characters long, contains
// at least one letter, one digit and one symbol from @$!%*?&, and nothing
// outside those character classes.
func IsPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit && hasSymbol
}

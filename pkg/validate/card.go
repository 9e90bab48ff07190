package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCardNumber reports whether s looks like a payment card number:
// digits only (spaces tolerated) with a valid Luhn check digit.
func IsCardNumber(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return false
	}
	return goluhn.Validate(s) == nil
}

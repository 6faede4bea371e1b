package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsAccountNumber reports whether s looks like a platform account number:
// a bank prefix, a dash and a Luhn-checked digit sequence.
func IsAccountNumber(s string) bool {
	prefix, digits, ok := strings.Cut(s, "-")
	if !ok || prefix == "" || digits == "" {
		return false
	}
	return goluhn.Validate(digits) == nil
}

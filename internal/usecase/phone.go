package usecase

import "strings"

var phoneSeparators = strings.NewReplacer(" ", "", "\t", "", "-", "", "(", "", ")", "")

// NormalizePhone rewrites raw user input into a canonical E.164-like
// string. Total over all inputs: empty in, empty out; anything it
// cannot make sense of comes back cleaned but otherwise untouched.
func NormalizePhone(raw, defaultCountryCode string) string {
	cleaned := phoneSeparators.Replace(strings.TrimSpace(raw))
	cleaned = strings.TrimLeft(cleaned, "0")
	if cleaned == "" {
		return ""
	}
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	if len(cleaned) == 10 && isDigits(cleaned) {
		return "+" + defaultCountryCode + cleaned
	}
	// Country code typed without the plus, e.g. 919876543210
	if isDigits(cleaned) && strings.HasPrefix(cleaned, defaultCountryCode) && len(cleaned) == len(defaultCountryCode)+10 {
		return "+" + cleaned
	}
	return cleaned
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

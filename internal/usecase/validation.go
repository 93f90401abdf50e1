package usecase

import (
	"fmt"
	"strings"

	"github.com/ishqme/popup-capture/internal/config"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCaptureInput checks required fields. Email is always
// required; phone and discount only when the policy says so. The email
// is deliberately not parsed as an address: the popup form accepts
// whatever the visitor typed and Shopify is the one that rejects junk.
func ValidateCaptureInput(input CaptureInput, policy config.CapturePolicy) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	}
	if policy.RequirePhone && strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}
	if policy.RequireDiscount && strings.TrimSpace(input.Discount) == "" {
		errors = append(errors, ValidationError{"discount", "is required"})
	}

	return errors
}

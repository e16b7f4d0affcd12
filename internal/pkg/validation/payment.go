package validation

import (
	"fmt"

	"github.com/arshalif/cashi/internal/pkg/models"
)

// ValidatePayment runs the payment checks in order: email format,
// currency support, then the currency's amount rule. The first failure
// wins, so an email error is never masked by an amount error and a
// currency-support error is reported before any range check.
func ValidatePayment(payment *models.Payment) ValidationResult {
	if !IsValidEmail(payment.RecipientEmail) {
		return MakeInvalid("Invalid email format")
	}
	if !IsSupportedCurrency(payment.Currency) {
		return MakeInvalid(fmt.Sprintf("Unsupported currency: %s", payment.Currency.Code()))
	}
	return ValidateAmount(payment.Currency, payment.Amount)
}

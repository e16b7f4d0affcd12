package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arshalif/cashi/internal/pkg/models"
)

// amountRule holds the inclusive bounds for a currency's amount.
type amountRule struct {
	min float64
	max float64
}

// ruleFor dispatches on the closed currency set. A currency without a
// rule here is unsupported even if the registry knows its code, so
// adding a currency requires adding its rule in the same switch.
func ruleFor(currency models.Currency) (amountRule, bool) {
	switch currency {
	case models.USD:
		return amountRule{min: 0.01, max: 10000}, true
	case models.EUR:
		return amountRule{min: 0.01, max: 8500}, true
	case models.GBP:
		return amountRule{min: 0.01, max: 8000}, true
	}
	return amountRule{}, false
}

// IsSupportedCurrency reports whether the currency has an amount rule.
func IsSupportedCurrency(currency models.Currency) bool {
	_, ok := ruleFor(currency)
	return ok
}

// ValidateAmount checks amount against the currency's bounds.
// Non-positive amounts fall under the minimum-bound rejection for every
// currency; there is no per-currency special case.
func ValidateAmount(currency models.Currency, amount float64) ValidationResult {
	rule, ok := ruleFor(currency)
	if !ok {
		return MakeInvalid(fmt.Sprintf("Unsupported currency: %s", currency.Code()))
	}

	switch {
	case amount < rule.min:
		return MakeInvalid(fmt.Sprintf("Amount must be at least %s%s", currency.Symbol(), formatAmount(rule.min)))
	case amount > rule.max:
		return MakeInvalid(fmt.Sprintf("Amount exceeds maximum allowed of %s%s", currency.Symbol(), formatAmount(rule.max)))
	}

	return MakeValid()
}

// formatAmount renders a bound the way it appears in user-facing
// messages: thousands separators on the whole part, fractional digits
// only when present (e.g. "10,000" and "0.01").
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	grouped := groupThousands(whole)
	if frac == "00" {
		return grouped
	}
	return grouped + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

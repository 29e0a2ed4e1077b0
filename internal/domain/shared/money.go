package shared

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a NUMERIC(12,2) column can hold
var MaxAmount = decimal.RequireFromString("9999999999.99")

// ValidateAmount checks that a monetary amount is non-negative, has at most
// two decimal places and fits storage
func ValidateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewDomainError("VALIDATION_RANGE", fmt.Sprintf("%s must not be negative", field))
	}
	if !amount.Equal(amount.Truncate(2)) {
		return NewDomainError("VALIDATION_RANGE", fmt.Sprintf("%s must have at most 2 decimal places", field))
	}
	if amount.GreaterThan(MaxAmount) {
		return NewDomainError("VALIDATION_RANGE", fmt.Sprintf("%s exceeds the maximum amount", field))
	}
	return nil
}

// RoundAmount rounds an amount to cents. Validated amounts are already exact
// to the cent; this normalizes sums read back from the store.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

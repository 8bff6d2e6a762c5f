package models

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// PaisePerRupee is the subunit ratio of the home currency.
const PaisePerRupee = 100

// HomeCurrency is the only currency the tracker accepts.
const HomeCurrency = "INR"

// PaiseToRupees converts an integer paise amount to a decimal rupee value.
func PaiseToRupees(paise int64) decimal.Decimal {
	return decimal.NewFromInt(paise).Div(decimal.NewFromInt(PaisePerRupee))
}

// RupeesToPaise converts a decimal rupee value to integer paise.
// The value is rounded to the nearest paisa before conversion.
func RupeesToPaise(rupees decimal.Decimal) int64 {
	return rupees.Round(2).Mul(decimal.NewFromInt(PaisePerRupee)).IntPart()
}

// ParseRupees parses a rupee amount string ("250", "80.50") into paise.
func ParseRupees(s string) (int64, error) {
	dec, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount '%s': %w", s, err)
	}
	if !dec.IsPositive() {
		return 0, fmt.Errorf("amount must be positive, got '%s'", s)
	}
	return RupeesToPaise(dec), nil
}

// FormatPaise renders a paise amount as a rupee string, e.g. "₹250.00".
func FormatPaise(paise int64) string {
	return "₹" + PaiseToRupees(paise).StringFixed(2)
}

// PaiseString renders a paise amount as a plain decimal string for
// transports that cannot carry 64-bit integers safely.
func PaiseString(paise int64) string {
	return strconv.FormatInt(paise, 10)
}

// Package money converts between user-facing euro amount strings and decimal
// values. The display convention is Italian: dot as thousands separator,
// comma as decimal separator, leading euro sign ("€ 1.234,56").
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount interprets a user-entered amount string. A leading currency
// sign and any whitespace are stripped, grouping dots are removed and the
// decimal comma becomes a decimal point before parsing.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "€", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a valid amount: %q", text)
	}
	return d, nil
}

// FormatAmount renders an amount with two fraction digits, dot-grouped
// thousands, a decimal comma and a leading euro sign. It is the exact
// inverse of ParseAmount to two-decimal precision.
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("€ %s%s,%s", sign, grouped.String(), fracPart)
}

package model

import "github.com/shopspring/decimal"

// Card represents a credit card. DueBalance is maintained by hand; the card's
// fixed expenses are informational and never subtracted from it.
type Card struct {
	CardName      string
	DueBalance    decimal.Decimal
	FixedExpenses []FixedExpense
}

// Clone returns a deep copy of the card.
func (c Card) Clone() Card {
	out := c
	out.FixedExpenses = make([]FixedExpense, len(c.FixedExpenses))
	copy(out.FixedExpenses, c.FixedExpenses)
	return out
}

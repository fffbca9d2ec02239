// Package model defines the ledger entities managed by the application.
package model

import "github.com/shopspring/decimal"

// FixedExpense is a named, categorized recurring monthly charge attached to
// one bank account or credit card. It has no identity of its own; it is
// addressed by its position in the owner's expense list.
type FixedExpense struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes"`
}

package model

import "github.com/shopspring/decimal"

// Income holds the monthly salary and, optionally, the ID of the account the
// salary is deposited into. SalaryAccountID is a weak reference: deleting the
// referenced account clears it. Empty means no target account.
type Income struct {
	SalaryAmount    decimal.Decimal
	SalaryAccountID string
}

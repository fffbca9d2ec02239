package model

import "github.com/shopspring/decimal"

// Account represents a bank account with its gross balance and the fixed
// expenses charged against it. The effective balance is always derived,
// never stored.
type Account struct {
	BankName      string
	AccountName   string
	Balance       decimal.Decimal
	FixedExpenses []FixedExpense
}

// Clone returns a deep copy of the account.
func (a Account) Clone() Account {
	out := a
	out.FixedExpenses = make([]FixedExpense, len(a.FixedExpenses))
	copy(out.FixedExpenses, a.FixedExpenses)
	return out
}

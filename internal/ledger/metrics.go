package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/lmoretti/noirbudget/internal/model"
)

// Derived figures are recomputed in full on every query. The dataset is
// personal-finance sized; incremental maintenance would only add invariant
// tracking for no measurable gain.

// AccountMonthlyExpenses sums the fixed expenses of one account.
func AccountMonthlyExpenses(a model.Account) decimal.Decimal {
	return sumExpenses(a.FixedExpenses)
}

// AccountEffectiveBalance is the gross balance minus the account's fixed
// expenses.
func AccountEffectiveBalance(a model.Account) decimal.Decimal {
	return a.Balance.Sub(AccountMonthlyExpenses(a))
}

// CardMonthlyExpenses sums the fixed expenses of one card.
func CardMonthlyExpenses(c model.Card) decimal.Decimal {
	return sumExpenses(c.FixedExpenses)
}

// TotalMonthlyExpenses sums fixed expenses across every account and card.
func (s *Store) TotalMonthlyExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.accounts {
		total = total.Add(AccountMonthlyExpenses(*a))
	}
	for _, c := range s.cards {
		total = total.Add(CardMonthlyExpenses(*c))
	}
	return total
}

// TotalEffectiveCash sums the effective balances of all accounts.
func (s *Store) TotalEffectiveCash() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.accounts {
		total = total.Add(AccountEffectiveBalance(*a))
	}
	return total
}

// TotalDebt sums the due balances of all cards. Card expenses are excluded;
// they only count toward TotalMonthlyExpenses.
func (s *Store) TotalDebt() decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.cards {
		total = total.Add(c.DueBalance)
	}
	return total
}

// NetWorth is total effective cash minus total card debt.
func (s *Store) NetWorth() decimal.Decimal {
	return s.TotalEffectiveCash().Sub(s.TotalDebt())
}

// Summary is a dashboard snapshot of all aggregate figures.
type Summary struct {
	EffectiveCash   decimal.Decimal
	Debt            decimal.Decimal
	NetWorth        decimal.Decimal
	Salary          decimal.Decimal
	MonthlyExpenses decimal.Decimal
}

// Summarize computes every aggregate figure in one pass-friendly snapshot.
func (s *Store) Summarize() Summary {
	return Summary{
		EffectiveCash:   s.TotalEffectiveCash(),
		Debt:            s.TotalDebt(),
		NetWorth:        s.NetWorth(),
		Salary:          s.income.SalaryAmount,
		MonthlyExpenses: s.TotalMonthlyExpenses(),
	}
}

func sumExpenses(expenses []model.FixedExpense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountMetrics(t *testing.T) {
	s := NewStore()
	id, err := s.AddAccount("Banca Alfa", "Conto Base", "1.000,00")
	require.NoError(t, err)
	require.NoError(t, s.AddExpenseToAccount(id, "Affitto", "Affitto / Mutuo", "350,00", ""))

	acc, _ := s.Account(id)
	assert.Equal(t, "350", AccountMonthlyExpenses(acc).String())
	assert.Equal(t, "650", AccountEffectiveBalance(acc).String())

	t.Run("effective balance tracks every add and remove", func(t *testing.T) {
		require.NoError(t, s.AddExpenseToAccount(id, "Luce", "Bollette", "45,90", ""))
		acc, _ := s.Account(id)
		assert.Equal(t, "604.1", AccountEffectiveBalance(acc).String())

		require.NoError(t, s.RemoveExpenseFromAccount(id, 0))
		acc, _ = s.Account(id)
		assert.Equal(t, "954.1", AccountEffectiveBalance(acc).String())
	})
}

func TestStoreTotals(t *testing.T) {
	t.Run("empty store yields zeroes", func(t *testing.T) {
		s := NewStore()
		assert.True(t, s.NetWorth().IsZero())
		assert.True(t, s.TotalMonthlyExpenses().IsZero())
		assert.True(t, s.TotalEffectiveCash().IsZero())
		assert.True(t, s.TotalDebt().IsZero())
	})

	t.Run("card expenses count toward monthly totals but not debt", func(t *testing.T) {
		s := NewStore()
		id, err := s.AddCard("Visa", "120,00")
		require.NoError(t, err)
		require.NoError(t, s.AddExpenseToCard(id, "Netflix", "Abbonamenti ricorrenti", "12,99", ""))

		assert.Equal(t, "12.99", s.TotalMonthlyExpenses().String())
		assert.Equal(t, "120", s.TotalDebt().String())
		assert.Equal(t, "-120", s.NetWorth().String())
	})

	t.Run("net worth spans accounts and cards", func(t *testing.T) {
		s := NewStore()
		accID, err := s.AddAccount("Banca Alfa", "Conto Base", "1000")
		require.NoError(t, err)
		require.NoError(t, s.AddExpenseToAccount(accID, "Affitto", "Affitto / Mutuo", "350", ""))
		_, err = s.AddAccount("Banca Beta", "Conto Giallo", "500")
		require.NoError(t, err)
		_, err = s.AddCard("Visa", "120")
		require.NoError(t, err)

		assert.Equal(t, "1150", s.TotalEffectiveCash().String())
		assert.Equal(t, "120", s.TotalDebt().String())
		assert.Equal(t, "1030", s.NetWorth().String())
		assert.Equal(t, "350", s.TotalMonthlyExpenses().String())
	})
}

func TestSummarize(t *testing.T) {
	s := NewStore()
	accID, err := s.AddAccount("Banca Alfa", "Conto Base", "1000")
	require.NoError(t, err)
	require.NoError(t, s.AddExpenseToAccount(accID, "Affitto", "Affitto / Mutuo", "350", ""))
	require.NoError(t, s.SetIncome("1850", accID))

	sum := s.Summarize()
	assert.Equal(t, "650", sum.EffectiveCash.String())
	assert.Equal(t, "0", sum.Debt.String())
	assert.Equal(t, "650", sum.NetWorth.String())
	assert.Equal(t, "1850", sum.Salary.String())
	assert.Equal(t, "350", sum.MonthlyExpenses.String())
}

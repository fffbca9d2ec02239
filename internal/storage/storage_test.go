package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoretti/noirbudget/internal/common"
	"github.com/lmoretti/noirbudget/internal/ledger"
	"github.com/lmoretti/noirbudget/internal/model"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "noirbudget_data.json"))
}

func buildStore(t *testing.T) *ledger.Store {
	t.Helper()
	s := ledger.NewStore()

	accID, err := s.AddAccount("Banca Alfa", "Conto Base", "1.000,00")
	require.NoError(t, err)
	require.NoError(t, s.AddExpenseToAccount(accID, "Affitto", "Affitto / Mutuo", "350,00", "SDD"))

	cardID, err := s.AddCard("Visa", "120,00")
	require.NoError(t, err)
	require.NoError(t, s.AddExpenseToCard(cardID, "Netflix", "Abbonamenti ricorrenti", "12,99", ""))

	_, err = s.AddCategory("Bollette")
	require.NoError(t, err)
	require.NoError(t, s.SetIncome("1.850,00", accID))

	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := testStorage(t)
	original := buildStore(t)

	require.NoError(t, st.Save(original))
	loaded := st.Load()

	assert.Equal(t, original.Categories(), loaded.Categories())
	assert.Equal(t, original.Income().SalaryAccountID, loaded.Income().SalaryAccountID)
	assert.True(t, original.Income().SalaryAmount.Equal(loaded.Income().SalaryAmount))

	require.Len(t, loaded.Accounts(), 1)
	acc := loaded.Accounts()[0]
	assert.Equal(t, "ACC0001", acc.ID)
	assert.Equal(t, "Banca Alfa", acc.Account.BankName)
	assert.True(t, acc.Account.Balance.Equal(original.Accounts()[0].Account.Balance))
	require.Len(t, acc.Account.FixedExpenses, 1)
	assert.Equal(t, "Affitto", acc.Account.FixedExpenses[0].Name)
	assert.Equal(t, "SDD", acc.Account.FixedExpenses[0].Notes)

	require.Len(t, loaded.Cards(), 1)
	card := loaded.Cards()[0]
	assert.Equal(t, "CRD0001", card.ID)
	require.Len(t, card.Card.FixedExpenses, 1)
	assert.Equal(t, "12.99", card.Card.FixedExpenses[0].Amount.String())
}

func TestSaveUpdatesTimestampAndIsAtomic(t *testing.T) {
	st := testStorage(t)
	s := ledger.NewStore()

	assert.True(t, s.LastSavedAt().IsZero())
	require.NoError(t, st.Save(s))
	assert.False(t, s.LastSavedAt().IsZero())

	// No temp sibling is left behind.
	_, err := os.Stat(st.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded := st.Load()
	assert.Equal(t,
		s.LastSavedAt().Format(savedAtLayout),
		loaded.LastSavedAt().Format(savedAtLayout))
}

func TestSaveFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	// A directory at the document path makes the rename fail.
	docPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.Mkdir(docPath, 0750))
	st := New(docPath)

	s := buildStore(t)
	err := st.Save(s)

	var pErr *common.PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.True(t, s.LastSavedAt().IsZero())
	assert.Len(t, s.Accounts(), 1)
}

func TestLoadMissingFile(t *testing.T) {
	st := testStorage(t)
	s := st.Load()

	assert.Empty(t, s.Accounts())
	assert.Empty(t, s.Cards())
	assert.Equal(t, model.DefaultCategories, s.Categories())
	assert.True(t, s.LastSavedAt().IsZero())
}

func TestLoadCorruptFile(t *testing.T) {
	st := testStorage(t)
	require.NoError(t, os.WriteFile(st.Path(), []byte("{not json"), 0600))

	s := st.Load()
	assert.Empty(t, s.Accounts())
	assert.Equal(t, model.DefaultCategories, s.Categories())
}

func TestLoadLegacyDocument(t *testing.T) {
	// A document written by an earlier version: numeric amounts, a missing
	// default category, absent fields.
	legacy := `{
		"app": "NoirBudget",
		"meta": {"last_saved_at": "2024-03-01T09:30:00"},
		"categories": ["Bollette"],
		"accounts": {
			"ACC0002": {
				"bank_name": "Banca Beta",
				"balance": 750.5,
				"fixed_expenses": [
					{"name": "Luce", "category": "Bollette", "amount": 45.9, "notes": ""}
				]
			}
		},
		"cards": {
			"CRD0001": {"card_name": "Visa", "due_balance": 120}
		},
		"income": {"salary_amount": 1850, "salary_account_id": null}
	}`

	st := testStorage(t)
	require.NoError(t, os.WriteFile(st.Path(), []byte(legacy), 0600))

	s := st.Load()

	// Default categories are migrated in without losing the user ones.
	assert.Equal(t, []string{"Abbonamenti ricorrenti", "Palestra", "Bollette"}, s.Categories())

	acc, ok := s.Account("ACC0002")
	require.True(t, ok)
	assert.Equal(t, "Banca Beta", acc.BankName)
	assert.Empty(t, acc.AccountName)
	assert.Equal(t, "750.5", acc.Balance.String())
	require.Len(t, acc.FixedExpenses, 1)
	assert.Equal(t, "45.9", acc.FixedExpenses[0].Amount.String())

	card, ok := s.Card("CRD0001")
	require.True(t, ok)
	assert.Equal(t, "120", card.DueBalance.String())
	assert.Empty(t, card.FixedExpenses)

	assert.Equal(t, "1850", s.Income().SalaryAmount.String())
	assert.Empty(t, s.Income().SalaryAccountID)
	assert.Equal(t, "2024-03-01T09:30:00", s.LastSavedAt().Format(savedAtLayout))

	// A freed earlier ID is reused on the next allocation.
	id, err := s.AddAccount("Banca Alfa", "Conto Base", "100")
	require.NoError(t, err)
	assert.Equal(t, "ACC0001", id)
}

func TestDocumentShape(t *testing.T) {
	st := testStorage(t)
	require.NoError(t, st.Save(buildStore(t)))

	raw, err := os.ReadFile(st.Path())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"app", "meta", "categories", "accounts", "cards", "income"} {
		assert.Contains(t, doc, key)
	}

	var app string
	require.NoError(t, json.Unmarshal(doc["app"], &app))
	assert.Equal(t, AppName, app)
}

// Package ledger implements the in-memory aggregate holding all accounts,
// cards, income and categories. Every entity mutation goes through the Store,
// which enforces the model invariants; derived figures are computed on demand
// from its snapshot accessors.
package ledger

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/lmoretti/noirbudget/internal/common"
	"github.com/lmoretti/noirbudget/internal/model"
	"github.com/lmoretti/noirbudget/internal/money"
)

// Store is the aggregate root of the ledger. It is not safe for concurrent
// use; the application mutates it from a single goroutine.
type Store struct {
	accounts    map[string]*model.Account
	cards       map[string]*model.Card
	income      model.Income
	categories  []string
	lastSavedAt time.Time
}

// NewStore creates an empty store with the default category set.
func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]*model.Account),
		cards:      make(map[string]*model.Card),
		categories: model.NormalizeCategories(model.DefaultCategories),
	}
}

// RestoreData carries the deserialized contents of a saved document.
type RestoreData struct {
	Accounts    map[string]model.Account
	Cards       map[string]model.Card
	Income      model.Income
	Categories  []string
	LastSavedAt time.Time
}

// Restore builds a store from previously persisted data. The category list is
// migrated forward: default categories missing from the loaded set are added,
// then the whole set is re-normalized.
func Restore(data RestoreData) *Store {
	s := NewStore()
	for id, a := range data.Accounts {
		clone := a.Clone()
		s.accounts[id] = &clone
	}
	for id, c := range data.Cards {
		clone := c.Clone()
		s.cards[id] = &clone
	}
	s.income = data.Income
	s.categories = model.MergeDefaultCategories(data.Categories)
	s.lastSavedAt = data.LastSavedAt
	return s
}

// AccountEntry pairs an account with its identifier.
type AccountEntry struct {
	ID      string
	Account model.Account
}

// CardEntry pairs a card with its identifier.
type CardEntry struct {
	ID   string
	Card model.Card
}

// Accounts returns a copy of every account, sorted by ID.
func (s *Store) Accounts() []AccountEntry {
	entries := make([]AccountEntry, 0, len(s.accounts))
	for id, a := range s.accounts {
		entries = append(entries, AccountEntry{ID: id, Account: a.Clone()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Cards returns a copy of every card, sorted by ID.
func (s *Store) Cards() []CardEntry {
	entries := make([]CardEntry, 0, len(s.cards))
	for id, c := range s.cards {
		entries = append(entries, CardEntry{ID: id, Card: c.Clone()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Account returns a copy of the account with the given ID.
func (s *Store) Account(id string) (model.Account, bool) {
	a, ok := s.accounts[id]
	if !ok {
		return model.Account{}, false
	}
	return a.Clone(), true
}

// Card returns a copy of the card with the given ID.
func (s *Store) Card(id string) (model.Card, bool) {
	c, ok := s.cards[id]
	if !ok {
		return model.Card{}, false
	}
	return c.Clone(), true
}

// Categories returns a copy of the category list in display order.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Income returns the income singleton.
func (s *Store) Income() model.Income {
	return s.income
}

// LastSavedAt returns the timestamp of the last successful save, or the zero
// time if the store has never been saved.
func (s *Store) LastSavedAt() time.Time {
	return s.lastSavedAt
}

// SetLastSavedAt records the timestamp of a successful save.
func (s *Store) SetLastSavedAt(t time.Time) {
	s.lastSavedAt = t
}

// AddAccount validates and inserts a new bank account, returning its ID.
func (s *Store) AddAccount(bank, name, balance string) (string, error) {
	bank = strings.TrimSpace(bank)
	name = strings.TrimSpace(name)
	if bank == "" {
		return "", common.NewValidationError("bank name", "must not be empty")
	}
	if name == "" {
		return "", common.NewValidationError("account name", "must not be empty")
	}
	bal, err := money.ParseAmount(balance)
	if err != nil {
		return "", common.NewValidationError("balance", err.Error())
	}

	id := allocateID(accountIDPrefix, s.accounts)
	s.accounts[id] = &model.Account{
		BankName:      bank,
		AccountName:   name,
		Balance:       bal,
		FixedExpenses: []model.FixedExpense{},
	}

	slog.Debug("added account", "id", id, "bank", bank)
	return id, nil
}

// UpdateAccountBalance replaces the gross balance of an existing account.
func (s *Store) UpdateAccountBalance(id, balance string) error {
	acc, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("account %s: %w", id, common.ErrNotFound)
	}
	bal, err := money.ParseAmount(balance)
	if err != nil {
		return common.NewValidationError("balance", err.Error())
	}

	acc.Balance = bal
	slog.Debug("updated account balance", "id", id)
	return nil
}

// DeleteAccount removes an account. If the account is the salary deposit
// target, that reference is cleared as part of the same operation.
func (s *Store) DeleteAccount(id string) error {
	if _, ok := s.accounts[id]; !ok {
		return fmt.Errorf("account %s: %w", id, common.ErrNotFound)
	}

	delete(s.accounts, id)
	if s.income.SalaryAccountID == id {
		s.income.SalaryAccountID = ""
	}

	slog.Debug("deleted account", "id", id)
	return nil
}

// AddExpenseToAccount appends a fixed expense to an account's expense list.
// The category is free text; it does not have to exist in the category set.
func (s *Store) AddExpenseToAccount(id, name, category, amount, notes string) error {
	acc, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("account %s: %w", id, common.ErrNotFound)
	}
	exp, err := buildExpense(name, category, amount, notes)
	if err != nil {
		return err
	}

	acc.FixedExpenses = append(acc.FixedExpenses, exp)
	slog.Debug("added account expense", "id", id, "name", exp.Name)
	return nil
}

// RemoveExpenseFromAccount removes the expense at the given position.
// Subsequent expenses shift down one index.
func (s *Store) RemoveExpenseFromAccount(id string, index int) error {
	acc, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("account %s: %w", id, common.ErrNotFound)
	}
	if index < 0 || index >= len(acc.FixedExpenses) {
		return fmt.Errorf("expense %d: %w", index, common.ErrIndexOutOfRange)
	}

	acc.FixedExpenses = append(acc.FixedExpenses[:index], acc.FixedExpenses[index+1:]...)
	slog.Debug("removed account expense", "id", id, "index", index)
	return nil
}

// AddCard validates and inserts a new credit card, returning its ID.
func (s *Store) AddCard(name, due string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", common.NewValidationError("card name", "must not be empty")
	}
	dueBal, err := money.ParseAmount(due)
	if err != nil {
		return "", common.NewValidationError("due balance", err.Error())
	}

	id := allocateID(cardIDPrefix, s.cards)
	s.cards[id] = &model.Card{
		CardName:      name,
		DueBalance:    dueBal,
		FixedExpenses: []model.FixedExpense{},
	}

	slog.Debug("added card", "id", id, "name", name)
	return id, nil
}

// UpdateCardDue replaces the due balance of an existing card.
func (s *Store) UpdateCardDue(id, due string) error {
	card, ok := s.cards[id]
	if !ok {
		return fmt.Errorf("card %s: %w", id, common.ErrNotFound)
	}
	dueBal, err := money.ParseAmount(due)
	if err != nil {
		return common.NewValidationError("due balance", err.Error())
	}

	card.DueBalance = dueBal
	slog.Debug("updated card due balance", "id", id)
	return nil
}

// DeleteCard removes a card. Nothing else references cards, so no cascade is
// needed.
func (s *Store) DeleteCard(id string) error {
	if _, ok := s.cards[id]; !ok {
		return fmt.Errorf("card %s: %w", id, common.ErrNotFound)
	}

	delete(s.cards, id)
	slog.Debug("deleted card", "id", id)
	return nil
}

// AddExpenseToCard appends a fixed expense to a card's expense list.
func (s *Store) AddExpenseToCard(id, name, category, amount, notes string) error {
	card, ok := s.cards[id]
	if !ok {
		return fmt.Errorf("card %s: %w", id, common.ErrNotFound)
	}
	exp, err := buildExpense(name, category, amount, notes)
	if err != nil {
		return err
	}

	card.FixedExpenses = append(card.FixedExpenses, exp)
	slog.Debug("added card expense", "id", id, "name", exp.Name)
	return nil
}

// RemoveExpenseFromCard removes the expense at the given position.
func (s *Store) RemoveExpenseFromCard(id string, index int) error {
	card, ok := s.cards[id]
	if !ok {
		return fmt.Errorf("card %s: %w", id, common.ErrNotFound)
	}
	if index < 0 || index >= len(card.FixedExpenses) {
		return fmt.Errorf("expense %d: %w", index, common.ErrIndexOutOfRange)
	}

	card.FixedExpenses = append(card.FixedExpenses[:index], card.FixedExpenses[index+1:]...)
	slog.Debug("removed card expense", "id", id, "index", index)
	return nil
}

// AddCategory inserts a new category and returns its cleaned name. Internal
// whitespace runs are collapsed; matching an existing category
// case-insensitively is a duplicate.
func (s *Store) AddCategory(name string) (string, error) {
	cleaned := model.CollapseWhitespace(name)
	if cleaned == "" {
		return "", common.NewValidationError("category name", "must not be empty")
	}
	for _, c := range s.categories {
		if strings.EqualFold(c, cleaned) {
			return "", fmt.Errorf("category %q: %w", cleaned, common.ErrDuplicateCategory)
		}
	}

	s.categories = model.NormalizeCategories(append(s.categories, cleaned))
	slog.Debug("added category", "name", cleaned)
	return cleaned, nil
}

// DeleteCategory removes a category. It refuses to remove the last remaining
// category, and refuses to remove a category any fixed expense still
// references (exact string match), reporting the blocking owners.
func (s *Store) DeleteCategory(name string) error {
	found := false
	for _, c := range s.categories {
		if c == name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("category %q: %w", name, common.ErrNotFound)
	}
	if len(s.categories) == 1 {
		return common.ErrLastCategory
	}
	if owners := s.categoryOwners(name); len(owners) > 0 {
		return &common.CategoryInUseError{Category: name, Owners: owners}
	}

	remaining := make([]string, 0, len(s.categories)-1)
	for _, c := range s.categories {
		if c != name {
			remaining = append(remaining, c)
		}
	}
	s.categories = model.NormalizeCategories(remaining)

	slog.Debug("deleted category", "name", name)
	return nil
}

// categoryOwners returns the sorted IDs of accounts and cards holding at
// least one expense in the given category.
func (s *Store) categoryOwners(name string) []string {
	var owners []string
	for id, a := range s.accounts {
		for _, e := range a.FixedExpenses {
			if e.Category == name {
				owners = append(owners, id)
				break
			}
		}
	}
	for id, c := range s.cards {
		for _, e := range c.FixedExpenses {
			if e.Category == name {
				owners = append(owners, id)
				break
			}
		}
	}
	sort.Strings(owners)
	return owners
}

// SetIncome replaces the income singleton. An account ID that does not exist
// in the store is treated as no target, not as an error.
func (s *Store) SetIncome(amount, accountID string) error {
	sal, err := money.ParseAmount(amount)
	if err != nil {
		return common.NewValidationError("salary amount", err.Error())
	}
	if _, ok := s.accounts[accountID]; !ok {
		accountID = ""
	}

	s.income = model.Income{SalaryAmount: sal, SalaryAccountID: accountID}
	slog.Debug("income saved", "account", accountID)
	return nil
}

// buildExpense validates expense input and assembles the value.
func buildExpense(name, category, amount, notes string) (model.FixedExpense, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return model.FixedExpense{}, common.NewValidationError("expense name", "must not be empty")
	}
	if category == "" {
		return model.FixedExpense{}, common.NewValidationError("category", "must not be empty")
	}
	amt, err := money.ParseAmount(amount)
	if err != nil {
		return model.FixedExpense{}, common.NewValidationError("amount", err.Error())
	}

	return model.FixedExpense{
		Name:     name,
		Category: category,
		Amount:   amt,
		Notes:    strings.TrimSpace(notes),
	}, nil
}

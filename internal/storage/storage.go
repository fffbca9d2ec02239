// Package storage persists the ledger to a single JSON document on disk.
// Writes go through a temp file and an atomic rename, so a crash mid-write
// never corrupts the previously committed document. Loads are defensive: a
// missing or unreadable document yields an empty store, never a startup
// failure.
package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lmoretti/noirbudget/internal/common"
	"github.com/lmoretti/noirbudget/internal/ledger"
	"github.com/lmoretti/noirbudget/internal/model"
)

// AppName identifies documents written by this application.
const AppName = "NoirBudget"

// savedAtLayout is ISO-8601 to second precision, matching documents written
// by earlier versions of the application.
const savedAtLayout = "2006-01-02T15:04:05"

// Storage reads and writes the ledger document at a fixed path.
type Storage struct {
	path string
}

// New creates a storage instance for the given file path.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Path returns the backing file location.
func (st *Storage) Path() string {
	return st.path
}

type document struct {
	App        string                 `json:"app"`
	Meta       metaDocument           `json:"meta"`
	Categories []string               `json:"categories"`
	Accounts   map[string]accountDoc  `json:"accounts"`
	Cards      map[string]cardDoc     `json:"cards"`
	Income     incomeDoc              `json:"income"`
}

type metaDocument struct {
	LastSavedAt *string `json:"last_saved_at"`
}

type accountDoc struct {
	BankName      string               `json:"bank_name"`
	AccountName   string               `json:"account_name"`
	Balance       decimal.Decimal      `json:"balance"`
	FixedExpenses []model.FixedExpense `json:"fixed_expenses"`
}

type cardDoc struct {
	CardName      string               `json:"card_name"`
	DueBalance    decimal.Decimal      `json:"due_balance"`
	FixedExpenses []model.FixedExpense `json:"fixed_expenses"`
}

type incomeDoc struct {
	SalaryAmount    decimal.Decimal `json:"salary_amount"`
	SalaryAccountID *string         `json:"salary_account_id"`
}

// Save serializes the whole store and atomically replaces the document.
// On success the store's last-saved timestamp is updated; on failure the
// in-memory state is untouched and the previous document remains intact.
func (st *Storage) Save(s *ledger.Store) error {
	now := time.Now()
	doc := serialize(s, now)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &common.PersistenceError{Op: "save", Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(st.path), 0750); err != nil {
		return &common.PersistenceError{Op: "save", Err: err}
	}

	tmp := st.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return &common.PersistenceError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp, st.path); err != nil {
		return &common.PersistenceError{Op: "save", Err: err}
	}

	s.SetLastSavedAt(now)
	slog.Debug("saved ledger", "path", st.path, "bytes", len(data))
	return nil
}

// Load reconstructs the store from the document. A missing file starts an
// empty store; an unparseable one is logged and also starts empty, so the
// application always comes up in a usable state.
func (st *Storage) Load() *ledger.Store {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no ledger document, starting empty", "path", st.path)
		return ledger.NewStore()
	}
	if err != nil {
		slog.Warn("could not read ledger document, starting empty", "path", st.path, "error", err)
		return ledger.NewStore()
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("ledger document is not parseable, starting empty", "path", st.path, "error", err)
		return ledger.NewStore()
	}

	return ledger.Restore(deserialize(doc))
}

func serialize(s *ledger.Store, savedAt time.Time) document {
	accounts := make(map[string]accountDoc)
	for _, entry := range s.Accounts() {
		accounts[entry.ID] = accountDoc{
			BankName:      entry.Account.BankName,
			AccountName:   entry.Account.AccountName,
			Balance:       entry.Account.Balance,
			FixedExpenses: entry.Account.FixedExpenses,
		}
	}

	cards := make(map[string]cardDoc)
	for _, entry := range s.Cards() {
		cards[entry.ID] = cardDoc{
			CardName:      entry.Card.CardName,
			DueBalance:    entry.Card.DueBalance,
			FixedExpenses: entry.Card.FixedExpenses,
		}
	}

	income := incomeDoc{SalaryAmount: s.Income().SalaryAmount}
	if id := s.Income().SalaryAccountID; id != "" {
		income.SalaryAccountID = &id
	}

	saved := savedAt.Format(savedAtLayout)
	return document{
		App:        AppName,
		Meta:       metaDocument{LastSavedAt: &saved},
		Categories: s.Categories(),
		Accounts:   accounts,
		Cards:      cards,
		Income:     income,
	}
}

func deserialize(doc document) ledger.RestoreData {
	accounts := make(map[string]model.Account, len(doc.Accounts))
	for id, a := range doc.Accounts {
		accounts[id] = model.Account{
			BankName:      a.BankName,
			AccountName:   a.AccountName,
			Balance:       a.Balance,
			FixedExpenses: a.FixedExpenses,
		}
	}

	cards := make(map[string]model.Card, len(doc.Cards))
	for id, c := range doc.Cards {
		cards[id] = model.Card{
			CardName:      c.CardName,
			DueBalance:    c.DueBalance,
			FixedExpenses: c.FixedExpenses,
		}
	}

	income := model.Income{SalaryAmount: doc.Income.SalaryAmount}
	if doc.Income.SalaryAccountID != nil {
		income.SalaryAccountID = *doc.Income.SalaryAccountID
	}

	return ledger.RestoreData{
		Accounts:    accounts,
		Cards:       cards,
		Income:      income,
		Categories:  doc.Categories,
		LastSavedAt: parseSavedAt(doc.Meta.LastSavedAt),
	}
}

func parseSavedAt(raw *string) time.Time {
	if raw == nil || *raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{savedAtLayout, time.RFC3339} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return t
		}
	}
	slog.Warn("unrecognized last_saved_at timestamp", "value", *raw)
	return time.Time{}
}

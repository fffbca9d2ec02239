package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/viper"

	"github.com/lmoretti/noirbudget/internal/cli"
	"github.com/lmoretti/noirbudget/internal/common"
	"github.com/lmoretti/noirbudget/internal/config"
	"github.com/lmoretti/noirbudget/internal/ledger"
	"github.com/lmoretti/noirbudget/internal/storage"
)

// openStorage resolves the document path and returns a storage handle.
func openStorage() *storage.Storage {
	path := viper.GetString("data.file")
	if path == "" {
		path = config.DefaultDataFile
	}
	return storage.New(config.ExpandPath(path))
}

// loadStore reads the ledger document. A missing or unreadable document
// yields an empty store so every command still works.
func loadStore(st *storage.Storage) *ledger.Store {
	return st.Load()
}

// saveStore persists the store after a mutation. The mutation already
// happened in memory; a failed save is reported, not rolled back.
func saveStore(st *storage.Storage, store *ledger.Store) error {
	if err := st.Save(store); err != nil {
		return common.NewUserError("failed to save the ledger document", err)
	}
	return nil
}

// newTabWriter returns a tabwriter on stdout for aligned listings.
func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printSuccess(format string, args ...any) {
	fmt.Println(cli.FormatSuccess(fmt.Sprintf(format, args...)))
}

func printWarning(format string, args ...any) {
	fmt.Println(cli.FormatWarning(fmt.Sprintf(format, args...)))
}

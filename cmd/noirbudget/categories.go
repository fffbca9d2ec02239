package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoretti/noirbudget/internal/common"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add and delete the category labels used by fixed expenses.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := loadStore(openStorage())

			for _, name := range store.Categories() {
				fmt.Println(name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st := openStorage()
			store := loadStore(st)

			name, err := store.AddCategory(args[0])
			if err != nil {
				if errors.Is(err, common.ErrDuplicateCategory) {
					return fmt.Errorf("category %q already exists", args[0])
				}
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			printSuccess("Added category %q", name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a category",
		Long: `Delete a category label. Fails if any fixed expense still uses it,
or if it is the last remaining category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st := openStorage()
			store := loadStore(st)

			if err := store.DeleteCategory(args[0]); err != nil {
				var inUse *common.CategoryInUseError
				if errors.As(err, &inUse) {
					return fmt.Errorf("%w (reassign those expenses first)", err)
				}
				if errors.Is(err, common.ErrLastCategory) {
					return fmt.Errorf("cannot delete %q: at least one category must remain", args[0])
				}
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			printSuccess("Deleted category %q", args[0])
			return nil
		},
	})

	return cmd
}

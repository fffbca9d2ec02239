package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmoretti/noirbudget/internal/common"
	"github.com/lmoretti/noirbudget/internal/ledger"
	"github.com/lmoretti/noirbudget/internal/money"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage bank accounts",
		Long:  `Add, list, update and delete bank accounts and their fixed expenses.`,
	}

	cmd.AddCommand(accountsListCmd())
	cmd.AddCommand(accountsAddCmd())
	cmd.AddCommand(accountsDeleteCmd())
	cmd.AddCommand(accountsSetBalanceCmd())
	cmd.AddCommand(accountsExpensesCmd())

	return cmd
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts with derived balances",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := loadStore(openStorage())

			accounts := store.Accounts()
			if len(accounts) == 0 {
				fmt.Println("No accounts yet. Add one with: noirbudget accounts add <bank> <name> <balance>")
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tBANK\tACCOUNT\tBALANCE\tFIXED EXPENSES\tEFFECTIVE")
			for _, entry := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					entry.ID,
					entry.Account.BankName,
					entry.Account.AccountName,
					money.FormatAmount(entry.Account.Balance),
					money.FormatAmount(ledger.AccountMonthlyExpenses(entry.Account)),
					money.FormatAmount(ledger.AccountEffectiveBalance(entry.Account)),
				)
			}
			return w.Flush()
		},
	}
}

func accountsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <bank> <name> <balance>",
		Short: "Add a bank account",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			st := openStorage()
			store := loadStore(st)

			id, err := store.AddAccount(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			printSuccess("Added account %s (%s / %s)", id, args[0], args[1])
			return nil
		},
	}
}

func accountsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account-id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st := openStorage()
			store := loadStore(st)

			if err := store.DeleteAccount(args[0]); err != nil {
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			printSuccess("Deleted account %s", args[0])
			return nil
		},
	}
}

func accountsSetBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-balance <account-id> <balance>",
		Short: "Update an account's gross balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			st := openStorage()
			store := loadStore(st)

			if err := store.UpdateAccountBalance(args[0], args[1]); err != nil {
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			printSuccess("Updated balance of %s to %s", args[0], args[1])
			return nil
		},
	}
}

func accountsExpensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage an account's fixed expenses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <account-id>",
		Short: "List an account's fixed expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store := loadStore(openStorage())

			account, ok := store.Account(args[0])
			if !ok {
				return fmt.Errorf("account %s: %w", args[0], common.ErrNotFound)
			}

			if len(account.FixedExpenses) == 0 {
				fmt.Println("No fixed expenses on this account.")
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "#\tNAME\tCATEGORY\tAMOUNT\tNOTES")
			for i, exp := range account.FixedExpenses {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					i, exp.Name, exp.Category, money.FormatAmount(exp.Amount), exp.Notes)
			}
			return w.Flush()
		},
	})

	addCmd := &cobra.Command{
		Use:   "add <account-id> <name> <category> <amount>",
		Short: "Add a fixed expense to an account",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, _ := cmd.Flags().GetString("notes")

			st := openStorage()
			store := loadStore(st)

			if err := store.AddExpenseToAccount(args[0], args[1], args[2], args[3], notes); err != nil {
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			printSuccess("Added expense %q to %s", args[1], args[0])
			return nil
		},
	}
	addCmd.Flags().String("notes", "", "free-form note for the expense")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <account-id> <index>",
		Short: "Remove a fixed expense by its list index",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid expense index %q", args[1])
			}

			st := openStorage()
			store := loadStore(st)

			if err := store.RemoveExpenseFromAccount(args[0], index); err != nil {
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			printSuccess("Removed expense #%d from %s", index, args[0])
			return nil
		},
	})

	return cmd
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmoretti/noirbudget/internal/common"
	"github.com/lmoretti/noirbudget/internal/ledger"
	"github.com/lmoretti/noirbudget/internal/money"
)

func cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage credit cards",
		Long:  `Add, list, update and delete credit cards and their fixed expenses.`,
	}

	cmd.AddCommand(cardsListCmd())
	cmd.AddCommand(cardsAddCmd())
	cmd.AddCommand(cardsDeleteCmd())
	cmd.AddCommand(cardsSetDueCmd())
	cmd.AddCommand(cardsExpensesCmd())

	return cmd
}

func cardsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cards with due balances",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := loadStore(openStorage())

			cards := store.Cards()
			if len(cards) == 0 {
				fmt.Println("No cards yet. Add one with: noirbudget cards add <name> <due-balance>")
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tCARD\tDUE BALANCE\tFIXED EXPENSES")
			for _, entry := range cards {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					entry.ID,
					entry.Card.CardName,
					money.FormatAmount(entry.Card.DueBalance),
					money.FormatAmount(ledger.CardMonthlyExpenses(entry.Card)),
				)
			}
			return w.Flush()
		},
	}
}

func cardsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <due-balance>",
		Short: "Add a credit card",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			st := openStorage()
			store := loadStore(st)

			id, err := store.AddCard(args[0], args[1])
			if err != nil {
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			printSuccess("Added card %s (%s)", id, args[0])
			return nil
		},
	}
}

func cardsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st := openStorage()
			store := loadStore(st)

			if err := store.DeleteCard(args[0]); err != nil {
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			printSuccess("Deleted card %s", args[0])
			return nil
		},
	}
}

func cardsSetDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-due <card-id> <due-balance>",
		Short: "Update a card's due balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			st := openStorage()
			store := loadStore(st)

			if err := store.UpdateCardDue(args[0], args[1]); err != nil {
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			printSuccess("Updated due balance of %s to %s", args[0], args[1])
			return nil
		},
	}
}

func cardsExpensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage a card's fixed expenses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <card-id>",
		Short: "List a card's fixed expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store := loadStore(openStorage())

			card, ok := store.Card(args[0])
			if !ok {
				return fmt.Errorf("card %s: %w", args[0], common.ErrNotFound)
			}

			if len(card.FixedExpenses) == 0 {
				fmt.Println("No fixed expenses on this card.")
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "#\tNAME\tCATEGORY\tAMOUNT\tNOTES")
			for i, exp := range card.FixedExpenses {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					i, exp.Name, exp.Category, money.FormatAmount(exp.Amount), exp.Notes)
			}
			return w.Flush()
		},
	})

	addCmd := &cobra.Command{
		Use:   "add <card-id> <name> <category> <amount>",
		Short: "Add a fixed expense to a card",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, _ := cmd.Flags().GetString("notes")

			st := openStorage()
			store := loadStore(st)

			if err := store.AddExpenseToCard(args[0], args[1], args[2], args[3], notes); err != nil {
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
		Use:   "remove <card-id> <index>",
		Short: "Remove a fixed expense by its list index",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid expense index %q", args[1])
			}

			st := openStorage()
			store := loadStore(st)

			if err := store.RemoveExpenseFromCard(args[0], index); err != nil {
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

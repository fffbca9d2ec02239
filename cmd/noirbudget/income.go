package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoretti/noirbudget/internal/money"
)

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage monthly salary",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the configured salary",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := loadStore(openStorage())

			income := store.Income()
			fmt.Printf("Salary: %s\n", money.FormatAmount(income.SalaryAmount))
			if income.SalaryAccountID != "" {
				fmt.Printf("Credited to: %s\n", income.SalaryAccountID)
			} else {
				fmt.Println("Credited to: (no account)")
			}
			return nil
		},
	})

	setCmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly salary",
		Long: `Set the monthly salary amount, optionally naming the account it is
credited to. An unknown account ID is silently dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, _ := cmd.Flags().GetString("account")

			st := openStorage()
			store := loadStore(st)

			if err := store.SetIncome(args[0], accountID); err != nil {
				return err
			}
			if err := saveStore(st, store); err != nil {
				return err
			}

			if accountID != "" && store.Income().SalaryAccountID == "" {
				printWarning("Account %s does not exist; salary saved without a target account", accountID)
			}
			printSuccess("Salary set to %s", args[0])
			return nil
		},
	}
	setCmd.Flags().String("account", "", "account ID the salary is credited to")
	cmd.AddCommand(setCmd)

	return cmd
}

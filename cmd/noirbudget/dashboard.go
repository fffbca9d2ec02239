package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lmoretti/noirbudget/internal/cli"
	"github.com/lmoretti/noirbudget/internal/money"
	"github.com/lmoretti/noirbudget/internal/tui"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the aggregate financial position",
		Long: `Print effective cash, card debt, net worth, salary and total fixed
expenses. With --interactive, open a navigable terminal dashboard instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interactive, _ := cmd.Flags().GetBool("interactive")

			store := loadStore(openStorage())

			if interactive {
				return tui.Run(store)
			}

			sum := store.Summarize()

			boxes := []string{
				cli.RenderBox("Effective cash", cli.AmountStyle.Render(money.FormatAmount(sum.EffectiveCash))),
				cli.RenderBox("Card debt", cli.AmountStyle.Render(money.FormatAmount(sum.Debt))),
				cli.RenderBox("Net worth", cli.AmountStyle.Render(money.FormatAmount(sum.NetWorth))),
				cli.RenderBox("Salary", cli.AmountStyle.Render(money.FormatAmount(sum.Salary))),
				cli.RenderBox("Fixed expenses", cli.AmountStyle.Render(money.FormatAmount(sum.MonthlyExpenses))),
			}
			fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))

			if t := store.LastSavedAt(); !t.IsZero() {
				fmt.Println(cli.SubtleStyle.Render("Last saved: " + t.Format("02/01/2006 15:04:05")))
			} else {
				fmt.Println(cli.SubtleStyle.Render("Last saved: —"))
			}
			return nil
		},
	}

	cmd.Flags().Bool("interactive", false, "open the interactive terminal dashboard")
	return cmd
}

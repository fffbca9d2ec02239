// Package tui renders the read-only dashboard as an interactive terminal
// view: aggregate figures plus account and card listings, mirroring the tabs
// of the desktop application this tool replaces.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmoretti/noirbudget/internal/cli"
	"github.com/lmoretti/noirbudget/internal/ledger"
	"github.com/lmoretti/noirbudget/internal/money"
)

// View selects one of the dashboard tabs.
type View int

const (
	// ViewSummary shows the aggregate figures.
	ViewSummary View = iota
	// ViewAccounts lists accounts with derived balances.
	ViewAccounts
	// ViewCards lists cards with their due balances.
	ViewCards
)

var tabTitles = []string{"Dashboard", "Conti", "Carte"}

// Model holds the dashboard TUI state.
type Model struct {
	store         *ledger.Store
	keymap        KeyMap
	accountsTable table.Model
	cardsTable    table.Model
	view          View
	width         int
	height        int
	quitting      bool
}

// New creates a dashboard model over a loaded store.
func New(store *ledger.Store) Model {
	return Model{
		store:         store,
		keymap:        DefaultKeyMap(),
		accountsTable: newAccountsTable(store),
		cardsTable:    newCardsTable(store),
	}
}

// Run renders the dashboard until the user quits.
func Run(store *ledger.Store) error {
	p := tea.NewProgram(New(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newAccountsTable(store *ledger.Store) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Banca", Width: 18},
		{Title: "Conto", Width: 18},
		{Title: "Saldo lordo", Width: 14},
		{Title: "Spese previste", Width: 14},
		{Title: "Saldo effettivo", Width: 15},
	}

	var rows []table.Row
	for _, entry := range store.Accounts() {
		rows = append(rows, table.Row{
			entry.ID,
			entry.Account.BankName,
			entry.Account.AccountName,
			money.FormatAmount(entry.Account.Balance),
			money.FormatAmount(ledger.AccountMonthlyExpenses(entry.Account)),
			money.FormatAmount(ledger.AccountEffectiveBalance(entry.Account)),
		})
	}

	return newTable(columns, rows)
}

func newCardsTable(store *ledger.Store) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Carta", Width: 24},
		{Title: "Saldo da pagare", Width: 16},
		{Title: "Spese fisse", Width: 14},
	}

	var rows []table.Row
	for _, entry := range store.Cards() {
		rows = append(rows, table.Row{
			entry.ID,
			entry.Card.CardName,
			money.FormatAmount(entry.Card.DueBalance),
			money.FormatAmount(ledger.CardMonthlyExpenses(entry.Card)),
		})
	}

	return newTable(columns, rows)
}

func newTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(cli.PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cli.SubtleColor).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(cli.AccentColor).
		Background(lipgloss.Color("#262B38"))
	t.SetStyles(styles)

	return t
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextTab):
			m.view = (m.view + 1) % View(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keymap.PrevTab):
			m.view = (m.view + View(len(tabTitles)) - 1) % View(len(tabTitles))
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	switch m.view {
	case ViewAccounts:
		m.accountsTable, cmd = m.accountsTable.Update(msg)
	case ViewCards:
		m.cardsTable, cmd = m.cardsTable.Update(msg)
	}
	return m, cmd
}

// View renders the current tab.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderTabs()}

	switch m.view {
	case ViewSummary:
		sections = append(sections, m.renderSummary())
	case ViewAccounts:
		sections = append(sections, m.accountsTable.View())
	case ViewCards:
		sections = append(sections, m.cardsTable.View())
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.AccentColor).
		Padding(0, 2)
	inactive := lipgloss.NewStyle().
		Foreground(cli.SubtleColor).
		Padding(0, 2)

	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if View(i) == m.view {
			tabs[i] = active.Render(title)
		} else {
			tabs[i] = inactive.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderSummary() string {
	sum := m.store.Summarize()

	kpis := []struct {
		label string
		value string
	}{
		{"Liquidità", money.FormatAmount(sum.EffectiveCash)},
		{"Debiti", money.FormatAmount(sum.Debt)},
		{"Netto", money.FormatAmount(sum.NetWorth)},
		{"Stipendio", money.FormatAmount(sum.Salary)},
		{"Spese previste", money.FormatAmount(sum.MonthlyExpenses)},
	}

	boxes := make([]string, len(kpis))
	for i, kpi := range kpis {
		boxes[i] = cli.RenderBox(kpi.label, cli.AmountStyle.Render(kpi.value))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) renderFooter() string {
	saved := "Ultimo salvataggio: —"
	if t := m.store.LastSavedAt(); !t.IsZero() {
		saved = "Ultimo salvataggio: " + t.Format("02/01/2006 15:04:05")
	}

	help := fmt.Sprintf("%s · %s", m.keymap.NextTab.Help().Key, m.keymap.Quit.Help().Key)
	return cli.SubtleStyle.Render(saved + "   " + help)
}

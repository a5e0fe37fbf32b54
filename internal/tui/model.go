// Package tui implements the interactive dashboard: a month browser over the
// ledger snapshot with the same figures the summary command prints.
package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mdshariful/hishab/internal/cli"
	"github.com/mdshariful/hishab/internal/model"
	"github.com/mdshariful/hishab/internal/report"
)

// Model holds the dashboard state. The snapshot is read-only; flipping
// months only changes which slice of it is displayed.
type Model struct {
	snapshot *model.AppData
	month    time.Time
	table    table.Model
	width    int
	quitting bool
}

// New creates a dashboard positioned on the current month.
func New(snapshot *model.AppData, month time.Time) Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Category", Width: 20},
		{Title: "Amount", Width: 14},
		{Title: "Description", Width: 28},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cli.SubtleColor).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(cli.PrimaryColor)
	t.SetStyles(s)

	m := Model{
		snapshot: snapshot,
		month:    time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location()),
		table:    t,
		width:    80,
	}
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			m.month = m.month.AddDate(0, -1, 0)
			m.refreshRows()
			return m, nil
		case "right", "l":
			m.month = m.month.AddDate(0, 1, 0)
			m.refreshRows()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// refreshRows rebuilds the table from the displayed month, newest first.
func (m *Model) refreshRows() {
	txns := report.MonthlyTransactions(m.snapshot, m.month)
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date.Time)
	})

	rows := make([]table.Row, 0, len(txns))
	for _, txn := range txns {
		sign := "-"
		if txn.Type == model.Income {
			sign = "+"
		}
		rows = append(rows, table.Row{
			txn.Date.Format("02 Jan 15:04"),
			txn.Category,
			sign + cli.Amount(txn.Amount),
			txn.Description,
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Month returns the first day of the displayed month.
func (m Model) Month() time.Time {
	return m.month
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sums := report.MonthlySums(report.MonthlyTransactions(m.snapshot, m.month))
	receivables, payables := report.TotalsByDirection(report.PartyBalances(m.snapshot))

	header := cli.TitleStyle.Render(m.month.Format("January 2006"))
	figures := lipgloss.JoinHorizontal(lipgloss.Top,
		figureBox("Income", cli.IncomeStyle.Render(cli.Amount(sums.Income))),
		figureBox("Expense", cli.ExpenseStyle.Render(cli.Amount(sums.Expense))),
		figureBox("Hand Cash", cli.BoldStyle.Render(cli.Amount(report.CashBalance(m.snapshot)))),
		figureBox("Savings", cli.SavingsStyle.Render(cli.Amount(report.SavingsBalance(m.snapshot)))),
		figureBox("I'll Get", cli.IncomeStyle.Render(cli.Amount(receivables))),
		figureBox("I'll Give", cli.ExpenseStyle.Render(cli.Amount(payables))),
	)

	help := cli.SubtleStyle.Render("←/→ change month • ↑/↓ scroll • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		figures,
		"",
		m.table.View(),
		"",
		help,
	)
}

func figureBox(label, value string) string {
	return lipgloss.NewStyle().Padding(0, 2, 0, 0).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			cli.SubtleStyle.Render(label),
			value,
		),
	)
}

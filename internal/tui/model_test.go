package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdshariful/hishab/internal/model"
)

func dashboardSnapshot() *model.AppData {
	data := model.NewAppData()
	data.Transactions = []model.Transaction{
		{
			ID:       "jan",
			Type:     model.Income,
			Amount:   decimal.NewFromInt(1000),
			Category: "Salary",
			Date:     model.NewTimestamp(time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)),
		},
		{
			ID:       "feb",
			Type:     model.Expense,
			Amount:   decimal.NewFromInt(250),
			Category: "Rent",
			Date:     model.NewTimestamp(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)),
		},
	}
	return data
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestMonthNavigation(t *testing.T) {
	m := New(dashboardSnapshot(), time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.February, m.Month().Month())

	next, _ := m.Update(keyMsg("left"))
	m = next.(Model)
	assert.Equal(t, time.January, m.Month().Month())

	next, _ = m.Update(keyMsg("right"))
	m = next.(Model)
	assert.Equal(t, time.February, m.Month().Month())
}

func TestViewShowsMonthFigures(t *testing.T) {
	m := New(dashboardSnapshot(), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	view := m.View()
	assert.Contains(t, view, "January 2024")
	assert.Contains(t, view, "Salary")
	// All-time cash balance: 1000 income minus 250 expense.
	assert.Contains(t, view, "750")
	// February's rent is not in January's table.
	assert.False(t, strings.Contains(view, "Rent"))
}

func TestQuitKeys(t *testing.T) {
	m := New(dashboardSnapshot(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	next, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, next.(Model).View())
}

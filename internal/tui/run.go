package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdshariful/hishab/internal/model"
)

// Run starts the dashboard on the given month and blocks until the user
// quits.
func Run(snapshot *model.AppData, month time.Time) error {
	p := tea.NewProgram(New(snapshot, month), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}

package tui

import tea "github.com/charmbracelet/bubbletea"

// Init initializes the TUI
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("SnapSheet")
}

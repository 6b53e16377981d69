package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const logPanelLines = 200

// openPanel activates the read-only panel overlay with the given title and content.
func (m *Model) openPanel(title, content string) {
	m.panelTitle = title
	m.panelLines = strings.Split(content, "\n")
	m.panelScroll = 0

	visibleHeight := m.panelVisibleHeight()
	m.panelMaxScroll = len(m.panelLines) - visibleHeight
	if m.panelMaxScroll < 0 {
		m.panelMaxScroll = 0
	}
	// Logs are read from the bottom.
	m.panelScroll = m.panelMaxScroll

	m.panelActive = true
}

// openLogPanel shows the tail of the debug log.
func (m *Model) openLogPanel() {
	content := m.log.GetLastLines(logPanelLines)
	if content == "" {
		content = "(log is empty)"
	}
	m.openPanel("Debug Log", content)
}

// panelVisibleHeight returns how many content lines fit in the panel.
func (m *Model) panelVisibleHeight() int {
	// area height minus: border(2) + padding(2) + title(1) + blank(1) + scroll indicators(2) + blank(1) + footer(1)
	h := m.sheetAreaBottom() - 10
	if h < 3 {
		h = 3
	}
	return h
}

// panelUpdate handles keyboard input while the panel overlay is active.
func (m Model) panelUpdate(msg tea.KeyMsg) (Model, tea.Cmd) {
	pageSize := m.panelVisibleHeight()

	switch msg.String() {
	case "esc", "q", "L":
		m.panelActive = false

	case "up", "k":
		if m.panelScroll > 0 {
			m.panelScroll--
		}

	case "down", "j":
		if m.panelScroll < m.panelMaxScroll {
			m.panelScroll++
		}

	case "pgup", "b":
		m.panelScroll = max(m.panelScroll-pageSize, 0)

	case "pgdown", "f":
		m.panelScroll = min(m.panelScroll+pageSize, m.panelMaxScroll)

	case "home", "g":
		m.panelScroll = 0

	case "end", "G":
		m.panelScroll = m.panelMaxScroll
	}

	return m, nil
}

// panelView renders the panel overlay.
func (m Model) panelView() string {
	boxWidth := m.width - 6
	if boxWidth < 40 {
		boxWidth = 40
	}

	visibleHeight := m.panelVisibleHeight()

	var s strings.Builder

	s.WriteString(PanelTitleStyle.Render(m.panelTitle))
	s.WriteString("\n\n")

	if m.panelScroll > 0 {
		s.WriteString(PanelScrollStyle.Render(fmt.Sprintf("  ▲ %d more", m.panelScroll)))
		s.WriteString("\n")
	}

	end := min(m.panelScroll+visibleHeight, len(m.panelLines))
	for i := m.panelScroll; i < end; i++ {
		s.WriteString(truncateText(m.panelLines[i], boxWidth-6))
		s.WriteString("\n")
	}

	if remaining := len(m.panelLines) - end; remaining > 0 {
		s.WriteString(PanelScrollStyle.Render(fmt.Sprintf("  ▼ %d more", remaining)))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(PanelFooterStyle.Render("↑/↓ Scroll | PgUp/PgDn Page | Home/End | Esc Close"))

	return PanelBoxStyle.Width(boxWidth).Render(s.String())
}

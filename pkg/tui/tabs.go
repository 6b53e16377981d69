package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// tabDef is one tab hosted by the sheet.
type tabDef struct {
	Icon  string
	Title string
	Body  func(m *Model) string
}

// tabHit maps a column range of the tab label row to a tab index.
type tabHit struct {
	startX int
	endX   int
	tab    int
}

var sheetTabs = []tabDef{
	{
		Icon:  "①",
		Title: "First Tab",
		Body: func(m *Model) string {
			var s strings.Builder
			s.WriteString("This is the first tab!\n\n")
			s.WriteString("The settings sheet is presented from this tab. ")
			s.WriteString("Press s, or use the button above the sheet, to open it. ")
			s.WriteString("A request made while another tab is showing waits until you come back here.\n\n")
			s.WriteString(fmt.Sprintf("Snap points: %s rows.\n", m.panel.Snaps()))
			s.WriteString("Drag the grabber to resize the sheet; it settles on the nearest snap point when you let go. ")
			s.WriteString("Tap the grabber to step to the next snap point.")
			return s.String()
		},
	},
	{
		Icon:  "②",
		Title: "Second Tab",
		Body: func(m *Model) string {
			var s strings.Builder
			s.WriteString("This is the second tab!\n\n")
			b := m.panel.Bounds()
			s.WriteString(fmt.Sprintf("The sheet may be between %.0f and %.0f rows tall. ", b.Min, b.Max))
			s.WriteString("Use [ and ] to move between snap points from the keyboard.")
			return s.String()
		},
	},
}

// tabContent returns the wrapped body of the selected tab.
func (m *Model) tabContent(width int) string {
	body := sheetTabs[m.tabs.Index()].Body(m)
	if width < 10 {
		width = 10
	}
	return wordwrap.String(body, width)
}

// tabLabels renders each tab label and the column range it occupies.
func tabLabels(selected int) ([]string, []tabHit) {
	labels := make([]string, 0, len(sheetTabs))
	hits := make([]tabHit, 0, len(sheetTabs))
	x := 0
	for i, tab := range sheetTabs {
		style := TabStyle
		if i == selected {
			style = ActiveTabStyle
		}
		label := style.Render(tab.Icon + " " + tab.Title)
		w := lipgloss.Width(label)
		hits = append(hits, tabHit{startX: x, endX: x + w, tab: i})
		x += w
		labels = append(labels, label)
	}
	return labels, hits
}

// tabBarView renders the separator and the tab labels.
func (m *Model) tabBarView() string {
	labels, _ := tabLabels(m.tabs.Index())
	separator := TabSeparatorStyle.Render(strings.Repeat("─", max(m.width, 0)))
	return separator + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// tabAt returns the tab under column x of the label row, or -1.
func (m *Model) tabAt(x int) int {
	_, hits := tabLabels(m.tabs.Index())
	for _, hit := range hits {
		if x >= hit.startX && x < hit.endX {
			return hit.tab
		}
	}
	return -1
}

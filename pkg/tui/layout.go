package tui

import (
	"math"

	"SnapSheet/pkg/sheet"
)

// Layout constants for consistent spacing
const (
	HeaderHeight  = 1
	TabBarHeight  = 2 // separator + labels
	HelpBarHeight = 1
	HandleRows    = 2 // grabber + title; both start a drag

	// Main content rows, counted from the top of the screen.
	GreetingRow = 2
	ButtonRow   = 4
)

// sheetAreaBottom is the first row below the area the sheet can grow into,
// which is also where the tab bar starts.
func (m *Model) sheetAreaBottom() int {
	h := m.height - TabBarHeight - HelpBarHeight
	if h < 0 {
		h = 0
	}
	return h
}

// topInset is the number of rows a fully raised sheet leaves uncovered.
func (m *Model) topInset() int {
	inset := m.cfg.Panel.TopInset
	if limit := m.sheetAreaBottom() - 1; inset > limit {
		inset = limit
	}
	if inset < 0 {
		inset = 0
	}
	return inset
}

// panelBounds derives the controller bounds from the terminal size. The
// configured minimum is lowered when the terminal is too short for it.
func (m *Model) panelBounds() sheet.Bounds {
	maxH := m.sheetAreaBottom() - m.topInset()
	if maxH < 1 {
		maxH = 1
	}
	minH := m.cfg.Panel.MinHeight
	if minH > maxH {
		minH = maxH
	}
	if minH < 1 {
		minH = 1
	}
	return sheet.Bounds{Min: float64(minH), Max: float64(maxH)}
}

// displayedRows is the sheet height on screen: the settle animation while it
// runs, the controller height otherwise.
func (m *Model) displayedRows() int {
	h := m.panel.CurrentHeight()
	if m.settle.active {
		h = m.panel.Bounds().Clamp(m.settle.pos)
	}
	return int(math.Round(h))
}

// sheetTop returns the screen row of the sheet's first line.
func (m *Model) sheetTop() int {
	return m.sheetAreaBottom() - m.displayedRows()
}

// inHandle reports whether screen row y lies on the sheet's grab region.
func (m *Model) inHandle(y int) bool {
	if !m.rootSheet.Visible() {
		return false
	}
	top := m.sheetTop()
	return y >= top && y < top+HandleRows && y < m.sheetAreaBottom()
}

// inSheetBody reports whether screen row y lies inside the sheet below the handle.
func (m *Model) inSheetBody(y int) bool {
	if !m.rootSheet.Visible() {
		return false
	}
	return y >= m.sheetTop()+HandleRows && y < m.sheetAreaBottom()
}

// absoluteY converts a screen row into the finger position the controller
// expects: measured from the top of the area the sheet can grow into.
func (m *Model) absoluteY(y int) float64 {
	return float64(y - m.topInset())
}

// tabLabelRow is the screen row holding the tab labels.
func (m *Model) tabLabelRow() int {
	return m.sheetAreaBottom() + TabBarHeight - 1
}

// contentHeight is the number of body rows available to tab content at sheet height h.
func contentHeight(h int) int {
	if h <= HandleRows {
		return 0
	}
	return h - HandleRows
}

package tui

import (
	"SnapSheet/pkg/sheet"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const settingsButtonLabel = "Show Settings in First Tab"

// gesture tracks a mouse press that landed on the sheet's grab region.
type gesture struct {
	active bool
	moved  bool
	startY int
}

// transitionQueue collects controller transitions until the model turns
// them into animation commands.
type transitionQueue struct {
	items []sheet.Transition
}

func (q *transitionQueue) push(t sheet.Transition) {
	q.items = append(q.items, t)
}

func (q *transitionQueue) drain() []sheet.Transition {
	items := q.items
	q.items = nil
	return items
}

// handleMouse processes mouse input on the main screen.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.GetState() != StateMain {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.inSheetBody(msg.Y) {
				m.content.LineUp(1)
			}
			return m, nil

		case tea.MouseButtonWheelDown:
			if m.inSheetBody(msg.Y) {
				m.content.LineDown(1)
			}
			return m, nil

		case tea.MouseButtonLeft:
			// A second press while a drag is live means the release was lost.
			if m.gesture.active {
				cmd := m.cancelGesture("press during drag")
				return m, cmd
			}
			if m.inHandle(msg.Y) {
				m.settle.stop()
				m.gesture = gesture{active: true, startY: msg.Y}
				return m, nil
			}
			if msg.Y == m.tabLabelRow() {
				if tab := m.tabAt(msg.X); tab >= 0 {
					m.selectTab(tab)
				}
				return m, nil
			}
			if m.onSettingsButton(msg.X, msg.Y) {
				m.requestSettings()
			}
		}

	case tea.MouseActionMotion:
		if !m.gesture.active {
			return m, nil
		}
		delta := float64(msg.Y - m.gesture.startY)
		if delta == 0 && !m.gesture.moved {
			return m, nil
		}
		m.gesture.moved = true
		abs := m.absoluteY(msg.Y)
		m.panel.OnDragChanged(delta, &abs)

	case tea.MouseActionRelease:
		if !m.gesture.active {
			return m, nil
		}
		g := m.gesture
		m.gesture = gesture{}
		if !g.moved {
			// A tap on the grabber steps through the snap points.
			cmd := m.stepSnap(1, true)
			return m, cmd
		}
		m.panel.OnDragEnded()
		return m, m.afterCommit()
	}

	return m, nil
}

// cancelGesture abandons the active drag, if any.
func (m *Model) cancelGesture(reason string) tea.Cmd {
	m.gesture = gesture{}
	if !m.panel.IsDragging() {
		return nil
	}
	m.log.Debug("drag cancelled: %s", reason)
	m.panel.CancelDrag()
	return m.afterCommit()
}

// stepSnap moves to the neighbouring snap point above (dir > 0) or below by
// replaying it as a gesture, so the controller stays the only writer of the
// height. With wrap set, stepping past either end continues at the other.
func (m *Model) stepSnap(dir int, wrap bool) tea.Cmd {
	m.cancelGesture("keyboard step")

	snaps := m.panel.Snaps()
	cur := m.panel.CurrentHeight()

	var target float64
	var ok bool
	if dir > 0 {
		target, ok = snaps.Next(cur)
	} else {
		target, ok = snaps.Prev(cur)
	}
	if !ok && wrap && snaps.Len() > 1 {
		pts := snaps.Points()
		if dir > 0 {
			target, ok = pts[0], true
		} else {
			target, ok = pts[len(pts)-1], true
		}
	}
	if !ok {
		return nil
	}

	m.panel.OnDragChanged(cur-target, nil)
	m.panel.OnDragEnded()
	return m.afterStep(cur)
}

// afterStep reports a replayed gesture. The replay reaches its target before
// it commits, so the transition is rewritten to start where the step began.
func (m *Model) afterStep(from float64) tea.Cmd {
	for i := range m.transitions.items {
		t := &m.transitions.items[i]
		t.From = from
		t.Animate = t.From != t.To
	}
	return m.afterCommit()
}

// afterCommit turns queued transitions into log lines and, when enabled, a
// settle animation.
func (m *Model) afterCommit() tea.Cmd {
	var cmd tea.Cmd
	for _, t := range m.transitions.drain() {
		m.log.Info("sheet %s: %s -> %s rows", t.Kind, formatRows(t.From), formatRows(t.To))
		if t.Animate && m.cfg.Panel.Animate && t.Kind != sheet.TransitionResize {
			cmd = m.settle.start(t.From, t.To)
			continue
		}
		m.settle.target = t.To
		m.settle.stop()
	}
	return cmd
}

// settingsButtonRange returns the columns covered by the settings button.
func settingsButtonRange() (int, int) {
	start := ButtonStyle.GetMarginLeft()
	return start, lipgloss.Width(ButtonStyle.Render(settingsButtonLabel))
}

// onSettingsButton reports whether (x, y) hits the settings button and the
// button is not covered by the sheet.
func (m *Model) onSettingsButton(x, y int) bool {
	if y != ButtonRow {
		return false
	}
	if m.rootSheet.Visible() && y >= m.sheetTop() {
		return false
	}
	start, end := settingsButtonRange()
	return x >= start && x < end
}

package tui

// TUIState represents the current active view or overlay in the TUI.
type TUIState int

const (
	StateMain TUIState = iota
	StateSettings
	StateLogPanel
)

// GetState derives the active overlay. The settings sheet belongs to the
// first tab, so a pending request only shows while that tab is selected.
func (m Model) GetState() TUIState {
	switch {
	case m.settings.Visible() && m.tabs.Index() == 0:
		return StateSettings
	case m.panelActive:
		return StateLogPanel
	default:
		return StateMain
	}
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"SnapSheet/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
)

// SettingsItem represents a single toggleable or editable setting.
type SettingsItem struct {
	Label       string
	Description string
	Key         string
	GetValue    func(*config.Config) string
	Toggle      func(*config.Config)
	SetValue    func(*config.Config, string) error
	IsBool      bool
	IsEditable  bool
	// Rebuild marks settings that change the sheet geometry or cancel policy.
	Rebuild bool
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// buildSettingsItems returns the full list of toggleable and editable settings.
func buildSettingsItems() []SettingsItem {
	return []SettingsItem{
		// ── Behaviour ─────────────────────────────────────
		{
			Label:       "Animate Snaps",
			Description: "Ease the sheet onto its snap point when a drag ends",
			Key:         "animate",
			IsBool:      true,
			GetValue:    func(c *config.Config) string { return onOff(c.Panel.Animate) },
			Toggle:      func(c *config.Config) { c.Panel.Animate = !c.Panel.Animate },
		},
		{
			Label:       "Cancel Restores Height",
			Description: "An interrupted drag returns to where it started instead of snapping",
			Key:         "cancel_restores",
			IsBool:      true,
			Rebuild:     true,
			GetValue:    func(c *config.Config) string { return onOff(c.Panel.CancelRestores) },
			Toggle:      func(c *config.Config) { c.Panel.CancelRestores = !c.Panel.CancelRestores },
		},
		{
			Label:       "Show Drag Debug",
			Description: "Show height, gesture state and direction lock in the header",
			Key:         "show_drag_debug",
			IsBool:      true,
			GetValue:    func(c *config.Config) string { return onOff(c.UI.ShowDragDebug) },
			Toggle:      func(c *config.Config) { c.UI.ShowDragDebug = !c.UI.ShowDragDebug },
		},
		// ── Geometry ──────────────────────────────────────
		{
			Label:       "Min Height",
			Description: "Smallest sheet height in rows",
			Key:         "min_height",
			IsEditable:  true,
			Rebuild:     true,
			GetValue:    func(c *config.Config) string { return strconv.Itoa(c.Panel.MinHeight) },
			SetValue: func(c *config.Config, v string) error {
				n, err := strconv.Atoi(strings.TrimSpace(v))
				if err != nil {
					return fmt.Errorf("min height must be a whole number")
				}
				c.Panel.MinHeight = n
				return nil
			},
		},
		{
			Label:       "Snap Points",
			Description: "Comma separated: rows, percentages, medium, large",
			Key:         "detents",
			IsEditable:  true,
			Rebuild:     true,
			GetValue:    func(c *config.Config) string { return strings.Join(c.Panel.Detents, ", ") },
			SetValue: func(c *config.Config, v string) error {
				var detents []string
				for _, d := range strings.Split(v, ",") {
					if d = strings.TrimSpace(d); d != "" {
						detents = append(detents, d)
					}
				}
				c.Panel.Detents = detents
				return nil
			},
		},
		{
			Label:       "Initial Snap Point",
			Description: "Sheet height at startup",
			Key:         "initial_detent",
			IsEditable:  true,
			GetValue:    func(c *config.Config) string { return c.Panel.InitialDetent },
			SetValue: func(c *config.Config, v string) error {
				c.Panel.InitialDetent = strings.TrimSpace(v)
				return nil
			},
		},
		{
			Label:       "Theme",
			Description: "dark, light or auto",
			Key:         "theme",
			IsEditable:  true,
			GetValue:    func(c *config.Config) string { return c.UI.Theme },
			SetValue: func(c *config.Config, v string) error {
				c.UI.Theme = strings.ToLower(strings.TrimSpace(v))
				return nil
			},
		},
	}
}

// openSettings resets the settings sheet and focuses the item matching focusKey.
func (m *Model) openSettings(focusKey string) {
	m.settingsItems = buildSettingsItems()
	m.settingsCursor = 0
	m.settingsEditing = false
	m.settingsErr = ""

	for i, item := range m.settingsItems {
		if item.Key == focusKey {
			m.settingsCursor = i
			break
		}
	}

	m.settings.Show()
}

// applySetting runs change against a copy of the config and commits it only
// when the result validates and, for geometry changes, builds a controller.
func (m *Model) applySetting(item SettingsItem, change func(*config.Config) error) {
	updated := *m.cfg
	updated.Panel.Detents = append([]string(nil), m.cfg.Panel.Detents...)

	if err := change(&updated); err != nil {
		m.settingsErr = err.Error()
		return
	}
	if err := updated.Validate(); err != nil {
		m.settingsErr = err.Error()
		return
	}

	previous := *m.cfg
	*m.cfg = updated
	if item.Rebuild {
		if err := m.rebuildPanel(); err != nil {
			*m.cfg = previous
			m.settingsErr = err.Error()
			return
		}
	}
	applyTheme(m.cfg.UI.Theme)
	m.settingsErr = ""
	m.log.Info("setting %s = %s", item.Key, item.GetValue(m.cfg))
	m.saveConfig()
}

// settingsUpdate handles keyboard input while the settings sheet is active.
func (m Model) settingsUpdate(msg tea.KeyMsg) (Model, tea.Cmd) {
	// ── Edit mode ─────────────────────────────────────────
	if m.settingsEditing {
		switch msg.Type {
		case tea.KeyEsc:
			m.settingsEditing = false
			m.settingsInput.Blur()
			return m, nil

		case tea.KeyEnter:
			if m.settingsCursor < len(m.settingsItems) {
				item := m.settingsItems[m.settingsCursor]
				value := m.settingsInput.Value()
				if item.SetValue != nil {
					m.applySetting(item, func(c *config.Config) error { return item.SetValue(c, value) })
				}
			}
			m.settingsEditing = false
			m.settingsInput.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.settingsInput, cmd = m.settingsInput.Update(msg)
		return m, cmd
	}

	// ── Normal navigation mode ────────────────────────────
	switch msg.String() {
	case "esc", "q":
		m.settings.Hide()
		m.settingsErr = ""
		return m, nil

	case "up", "k":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		return m, nil

	case "down", "j":
		if m.settingsCursor < len(m.settingsItems)-1 {
			m.settingsCursor++
		}
		return m, nil

	case "enter", " ":
		if m.settingsCursor < len(m.settingsItems) {
			item := m.settingsItems[m.settingsCursor]
			if item.IsBool && item.Toggle != nil {
				m.applySetting(item, func(c *config.Config) error {
					item.Toggle(c)
					return nil
				})
			} else if item.IsEditable {
				m.settingsEditing = true
				m.settingsErr = ""
				m.settingsInput.SetValue(item.GetValue(m.cfg))
				m.settingsInput.CursorEnd()
				return m, m.settingsInput.Focus()
			}
		}
		return m, nil
	}

	return m, nil
}

// settingsView renders the settings sheet.
func (m Model) settingsView() string {
	boxWidth := m.width - 4
	if boxWidth < 40 {
		boxWidth = 40
	}

	var s strings.Builder

	s.WriteString(SettingsTitleStyle.Render("Settings"))
	s.WriteString("\n\n")

	for i, item := range m.settingsItems {
		cursor := "  "
		labelStyle := SettingsNormalStyle
		if i == m.settingsCursor {
			cursor = "▸ "
			labelStyle = SettingsSelectedStyle
		}

		var valueStyled string

		if m.settingsEditing && i == m.settingsCursor {
			valueStyled = m.settingsInput.View()
		} else if item.IsBool {
			if item.GetValue(m.cfg) == "ON" {
				valueStyled = SettingsOnStyle.Render("[ON]")
			} else {
				valueStyled = SettingsOffStyle.Render("[OFF]")
			}
		} else {
			valueStyled = SettingsValueStyle.Render("[" + item.GetValue(m.cfg) + "]")
		}

		s.WriteString(labelStyle.Render(cursor+item.Label) + "  " + valueStyled)
		s.WriteString("\n")

		if i == m.settingsCursor {
			s.WriteString(PanelFooterStyle.Render("    " + item.Description))
			s.WriteString("\n")
		}
	}

	if m.settingsErr != "" {
		s.WriteString("\n")
		s.WriteString(ErrorMsgStyle.Render(truncateText(m.settingsErr, boxWidth-6)))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.settingsEditing {
		s.WriteString(PanelFooterStyle.Render("Enter Confirm | Esc Cancel"))
	} else {
		s.WriteString(PanelFooterStyle.Render("↑/↓ Navigate | Enter Edit/Toggle | Esc Close"))
	}

	return SettingsBoxStyle.Width(boxWidth).Render(s.String())
}

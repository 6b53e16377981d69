package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme colors - "Indigo & Slate" palette, adaptive for light terminals
var (
	PrimaryColor   = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#6366F1"} // Indigo
	SecondaryColor = lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#0EA5E9"} // Sky
	AccentColor    = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"} // Amber
	SuccessColor   = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"} // Emerald
	ErrorColor     = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"} // Red
	MutedColor     = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#64748B"} // Slate 500

	// Backgrounds
	BgSheet = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#1E293B"} // Slate 200 / 800

	// Text
	TextPrimary   = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#F8FAFC"}
	TextSecondary = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94A3B8"}
)

// Shared Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	StatusItemStyle = lipgloss.NewStyle().
			Foreground(TextSecondary)

	GreetingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			Padding(0, 2)

	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(PrimaryColor).
			Padding(0, 2).
			MarginLeft(2)

	HintStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// Sheet
	SheetStyle = lipgloss.NewStyle().
			Background(BgSheet).
			Foreground(TextPrimary)

	GrabberStyle = lipgloss.NewStyle().
			Background(BgSheet).
			Foreground(MutedColor)

	GrabberActiveStyle = lipgloss.NewStyle().
				Background(BgSheet).
				Foreground(AccentColor).
				Bold(true)

	SheetTitleStyle = lipgloss.NewStyle().
			Background(BgSheet).
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	// Tab bar
	TabSeparatorStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	TabStyle = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	HelpBarStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ErrorMsgStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Panel overlay
	PanelBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(1, 2)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	PanelScrollStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)

	PanelFooterStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// Settings sheet
	SettingsBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true, true, false, true).
				BorderForeground(PrimaryColor).
				Padding(1, 2)

	SettingsTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	SettingsNormalStyle = lipgloss.NewStyle().
				Foreground(TextSecondary)

	SettingsSelectedStyle = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Bold(true)

	SettingsValueStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor)

	SettingsOnStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	SettingsOffStyle = lipgloss.NewStyle().
				Foreground(MutedColor)
)

// applyTheme forces the adaptive palette for "dark" and "light"; "auto"
// asks the terminal again, replacing any earlier forced choice.
func applyTheme(theme string) {
	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}
}

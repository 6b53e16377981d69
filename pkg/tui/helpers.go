package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// truncateText truncates text to fit within maxLen cells
func truncateText(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return ansi.Truncate(text, maxLen, "…")
}

// formatRows renders a height as whole rows.
func formatRows(h float64) string {
	return fmt.Sprintf("%.0f", h)
}

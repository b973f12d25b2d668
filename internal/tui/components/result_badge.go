// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/logstacklabs/eon/internal/tui/styles"
)

// ResultState is the outcome of a single build step.
type ResultState string

const (
	ResultOK      ResultState = "ok"
	ResultFailed  ResultState = "failed"
	ResultSkipped ResultState = "skipped"
)

// RenderResultBadge renders a result with icon and color.
func RenderResultBadge(styleSet styles.Styles, state ResultState) string {
	icon, label, style := resultDescriptor(styleSet, state)
	return style.Render(fmt.Sprintf("%s %s", icon, label))
}

// ResultIcon returns only the icon for state.
func ResultIcon(state ResultState) string {
	icon, _, _ := resultDescriptor(styles.PlainStyles(), state)
	return icon
}

func resultDescriptor(styleSet styles.Styles, state ResultState) (string, string, lipgloss.Style) {
	switch state {
	case ResultOK:
		return "✅", "OK", styleSet.Success
	case ResultFailed:
		return "❌", "Failed", styleSet.Error
	case ResultSkipped:
		return "-", "Skipped", styleSet.Muted
	default:
		return "?", "Unknown", styleSet.Muted
	}
}

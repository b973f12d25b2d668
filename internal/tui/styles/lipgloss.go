package styles

import "github.com/charmbracelet/lipgloss"

// SwatchWidth is the width of a rendered color block.
const SwatchWidth = 6

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme   Theme
	Plain   bool
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
	Focus   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// PlainStyles returns styles that add no color, for pipes and --no-color.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Theme:   DefaultTheme,
		Plain:   true,
		Title:   plain,
		Text:    plain,
		Muted:   plain,
		Accent:  plain,
		Panel:   plain,
		Border:  plain,
		Focus:   plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Info:    plain,
	}
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	return Styles{
		Theme:   theme,
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Focus:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Info)),
	}
}

// Swatch renders a block filled with hex. Plain styles render nothing.
func (s Styles) Swatch(hex string) string {
	if s.Plain {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Width(SwatchWidth).
		Render("")
}

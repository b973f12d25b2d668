// Package styles builds lipgloss styles for eon's terminal output.
package styles

import "github.com/logstacklabs/eon/internal/palette"

// ThemeTokens defines the semantic color roles for terminal output.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// ThemeByName returns the named theme, or DefaultTheme for an unknown name.
func ThemeByName(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return DefaultTheme
}

// eon returns the hex of a palette color. Theme roles only name colors that exist.
func eon(name string) string {
	hex, ok := palette.GetColor(name)
	if !ok {
		panic("styles: unknown palette color " + name)
	}
	return hex
}

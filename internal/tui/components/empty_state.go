package components

import (
	"fmt"
	"strings"

	"github.com/logstacklabs/eon/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "🎨", "🔍").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the CLI command to run (e.g., "eon groups").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Try:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// EmptyPalette is shown when a palette has no colors.
func EmptyPalette() EmptyState {
	return EmptyState{
		Icon:  "🎨",
		Title: "No colors to show",
	}
}

// UnknownGroup is shown when a group filter matches nothing.
func UnknownGroup(name string) EmptyState {
	return EmptyState{
		Icon:     "🔍",
		Title:    fmt.Sprintf("No group named '%s'", name),
		Subtitle: "Group names are case sensitive.",
		Suggestions: []Suggestion{
			{Command: "eon groups", Description: "list the available groups"},
		},
	}
}

// UnknownColor is shown when a color lookup fails.
func UnknownColor(name string) EmptyState {
	return EmptyState{
		Icon:  "🔍",
		Title: fmt.Sprintf("No color named '%s'", name),
		Suggestions: []Suggestion{
			{Command: "eon colors", Description: "list every color"},
		},
	}
}

// NoArtifacts is shown when a build produced nothing.
func NoArtifacts(dir string) EmptyState {
	return EmptyState{
		Icon:     "📭",
		Title:    "No files were generated",
		Subtitle: fmt.Sprintf("Check that %s is writable.", dir),
		Suggestions: []Suggestion{
			{Command: "eon build --output <dir>", Description: "write to another directory"},
		},
	}
}

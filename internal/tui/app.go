// Package tui implements the eon palette browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/logstacklabs/eon/internal/palette"
	"github.com/logstacklabs/eon/internal/tui/components"
	"github.com/logstacklabs/eon/internal/tui/styles"
)

// Options configures the browser.
type Options struct {
	Theme   string
	NoColor bool
}

// Run launches the palette browser.
func Run(opts Options) error {
	program := tea.NewProgram(initialModel(opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	width  int
	height int
	styles styles.Styles
	groups []palette.Group
	colors *palette.Table
	cursor int
	view   viewID
}

const (
	minWidth  = 40
	minHeight = 12
)

type viewID int

const (
	viewGroups viewID = iota
	viewAll
)

func initialModel(opts Options) model {
	styleSet := styles.BuildStyles(styles.ThemeByName(opts.Theme))
	if opts.NoColor {
		styleSet = styles.PlainStyles()
	}
	return model{
		styles: styleSet,
		groups: palette.EonGroups().Groups(),
		colors: palette.Eon(),
		view:   viewGroups,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "tab":
			m.cursor = m.step(1)
		case "left", "h", "shift+tab":
			m.cursor = m.step(-1)
		case "a":
			if m.view == viewAll {
				m.view = viewGroups
			} else {
				m.view = viewAll
			}
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) step(delta int) int {
	n := len(m.groups)
	if n == 0 {
		return 0
	}
	return ((m.cursor+delta)%n + n) % n
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	lines := []string{
		m.styles.Title.Render("Eon palette"),
		components.RenderStrip(m.styles, m.colors),
		"",
	}
	lines = append(lines, m.viewLines()...)
	lines = append(lines, "", m.styles.Muted.Render("Shortcuts: ←/→ group | a all colors | q quit"))

	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) viewLines() []string {
	if m.view == viewAll {
		return []string{
			m.styles.Accent.Render(fmt.Sprintf("All colors (%d)", m.colors.Len())),
			components.RenderSwatches(m.styles, m.colors),
		}
	}
	if len(m.groups) == 0 {
		return []string{components.EmptyPalette().Render(m.styles)}
	}

	group := m.groups[m.cursor]
	return []string{
		m.tabs(),
		"",
		m.styles.Accent.Render(fmt.Sprintf("%s (%d)", group.Name, group.Colors.Len())),
		components.RenderSwatches(m.styles, group.Colors),
	}
}

func (m model) tabs() string {
	names := make([]string, 0, len(m.groups))
	for i, group := range m.groups {
		if i == m.cursor {
			names = append(names, m.styles.Focus.Render("["+group.Name+"]"))
			continue
		}
		names = append(names, m.styles.Muted.Render(group.Name))
	}
	return strings.Join(names, " ")
}

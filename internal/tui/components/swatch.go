package components

import (
	"fmt"
	"strings"

	"github.com/logstacklabs/eon/internal/palette"
	"github.com/logstacklabs/eon/internal/tui/styles"
)

// RenderSwatchRow renders one color as a block followed by its name and hex.
func RenderSwatchRow(styleSet styles.Styles, name, hex string, nameWidth int) string {
	label := fmt.Sprintf("%-*s", nameWidth, name)
	row := styleSet.Text.Render(label) + "  " + styleSet.Muted.Render(hex)
	if swatch := styleSet.Swatch(hex); swatch != "" {
		return swatch + " " + row
	}
	return row
}

// RenderSwatches renders every color of table, one per line.
func RenderSwatches(styleSet styles.Styles, table *palette.Table) string {
	if table.Len() == 0 {
		return EmptyPalette().Render(styleSet)
	}
	width := 0
	for _, name := range table.Names() {
		width = max(width, len(name))
	}
	lines := make([]string, 0, table.Len())
	for name, hex := range table.All() {
		lines = append(lines, RenderSwatchRow(styleSet, name, hex, width))
	}
	return strings.Join(lines, "\n")
}

// RenderStrip renders the colors of table side by side as blocks.
func RenderStrip(styleSet styles.Styles, table *palette.Table) string {
	var b strings.Builder
	for _, hex := range table.All() {
		b.WriteString(styleSet.Swatch(hex))
	}
	return b.String()
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logstacklabs/eon/internal/export"
	"github.com/logstacklabs/eon/internal/palette"
	"github.com/logstacklabs/eon/internal/tui/components"
)

var (
	// ErrColorNotFound is returned when a color name is not in the palette.
	ErrColorNotFound = errors.New("color not found")
	// ErrGroupNotFound is returned when a group name is not defined.
	ErrGroupNotFound = errors.New("group not found")
)

var colorsGroup string

func init() {
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(groupsCmd)

	colorsCmd.Flags().StringVarP(&colorsGroup, "group", "g", "", "only list colors in this group")
}

// ColorInfo is one color in --json output.
type ColorInfo struct {
	Name   string   `json:"name"`
	Hex    string   `json:"hex"`
	CSSVar string   `json:"css_var"`
	Groups []string `json:"groups,omitempty"`
}

// GroupInfo is one group in --json output.
type GroupInfo struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List palette colors",
	Example: `  eon colors
  eon colors --group vibrantAccents`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := palette.Eon()
		if colorsGroup != "" {
			group, ok := palette.GetGroup(colorsGroup)
			if !ok {
				return groupNotFound(cmd.ErrOrStderr(), colorsGroup)
			}
			table = group
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			infos := make([]ColorInfo, 0, table.Len())
			for name, hex := range table.All() {
				infos = append(infos, colorInfo(name, hex))
			}
			return WriteOutput(out, infos)
		}

		styleSet := stylesFor(out)
		headers := []string{"NAME", "HEX", "CSS VARIABLE"}
		rows := make([][]string, 0, table.Len())
		for name, hex := range table.All() {
			row := []string{name, hex, export.CSSVar(name)}
			if !styleSet.Plain {
				row = append(row, styleSet.Swatch(hex))
			}
			rows = append(rows, row)
		}
		return writeTable(out, headers, rows)
	},
}

var colorCmd = &cobra.Command{
	Use:     "color NAME",
	Short:   "Show one palette color",
	Example: `  eon color teal`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		hex, ok := palette.GetColor(name)
		if !ok {
			if !IsJSONOutput() {
				fmt.Fprintln(cmd.ErrOrStderr(), components.UnknownColor(name).Render(stylesFor(cmd.ErrOrStderr())))
			}
			return fmt.Errorf("%w: %s", ErrColorNotFound, name)
		}

		out := cmd.OutOrStdout()
		info := colorInfo(name, hex)
		if IsJSONOutput() {
			return WriteOutput(out, info)
		}

		styleSet := stylesFor(out)
		fmt.Fprintln(out, components.RenderSwatchRow(styleSet, name, hex, len(name)))
		groups := "-"
		if len(info.Groups) > 0 {
			groups = strings.Join(info.Groups, ", ")
		}
		return writeTable(out, nil, [][]string{
			{"CSS variable:", info.CSSVar},
			{"Groups:", groups},
		})
	},
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List color groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		groups := palette.EonGroups()

		if IsJSONOutput() {
			infos := make([]GroupInfo, 0, groups.Len())
			for _, name := range groups.Names() {
				infos = append(infos, GroupInfo{Name: name, Colors: groups.Members(name)})
			}
			return WriteOutput(out, infos)
		}

		styleSet := stylesFor(out)
		rows := make([][]string, 0, groups.Len())
		for _, group := range groups.Groups() {
			row := []string{
				group.Name,
				fmt.Sprintf("%d", group.Colors.Len()),
				strings.Join(group.Colors.Names(), ", "),
			}
			if !styleSet.Plain {
				row = append(row, components.RenderStrip(styleSet, group.Colors))
			}
			rows = append(rows, row)
		}
		return writeTable(out, []string{"GROUP", "COLORS", "MEMBERS"}, rows)
	},
}

func colorInfo(name, hex string) ColorInfo {
	return ColorInfo{
		Name:   name,
		Hex:    hex,
		CSSVar: export.CSSVar(name),
		Groups: groupsContaining(name),
	}
}

func groupsContaining(color string) []string {
	var names []string
	for _, group := range palette.EonGroups().Groups() {
		if group.Colors.Has(color) {
			names = append(names, group.Name)
		}
	}
	return names
}

func groupNotFound(w io.Writer, name string) error {
	if !IsJSONOutput() {
		fmt.Fprintln(w, components.UnknownGroup(name).Render(stylesFor(w)))
	}
	return fmt.Errorf("%w: %s", ErrGroupNotFound, name)
}

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logstacklabs/eon/internal/inject"
	"github.com/logstacklabs/eon/internal/logging"
)

var (
	htmlStyleID   string
	htmlNoReplace bool
)

// ErrNotApplied is returned when the page could not be changed.
var ErrNotApplied = errors.New("styles were not applied")

func init() {
	rootCmd.AddCommand(htmlCmd)
	htmlCmd.AddCommand(htmlApplyCmd)
	htmlCmd.AddCommand(htmlRemoveCmd)
	htmlCmd.AddCommand(htmlStatusCmd)

	htmlCmd.PersistentFlags().StringVar(&htmlStyleID, "id", "", "style element id (default from config: eon-styles)")
	htmlApplyCmd.Flags().BoolVar(&htmlNoReplace, "no-replace", false, "keep an existing style element instead of replacing it")
}

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Apply the palette to HTML pages",
	Long: `Insert or remove a <style> element that defines every palette color as a
CSS custom property on :root.`,
}

var htmlApplyCmd = &cobra.Command{
	Use:   "apply FILE",
	Short: "Insert the palette style element",
	Example: `  eon html apply index.html
  eon html apply index.html --id brand-colors --no-replace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		doc, err := inject.ReadHTMLFile(path)
		if err != nil {
			return err
		}

		id := resolveStyleID()
		applied := inject.Apply(doc,
			inject.WithStyleID(id),
			inject.WithReplace(!htmlNoReplace),
			inject.WithLogger(logging.Component("inject")),
		)
		if !applied {
			return fmt.Errorf("%w to %s (id %q)", ErrNotApplied, path, id)
		}
		if err := doc.WriteFile(path); err != nil {
			return err
		}
		return reportHTML(cmd, path, id, "applied", true)
	},
}

var htmlRemoveCmd = &cobra.Command{
	Use:   "remove FILE",
	Short: "Remove the palette style element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		doc, err := inject.ReadHTMLFile(path)
		if err != nil {
			return err
		}

		id := resolveStyleID()
		removed := inject.Remove(doc, id)
		if removed {
			if err := doc.WriteFile(path); err != nil {
				return err
			}
		}
		return reportHTML(cmd, path, id, "removed", removed)
	},
}

var htmlStatusCmd = &cobra.Command{
	Use:   "status FILE",
	Short: "Report whether the palette style element is present",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		doc, err := inject.ReadHTMLFile(path)
		if err != nil {
			return err
		}

		id := resolveStyleID()
		return reportHTML(cmd, path, id, "applied", inject.IsApplied(doc, id))
	},
}

func resolveStyleID() string {
	return firstNonEmpty(htmlStyleID, GetConfig().Inject.StyleID, inject.DefaultStyleID)
}

func reportHTML(cmd *cobra.Command, path, id, field string, value bool) error {
	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		return WriteOutput(out, map[string]any{
			"file":     path,
			"style_id": id,
			field:      value,
		})
	}

	styleSet := stylesFor(out)
	label := styleSet.Muted.Render(formatYesNo(value))
	if value {
		label = styleSet.Success.Render(formatYesNo(value))
	}
	return writeTable(out, nil, [][]string{
		{"File:", path},
		{"Style id:", id},
		{strings.ToUpper(field[:1]) + field[1:] + ":", label},
	})
}

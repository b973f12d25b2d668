package cli

import (
	"github.com/spf13/cobra"

	"github.com/logstacklabs/eon/internal/tui"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the palette in the terminal",
	Long:  "Launch an interactive palette browser. Use the arrow keys to move between groups.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return &PreflightError{
				Message:  "browse requires an interactive terminal",
				Hint:     "Run with a TTY and without --json or --non-interactive",
				NextStep: "eon colors",
			}
		}
		return tui.Run(tui.Options{
			Theme:   GetConfig().TUI.Theme,
			NoColor: noColor,
		})
	},
}

package cli

import (
	"encoding/json"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/logstacklabs/eon/internal/tui/styles"
)

// WriteOutput writes v as indented JSON.
func WriteOutput(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// stylesFor returns colored styles only when w is a terminal and color is allowed.
func stylesFor(w io.Writer) styles.Styles {
	if colorDisabled(w) {
		return styles.PlainStyles()
	}
	return styles.BuildStyles(styles.ThemeByName(GetConfig().TUI.Theme))
}

func colorDisabled(w io.Writer) bool {
	if noColor || IsJSONOutput() {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return !isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

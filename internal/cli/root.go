// Package cli implements the eon command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/logstacklabs/eon/internal/config"
	"github.com/logstacklabs/eon/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	jsonOutput     bool
	noColor        bool
	noProgress     bool
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "eon",
	Short: "Eon color palette toolkit",
	Long: `eon builds the Eon color palette into SCSS, CSS, JSON and TypeScript
artifacts, and can apply the palette to HTML pages.

Running eon without a subcommand is the same as 'eon build'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./eon.yaml or ~/.config/eon/eon.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "override logging level (trace, debug, info, warn, error)")
	flags.BoolVar(&jsonOutput, "json", false, "output in JSON format")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never start interactive views")
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return &PreflightError{
			Message:  err.Error(),
			Hint:     "Check the file passed to --config and the EON_* environment variables",
			NextStep: "eon --help",
		}
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		NoColor: colorDisabled(os.Stderr),
	})
	if cfg.Source != "" {
		logger := logging.Component("cli")
		logger.Debug().Str("file", cfg.Source).Msg("loaded config")
	}

	appConfig = cfg
	return nil
}

// GetConfig returns the loaded configuration, or the defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// PreflightError is a user-facing error with a hint and a suggested command.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
	Err      error
}

func (e *PreflightError) Error() string {
	return e.Message
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}

func printError(w io.Writer, err error) {
	styleSet := stylesFor(w)

	if IsJSONOutput() {
		_ = WriteOutput(w, map[string]string{"error": err.Error()})
		return
	}

	var preflight *PreflightError
	if errors.As(err, &preflight) {
		fmt.Fprintln(w, styleSet.Error.Render("💥 "+preflight.Message))
		if preflight.Hint != "" {
			fmt.Fprintln(w, styleSet.Muted.Render("Hint: "+preflight.Hint))
		}
		if preflight.NextStep != "" {
			fmt.Fprintln(w, styleSet.Muted.Render("Try: ")+styleSet.Accent.Render(preflight.NextStep))
		}
		return
	}
	fmt.Fprintln(w, styleSet.Error.Render("💥 Error: "+err.Error()))
}

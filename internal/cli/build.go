package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/logstacklabs/eon/internal/export"
	"github.com/logstacklabs/eon/internal/logging"
	"github.com/logstacklabs/eon/internal/manifest"
	"github.com/logstacklabs/eon/internal/palette"
	"github.com/logstacklabs/eon/internal/tui/components"
	"github.com/logstacklabs/eon/internal/tui/styles"
)

var (
	buildOutputDir string
	buildManifest  string
	buildStrict    bool

	buildFs    afero.Fs = afero.NewOsFs()
	buildClock          = time.Now
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutputDir, "output", "o", "", "output directory (default from config: dist)")
	buildCmd.Flags().StringVar(&buildManifest, "manifest", "", "package metadata file (default from config: package.json)")
	buildCmd.Flags().BoolVar(&buildStrict, "strict-groups", false, "require every color to be in exactly one group")
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the palette artifacts",
	Long: `Validate the palette and write eon.scss, eon.css, eon.json and eon.d.ts
into the output directory. Exits non-zero when validation fails or any file
could not be written.`,
	Example: `  # Build into ./dist
  eon build

  # Build somewhere else
  eon build --output public/styles`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd)
	},
}

// BuildSummary is the --json payload of eon build.
type BuildSummary struct {
	BuildID   string          `json:"build_id"`
	OutputDir string          `json:"output_dir"`
	Succeeded int             `json:"succeeded"`
	Total     int             `json:"total"`
	Files     []BuildFileInfo `json:"files"`
}

// BuildFileInfo describes one artifact in a BuildSummary.
type BuildFileInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Size        int    `json:"size"`
	OK          bool   `json:"ok"`
	Error       string `json:"error,omitempty"`
}

func runBuild(cmd *cobra.Command) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()
	styleSet := stylesFor(out)

	meta, err := loadMetadata(firstNonEmpty(buildManifest, cfg.Manifest))
	if err != nil {
		return err
	}

	logger := logging.Component("export")
	exporter := export.New(export.Options{
		Dir:          firstNonEmpty(buildOutputDir, cfg.Output.Dir),
		Fs:           buildFs,
		Logger:       &logger,
		StrictGroups: buildStrict || cfg.Validation.StrictGroups,
	})

	if !IsJSONOutput() {
		fmt.Fprintln(out, styleSet.Title.Render("🎨 Building Eon Colors distribution files..."))
		fmt.Fprintln(out)
	}

	step := startProgress("Generating artifacts")
	report, err := exporter.Build(export.Input{
		Colors:      palette.Eon(),
		Groups:      palette.EonGroups(),
		Meta:        *meta,
		GeneratedAt: buildClock(),
	})
	if err != nil {
		step.Fail(err)
		return fmt.Errorf("build failed: %w", err)
	}
	step.Done()

	if IsJSONOutput() {
		if err := WriteOutput(out, newBuildSummary(report)); err != nil {
			return err
		}
	} else {
		printReport(out, styleSet, report)
	}

	if report.Failed() > 0 {
		return fmt.Errorf("%d of %d files failed: %w", report.Failed(), len(report.Results), report.Err())
	}
	return nil
}

func loadMetadata(path string) (*manifest.Metadata, error) {
	meta, err := manifest.Load(path)
	if err == nil {
		return meta, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &PreflightError{
			Message:  fmt.Sprintf("package metadata not found: %s", path),
			Hint:     "Run eon from the package root or set manifest in eon.yaml",
			NextStep: "eon build --manifest <file>",
			Err:      err,
		}
	}
	return nil, err
}

func printReport(out io.Writer, styleSet styles.Styles, report *export.Report) {
	if len(report.Results) == 0 {
		fmt.Fprintln(out, components.NoArtifacts(report.Dir).Render(styleSet))
		return
	}

	fmt.Fprintln(out, styleSet.Text.Render("📦 Generated files:"))
	for _, result := range report.Results {
		fmt.Fprintln(out, formatResult(styleSet, result))
	}

	fmt.Fprintln(out)
	summary := fmt.Sprintf("🎉 Build complete! %d/%d files generated successfully.", report.Succeeded(), len(report.Results))
	if report.Failed() > 0 {
		fmt.Fprintln(out, styleSet.Warning.Render(summary))
	} else {
		fmt.Fprintln(out, styleSet.Success.Render(summary))
	}
	fmt.Fprintln(out, styleSet.Muted.Render("📁 Output directory: "+absPath(report.Dir)))
}

func newBuildSummary(report *export.Report) BuildSummary {
	summary := BuildSummary{
		BuildID:   report.BuildID,
		OutputDir: absPath(report.Dir),
		Succeeded: report.Succeeded(),
		Total:     len(report.Results),
		Files:     make([]BuildFileInfo, 0, len(report.Results)),
	}
	for _, result := range report.Results {
		info := BuildFileInfo{
			Name:        result.Artifact.Filename,
			Description: result.Artifact.Description,
			Path:        result.Path,
			Size:        result.Size,
			OK:          result.OK(),
		}
		if result.Err != nil {
			info.Error = failureReason(result.Err)
		}
		summary.Files = append(summary.Files, info)
	}
	return summary
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

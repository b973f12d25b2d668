package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/afero"

	"github.com/logstacklabs/eon/internal/palette"
)

// DefaultDir is the output directory used when none is configured.
const DefaultDir = "dist"

// WriteError reports a single artifact that could not be produced.
type WriteError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Artifact, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Result is the outcome for one artifact.
type Result struct {
	Artifact Artifact
	Path     string
	Size     int
	Duration time.Duration
	Err      error
}

// OK reports whether the artifact was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report aggregates one build.
type Report struct {
	BuildID string
	Dir     string
	Results []Result
}

// Succeeded returns the number of artifacts written.
func (r *Report) Succeeded() int {
	count := 0
	for _, result := range r.Results {
		if result.OK() {
			count++
		}
	}
	return count
}

// Failed returns the number of artifacts that could not be written.
func (r *Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// Err joins every per-artifact error, or returns nil when all succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, result := range r.Results {
		if result.Err != nil {
			errs = append(errs, result.Err)
		}
	}
	return errors.Join(errs...)
}

// Options configure an Exporter.
type Options struct {
	// Dir is the output directory. Default: dist.
	Dir string
	// Fs is the target filesystem. Default: the OS filesystem.
	Fs afero.Fs
	// Logger receives build progress. Default: disabled.
	Logger *zerolog.Logger
	// StrictGroups additionally requires the groups to partition the palette.
	StrictGroups bool
	// Artifacts overrides the artifact set. Default: Artifacts.
	Artifacts []Artifact
}

// Exporter validates the tables and writes every artifact.
type Exporter struct {
	dir       string
	fs        afero.Fs
	logger    zerolog.Logger
	strict    bool
	artifacts []Artifact
}

// New constructs an Exporter.
func New(opts Options) *Exporter {
	e := &Exporter{
		dir:       opts.Dir,
		fs:        opts.Fs,
		logger:    zerolog.Nop(),
		strict:    opts.StrictGroups,
		artifacts: opts.Artifacts,
	}
	if strings.TrimSpace(e.dir) == "" {
		e.dir = DefaultDir
	}
	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	if opts.Logger != nil {
		e.logger = *opts.Logger
	}
	if len(e.artifacts) == 0 {
		e.artifacts = Artifacts
	}
	return e
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Build validates in and writes the artifacts concurrently.
// A validation or directory error aborts before anything is written. After that,
// each artifact succeeds or fails on its own and the failures are in the Report.
func (e *Exporter) Build(in Input) (*Report, error) {
	buildID := uuid.NewString()
	logger := e.logger.With().Str("build_id", buildID).Logger()

	if err := palette.Validate(in.Colors, in.Groups); err != nil {
		logger.Error().Err(err).Msg("palette validation failed")
		return nil, err
	}
	if e.strict {
		if err := palette.ValidatePartition(in.Colors, in.Groups); err != nil {
			logger.Error().Err(err).Msg("group partition check failed")
			return nil, err
		}
	}
	logger.Debug().
		Int("colors", in.Colors.Len()).
		Int("groups", in.Groups.Len()).
		Msg("palette validation passed")

	if exists, err := afero.DirExists(e.fs, e.dir); err != nil || !exists {
		if err := e.fs.MkdirAll(e.dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %s: %w", e.dir, err)
		}
		logger.Info().Str("dir", e.dir).Msg("created output directory")
	}

	results := iter.Map(e.artifacts, func(artifact *Artifact) Result {
		return e.write(*artifact, in)
	})

	for _, result := range results {
		if result.Err != nil {
			logger.Error().Err(result.Err).Str("artifact", result.Artifact.Filename).Msg("artifact failed")
			continue
		}
		logger.Debug().
			Str("artifact", result.Artifact.Filename).
			Int("bytes", result.Size).
			Dur("took", result.Duration).
			Msg("artifact written")
	}

	report := &Report{BuildID: buildID, Dir: e.dir, Results: results}
	logger.Info().
		Int("succeeded", report.Succeeded()).
		Int("total", len(results)).
		Msg("build complete")
	return report, nil
}

func (e *Exporter) write(artifact Artifact, in Input) Result {
	started := time.Now()
	path := filepath.Join(e.dir, artifact.Filename)
	result := Result{Artifact: artifact, Path: path}

	data, err := Render(artifact.Kind, in)
	if err != nil {
		result.Err = &WriteError{Artifact: artifact.Filename, Path: path, Err: err}
		return result
	}
	if err := afero.WriteFile(e.fs, path, data, 0o644); err != nil {
		result.Err = &WriteError{Artifact: artifact.Filename, Path: path, Err: err}
		return result
	}

	result.Size = len(data)
	result.Duration = time.Since(started)
	return result
}

package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/logstacklabs/eon/internal/palette"
)

// failingFs refuses to open one file for writing.
type failingFs struct {
	afero.Fs
	fail string
}

func (f *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == f.fail {
		return nil, &os.PathError{Op: "open", Path: name, Err: errors.New("disk full")}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestBuildWritesAllArtifacts(t *testing.T) {
	fs := afero.NewMemMapFs()
	exporter := New(Options{Dir: "dist", Fs: fs})

	report, err := exporter.Build(eonInput())
	require.NoError(t, err)
	require.NoError(t, report.Err())
	require.Equal(t, 4, report.Succeeded())
	require.Zero(t, report.Failed())
	require.NotEmpty(t, report.BuildID)

	for i, result := range report.Results {
		require.Equal(t, Artifacts[i], result.Artifact)

		data, err := afero.ReadFile(fs, filepath.Join("dist", result.Artifact.Filename))
		require.NoError(t, err)
		require.Equal(t, result.Size, len(data))

		want, err := Render(result.Artifact.Kind, eonInput())
		require.NoError(t, err)
		require.Equal(t, want, data)
	}

	data, err := afero.ReadFile(fs, filepath.Join("dist", "eon.json"))
	require.NoError(t, err)
	doc, err := DecodeDocument(data)
	require.NoError(t, err)
	require.Equal(t, palette.ColorNames(), doc.Colors.Names())
}

func TestBuildValidationAbortsBatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	exporter := New(Options{Dir: "dist", Fs: fs})

	in := eonInput()
	in.Colors = palette.MustTable(palette.Color{Name: "sky", Hex: "blue"})

	report, err := exporter.Build(in)
	require.Nil(t, report)

	var verr *palette.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "sky", verr.Key)

	exists, err := afero.DirExists(fs, "dist")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestBuildIsolatesWriteFailures(t *testing.T) {
	fs := &failingFs{Fs: afero.NewMemMapFs(), fail: "eon.css"}
	exporter := New(Options{Dir: "out", Fs: fs})

	report, err := exporter.Build(eonInput())
	require.NoError(t, err)
	require.Equal(t, 3, report.Succeeded())
	require.Equal(t, 1, report.Failed())

	failed := report.Results[1]
	require.Equal(t, "eon.css", failed.Artifact.Filename)
	require.False(t, failed.OK())

	var werr *WriteError
	require.ErrorAs(t, report.Err(), &werr)
	require.Equal(t, "eon.css", werr.Artifact)
	require.Contains(t, werr.Error(), "disk full")

	for _, name := range []string{"eon.scss", "eon.json", "eon.d.ts"} {
		ok, err := afero.Exists(fs, filepath.Join("out", name))
		require.NoError(t, err)
		require.True(t, ok, name)
	}
}

func TestBuildReadOnlyOutput(t *testing.T) {
	base := afero.NewMemMapFs()
	exporter := New(Options{Dir: "dist", Fs: afero.NewReadOnlyFs(base)})

	_, err := exporter.Build(eonInput())
	require.Error(t, err)

	require.NoError(t, base.MkdirAll("dist", 0o755))
	report, err := exporter.Build(eonInput())
	require.NoError(t, err)
	require.Equal(t, 4, report.Failed())
	require.Error(t, report.Err())
}

func TestBuildStrictGroups(t *testing.T) {
	colors := palette.MustTable(
		palette.Color{Name: "a", Hex: "#000000"},
		palette.Color{Name: "b", Hex: "#111111"},
	)
	overlap := palette.MustGroupTable(colors,
		palette.GroupDef{Name: "one", Members: []string{"a", "b"}},
		palette.GroupDef{Name: "two", Members: []string{"b"}},
	)
	in := Input{Colors: colors, Groups: overlap, Meta: testMeta(), GeneratedAt: fixedTime}

	report, err := New(Options{Fs: afero.NewMemMapFs()}).Build(in)
	require.NoError(t, err)
	require.Equal(t, 4, report.Succeeded())

	_, err = New(Options{Fs: afero.NewMemMapFs(), StrictGroups: true}).Build(in)
	var verr *palette.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestNewDefaults(t *testing.T) {
	exporter := New(Options{})
	require.Equal(t, DefaultDir, exporter.Dir())
	require.Len(t, exporter.artifacts, len(Artifacts))
}

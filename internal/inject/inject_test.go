package inject

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/logstacklabs/eon/internal/palette"
)

// fakeDocument keeps style elements in insertion order.
type fakeDocument struct {
	ids       []string
	css       map[string]string
	appendErr error
	panicOn   string
}

func newFakeDocument() *fakeDocument {
	return &fakeDocument{css: make(map[string]string)}
}

func (d *fakeDocument) HasElement(id string) bool {
	if id == d.panicOn {
		panic("dom exploded")
	}
	_, ok := d.css[id]
	return ok
}

func (d *fakeDocument) RemoveElement(id string) bool {
	if _, ok := d.css[id]; !ok {
		return false
	}
	delete(d.css, id)
	for i, existing := range d.ids {
		if existing == id {
			d.ids = append(d.ids[:i], d.ids[i+1:]...)
			break
		}
	}
	return true
}

func (d *fakeDocument) AppendStyle(id, css string) error {
	if d.appendErr != nil {
		return d.appendErr
	}
	d.ids = append(d.ids, id)
	d.css[id] = css
	return nil
}

func (d *fakeDocument) count(id string) int {
	n := 0
	for _, existing := range d.ids {
		if existing == id {
			n++
		}
	}
	return n
}

func quiet() Option {
	return WithLogger(zerolog.Nop())
}

func TestApplyTwiceLeavesOneElement(t *testing.T) {
	doc := newFakeDocument()

	require.True(t, Apply(doc, quiet()))
	require.True(t, Apply(doc, quiet(), WithReplace(true)))
	require.Equal(t, 1, doc.count(DefaultStyleID))
	require.True(t, IsApplied(doc, DefaultStyleID))
}

func TestApplyWithoutReplaceKeepsExisting(t *testing.T) {
	doc := newFakeDocument()

	require.True(t, Apply(doc, quiet(), WithStyleID("theme")))
	require.False(t, Apply(doc, quiet(), WithStyleID("theme"), WithReplace(false)))
	require.Equal(t, 1, doc.count("theme"))
	require.False(t, IsApplied(doc, DefaultStyleID))
}

func TestApplyWithoutDocument(t *testing.T) {
	require.False(t, Apply(nil, quiet()))
	require.False(t, Remove(nil, DefaultStyleID))
	require.False(t, IsApplied(nil, DefaultStyleID))
}

func TestApplyReportsDocumentFailure(t *testing.T) {
	doc := newFakeDocument()
	doc.appendErr = errors.New("read-only head")
	require.False(t, Apply(doc, quiet()))

	doc = newFakeDocument()
	doc.panicOn = DefaultStyleID
	require.False(t, Apply(doc, quiet()))
}

func TestRemove(t *testing.T) {
	doc := newFakeDocument()
	require.False(t, Remove(doc, "missing"))

	require.True(t, Apply(doc, quiet()))
	require.True(t, Remove(doc, ""))
	require.False(t, IsApplied(doc, ""))
}

func TestStyleSheet(t *testing.T) {
	colors := palette.MustTable(
		palette.Color{Name: "a", Hex: "#000000"},
		palette.Color{Name: "b", Hex: "#ffffff"},
	)
	require.Equal(t, ":root {\n  --eo-a: #000000;\n  --eo-b: #ffffff;\n}", StyleSheet(colors))

	doc := newFakeDocument()
	require.True(t, Apply(doc, quiet(), WithColors(colors)))
	require.Equal(t, StyleSheet(colors), doc.css[DefaultStyleID])
}

func TestStyleSheetCoversPalette(t *testing.T) {
	css := StyleSheet(palette.Eon())
	for name, hex := range palette.Eon().All() {
		require.Contains(t, css, "  --eo-"+name+": "+hex+";")
	}
}

func TestHTMLDocumentApply(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(`<!DOCTYPE html><html><head><title>t</title></head><body><p id="x">hi</p></body></html>`))
	require.NoError(t, err)

	require.True(t, Apply(doc, quiet()))
	require.True(t, Apply(doc, quiet()))
	require.Equal(t, 1, doc.CountElements(DefaultStyleID))
	require.True(t, IsApplied(doc, DefaultStyleID))

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	out := buf.String()
	require.Contains(t, out, `<style id="eon-styles">:root {`)
	require.Contains(t, out, "--eo-teal: #2a9d8f;")
	require.Less(t, strings.Index(out, "<style"), strings.Index(out, "</head>"))

	require.True(t, Remove(doc, DefaultStyleID))
	require.False(t, Remove(doc, DefaultStyleID))
	require.Equal(t, 0, doc.CountElements(DefaultStyleID))
	require.True(t, doc.HasElement("x"))
}

func TestHTMLDocumentFragmentGetsHead(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(`<p>bare</p>`))
	require.NoError(t, err)
	require.True(t, Apply(doc, quiet()))
}

func TestHTMLFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><head></head><body></body></html>`), 0o644))

	doc, err := ReadHTMLFile(path)
	require.NoError(t, err)
	require.True(t, Apply(doc, quiet(), WithStyleID("palette")))
	require.NoError(t, doc.WriteFile(path))

	reread, err := ReadHTMLFile(path)
	require.NoError(t, err)
	require.True(t, IsApplied(reread, "palette"))

	_, err = ReadHTMLFile(filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
}

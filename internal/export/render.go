// Package export renders the palette into distributable artifacts and writes them.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/logstacklabs/eon/internal/manifest"
	"github.com/logstacklabs/eon/internal/palette"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// VarPrefix is the prefix of every generated CSS custom property.
const VarPrefix = "eo"

// TimestampLayout is the ISO-8601 UTC layout used for generation timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Kind identifies an artifact format.
type Kind string

const (
	KindSCSS  Kind = "scss"
	KindCSS   Kind = "css"
	KindJSON  Kind = "json"
	KindTypes Kind = "dts"
)

// Artifact describes one generated file.
type Artifact struct {
	Kind        Kind   `json:"kind"`
	Filename    string `json:"filename"`
	Description string `json:"description"`
}

// Artifacts lists every artifact in generation order.
var Artifacts = []Artifact{
	{Kind: KindSCSS, Filename: "eon.scss", Description: "SCSS variables and mixins"},
	{Kind: KindCSS, Filename: "eon.css", Description: "CSS custom properties"},
	{Kind: KindJSON, Filename: "eon.json", Description: "JSON color data"},
	{Kind: KindTypes, Filename: "eon.d.ts", Description: "TypeScript definitions"},
}

// Input is everything a renderer reads. GeneratedAt is the only time-varying value.
type Input struct {
	Colors      *palette.Table
	Groups      *palette.GroupTable
	Meta        manifest.Metadata
	GeneratedAt time.Time
}

// Timestamp returns GeneratedAt in TimestampLayout.
func (in Input) Timestamp() string {
	return in.GeneratedAt.UTC().Format(TimestampLayout)
}

// CSSVar returns the custom property name for a color, e.g. --eo-teal.
func CSSVar(name string) string {
	return "--" + VarPrefix + "-" + name
}

type groupView struct {
	Name   string
	Colors []palette.Color
}

type templateData struct {
	Meta        manifest.Metadata
	GeneratedAt string
	Prefix      string
	Colors      []palette.Color
	Groups      []groupView
}

var templates = template.Must(
	template.New("export").
		Funcs(template.FuncMap{"cssvar": CSSVar}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// Render renders one artifact kind.
func Render(kind Kind, in Input) ([]byte, error) {
	switch kind {
	case KindSCSS:
		return RenderSCSS(in)
	case KindCSS:
		return RenderCSS(in)
	case KindJSON:
		return RenderJSON(in)
	case KindTypes:
		return RenderTypes(in)
	default:
		return nil, fmt.Errorf("unknown artifact kind %q", kind)
	}
}

// RenderSCSS renders the Sass module: palette and group maps, a mixin and lookup functions.
func RenderSCSS(in Input) ([]byte, error) {
	return execute("eon.scss.tmpl", in)
}

// RenderCSS renders the :root custom property sheet.
func RenderCSS(in Input) ([]byte, error) {
	return execute("eon.css.tmpl", in)
}

// RenderTypes renders the TypeScript declarations.
func RenderTypes(in Input) ([]byte, error) {
	return execute("eon.d.ts.tmpl", in)
}

// RenderJSON renders the structured data document.
func RenderJSON(in Input) ([]byte, error) {
	doc := NewDocument(in)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode json document: %w", err)
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

func execute(name string, in Input) ([]byte, error) {
	meta := in.Meta
	meta.Normalize()

	data := templateData{
		Meta:        meta,
		GeneratedAt: in.Timestamp(),
		Prefix:      VarPrefix,
		Colors:      in.Colors.Entries(),
	}
	for _, group := range in.Groups.Groups() {
		data.Groups = append(data.Groups, groupView{Name: group.Name, Colors: group.Colors.Entries()})
	}

	var out strings.Builder
	if err := templates.ExecuteTemplate(&out, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", strings.TrimSuffix(name, ".tmpl"), err)
	}
	return []byte(strings.TrimSpace(out.String())), nil
}

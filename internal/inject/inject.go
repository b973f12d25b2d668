// Package inject applies the palette to a document as a :root style block.
package inject

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/logstacklabs/eon/internal/export"
	"github.com/logstacklabs/eon/internal/logging"
	"github.com/logstacklabs/eon/internal/palette"
)

// DefaultStyleID is the id of the injected style element.
const DefaultStyleID = "eon-styles"

// Document is the host document the palette is applied to.
type Document interface {
	// HasElement reports whether an element with id exists.
	HasElement(id string) bool
	// RemoveElement removes the element with id and reports whether it existed.
	RemoveElement(id string) bool
	// AppendStyle appends a style element with id and css text to the document head.
	AppendStyle(id, css string) error
}

type options struct {
	styleID string
	replace bool
	colors  *palette.Table
	logger  zerolog.Logger
}

// Option configures Apply.
type Option func(*options)

// WithStyleID sets the style element id.
func WithStyleID(id string) Option {
	return func(o *options) {
		if strings.TrimSpace(id) != "" {
			o.styleID = id
		}
	}
}

// WithReplace controls whether an existing element with the same id is replaced.
func WithReplace(replace bool) Option {
	return func(o *options) {
		o.replace = replace
	}
}

// WithColors applies a palette other than Eon.
func WithColors(colors *palette.Table) Option {
	return func(o *options) {
		o.colors = colors
	}
}

// WithLogger sets the logger for warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// StyleSheet returns the :root block with one custom property per color.
func StyleSheet(colors *palette.Table) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	first := true
	for name, hex := range colors.All() {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString("  ")
		b.WriteString(export.CSSVar(name))
		b.WriteString(": ")
		b.WriteString(hex)
		b.WriteByte(';')
	}
	b.WriteString("\n}")
	return b.String()
}

// Apply inserts the palette style block into doc. It returns false, without
// panicking, when doc is nil, when the id is taken and replacing is disabled,
// or when the document refuses the change.
func Apply(doc Document, opts ...Option) (applied bool) {
	o := options{
		styleID: DefaultStyleID,
		replace: true,
		colors:  palette.Eon(),
		logger:  logging.Component("inject"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if doc == nil {
		o.logger.Warn().Msg("document is not available, cannot inject CSS variables")
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error().Interface("panic", r).Str("style_id", o.styleID).Msg("failed to inject eon colors")
			applied = false
		}
	}()

	if o.replace {
		doc.RemoveElement(o.styleID)
	}
	if doc.HasElement(o.styleID) {
		o.logger.Warn().Str("style_id", o.styleID).Msg("styles already exist, use replace to override")
		return false
	}

	if err := doc.AppendStyle(o.styleID, StyleSheet(o.colors)); err != nil {
		o.logger.Error().Err(err).Str("style_id", o.styleID).Msg("failed to inject eon colors")
		return false
	}
	return true
}

// Remove deletes the style element with id. It returns whether an element was removed.
func Remove(doc Document, id string) bool {
	if doc == nil {
		return false
	}
	return doc.RemoveElement(styleID(id))
}

// IsApplied reports whether the style element with id is present.
func IsApplied(doc Document, id string) bool {
	if doc == nil {
		return false
	}
	return doc.HasElement(styleID(id))
}

func styleID(id string) string {
	if strings.TrimSpace(id) == "" {
		return DefaultStyleID
	}
	return id
}

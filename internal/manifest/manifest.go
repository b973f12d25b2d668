// Package manifest reads the package metadata stamped into generated artifacts.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// DefaultVersion is used when a manifest has no version.
const DefaultVersion = "0.0.0"

// DefaultCopyright is used when a manifest has no copyright line.
const DefaultCopyright = "2025 by Logstack Labs"

var (
	// ErrNameRequired is returned when a manifest has no package name.
	ErrNameRequired = errors.New("manifest name is required")
)

// FieldError describes an invalid manifest field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("manifest %s: %s", e.Field, e.Message)
}

// Metadata is the package information passed through to artifact headers and JSON.
type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
	License     string `json:"license" yaml:"license"`
	Author      Author `json:"author" yaml:"author"`
	Copyright   string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Source      string `json:"-" yaml:"-"` // file path the metadata was read from
}

// Author identifies the package author.
type Author struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`

	// Raw is the shorthand string the author was read from, if any.
	Raw string `json:"-" yaml:"-"`
}

// npm shorthand: "Name <email> (url)"
var authorPattern = regexp.MustCompile(`^\s*([^<(]*?)\s*(?:<([^>]*)>)?\s*(?:\(([^)]*)\))?\s*$`)

// ParseAuthor parses the npm "Name <email> (url)" shorthand.
func ParseAuthor(value string) Author {
	m := authorPattern.FindStringSubmatch(value)
	if m == nil {
		return Author{Name: strings.TrimSpace(value)}
	}
	return Author{
		Name:  strings.TrimSpace(m[1]),
		Email: strings.TrimSpace(m[2]),
		URL:   strings.TrimSpace(m[3]),
	}
}

// UnmarshalJSON accepts either an author object or the shorthand string.
func (a *Author) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*a = ParseAuthor(text)
		a.Raw = text
		return nil
	}
	type plain Author
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*a = Author(out)
	return nil
}

// MarshalJSON writes the author in the form it was read: the shorthand string
// when there was one, otherwise an object.
func (a Author) MarshalJSON() ([]byte, error) {
	if a.Raw != "" {
		return json.Marshal(a.Raw)
	}
	type plain Author
	return json.Marshal(plain(a))
}

// UnmarshalYAML accepts either an author mapping or the shorthand string.
func (a *Author) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*a = ParseAuthor(node.Value)
		a.Raw = node.Value
		return nil
	}
	type plain Author
	var out plain
	if err := node.Decode(&out); err != nil {
		return err
	}
	*a = Author(out)
	return nil
}

// Normalize fills in defaults. Values that are present are kept as written.
func (m *Metadata) Normalize() {
	if strings.TrimSpace(m.Version) == "" {
		m.Version = DefaultVersion
	}
	if strings.TrimSpace(m.Copyright) == "" {
		m.Copyright = DefaultCopyright
	}
}

// Validate checks that the metadata can be stamped into artifacts.
func (m *Metadata) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrNameRequired
	}
	if _, err := semver.StrictNewVersion(m.Version); err != nil {
		return &FieldError{Field: "version", Message: fmt.Sprintf("%q is not a semantic version: %v", m.Version, err)}
	}
	return nil
}

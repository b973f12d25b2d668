package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/logstacklabs/eon/internal/manifest"
	"github.com/logstacklabs/eon/internal/palette"
)

// Document is the eon.json payload. Field order is the output order.
type Document struct {
	Version     string              `json:"version"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	License     string              `json:"license"`
	Author      manifest.Author     `json:"author"`
	Colors      *palette.Table      `json:"EonColors"`
	Groups      *palette.GroupTable `json:"EonGroups"`
	Metadata    DocumentMetadata    `json:"metadata"`
}

// DocumentMetadata holds computed counts and the generation timestamp.
type DocumentMetadata struct {
	TotalColors int    `json:"totalColors"`
	TotalGroups int    `json:"totalGroups"`
	GeneratedAt string `json:"generatedAt"`
}

// NewDocument assembles the JSON document for in.
func NewDocument(in Input) *Document {
	meta := in.Meta
	meta.Normalize()

	return &Document{
		Version:     meta.Version,
		Name:        meta.Name,
		Description: meta.Description,
		License:     meta.License,
		Author:      meta.Author,
		Colors:      in.Colors,
		Groups:      in.Groups,
		Metadata: DocumentMetadata{
			TotalColors: in.Colors.Len(),
			TotalGroups: in.Groups.Len(),
			GeneratedAt: in.Timestamp(),
		},
	}
}

// documentJSON mirrors Document for decoding. The tables are decoded through
// palette constructors rather than into existing tables.
type documentJSON struct {
	Version     string           `json:"version"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	License     string           `json:"license"`
	Author      manifest.Author  `json:"author"`
	Colors      json.RawMessage  `json:"EonColors"`
	Groups      json.RawMessage  `json:"EonGroups"`
	Metadata    DocumentMetadata `json:"metadata"`
}

// DecodeDocument parses eon.json and checks that its groups agree with its palette.
func DecodeDocument(data []byte) (*Document, error) {
	var raw documentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode json document: %w", err)
	}
	if isNull(raw.Colors) || isNull(raw.Groups) {
		return nil, errors.New("decode json document: EonColors and EonGroups are required")
	}

	colors, err := palette.DecodeTable(raw.Colors)
	if err != nil {
		return nil, fmt.Errorf("decode json document: EonColors: %w", err)
	}
	groups, err := palette.DecodeGroupTable(raw.Groups)
	if err != nil {
		return nil, fmt.Errorf("decode json document: EonGroups: %w", err)
	}
	if err := checkMembers(colors, groups); err != nil {
		return nil, fmt.Errorf("decode json document: %w", err)
	}

	return &Document{
		Version:     raw.Version,
		Name:        raw.Name,
		Description: raw.Description,
		License:     raw.License,
		Author:      raw.Author,
		Colors:      colors,
		Groups:      groups,
		Metadata:    raw.Metadata,
	}, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// checkMembers requires every member to resolve to a palette color. Overlap and orphans are allowed.
func checkMembers(colors *palette.Table, groups *palette.GroupTable) error {
	for group, members := range groups.All() {
		for name, hex := range members.All() {
			want, ok := colors.Get(name)
			if !ok {
				return fmt.Errorf("%w: group %q references %q", palette.ErrUnknownMember, group, name)
			}
			if want != hex {
				return fmt.Errorf("group %q: %q is %s, palette has %s", group, name, hex, want)
			}
		}
	}
	return nil
}

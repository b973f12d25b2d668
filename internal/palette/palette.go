// Package palette holds the Eon color tables and the lookups over them.
package palette

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"cogentcore.org/core/base/ordmap"
)

var (
	// ErrEmptyName is returned when a color or group has no name.
	ErrEmptyName = errors.New("name is required")
	// ErrDuplicateName is returned when a name is defined twice in one table.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrUnknownMember is returned when a group references a color that is not in the palette.
	ErrUnknownMember = errors.New("group member not in palette")
)

// Color is a single named palette entry.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Table is an ordered, read-only mapping of color name to hex value.
// The zero value and a nil *Table are both empty tables.
type Table struct {
	entries *ordmap.Map[string, string]
}

// NewTable builds a table from entries in the given order.
// Hex values are stored lower case. Hex format is not checked here; see Validate.
func NewTable(entries ...Color) (*Table, error) {
	om := ordmap.New[string, string]()
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := om.ValueByKeyTry(name); exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		om.Add(name, strings.ToLower(strings.TrimSpace(entry.Hex)))
	}
	return &Table{entries: om}, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(entries ...Color) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(fmt.Sprintf("palette: %v", err))
	}
	return t
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil || t.entries == nil {
		return 0
	}
	return t.entries.Len()
}

// Get returns the hex value for name. The bool is false for unknown names.
func (t *Table) Get(name string) (string, bool) {
	if t.Len() == 0 {
		return "", false
	}
	return t.entries.ValueByKeyTry(name)
}

// Has reports whether name is defined.
func (t *Table) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Names returns the color names in definition order.
func (t *Table) Names() []string {
	if t.Len() == 0 {
		return []string{}
	}
	return t.entries.Keys()
}

// Entries returns a copy of the table contents in definition order.
func (t *Table) Entries() []Color {
	out := make([]Color, 0, t.Len())
	for name, hex := range t.All() {
		out = append(out, Color{Name: name, Hex: hex})
	}
	return out
}

// All iterates over the table in definition order.
func (t *Table) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if t.Len() == 0 {
			return
		}
		for _, kv := range t.entries.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	om := ordmap.New[string, string]()
	for name, hex := range t.All() {
		om.Add(name, hex)
	}
	return &Table{entries: om}
}

// ContainsHex reports whether hex is the stored value of some entry.
// The comparison is exact, so it must use the stored lower-case form.
func (t *Table) ContainsHex(hex string) bool {
	for _, value := range t.All() {
		if value == hex {
			return true
		}
	}
	return false
}

// GroupDef names a group and lists its members by color name.
type GroupDef struct {
	Name    string
	Members []string
}

// Group is a named group with its resolved members.
type Group struct {
	Name   string
	Colors *Table
}

// GroupTable is an ordered, read-only mapping of group name to member table.
type GroupTable struct {
	groups *ordmap.Map[string, *Table]
}

// NewGroupTable resolves each group's members against colors.
// A member missing from colors is an error.
func NewGroupTable(colors *Table, defs ...GroupDef) (*GroupTable, error) {
	om := ordmap.New[string, *Table]()
	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := om.ValueByKeyTry(name); exists {
			return nil, fmt.Errorf("%w: group %q", ErrDuplicateName, name)
		}

		members := make([]Color, 0, len(def.Members))
		for _, member := range def.Members {
			hex, ok := colors.Get(member)
			if !ok {
				return nil, fmt.Errorf("%w: group %q references %q", ErrUnknownMember, name, member)
			}
			members = append(members, Color{Name: member, Hex: hex})
		}

		table, err := NewTable(members...)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		om.Add(name, table)
	}
	return &GroupTable{groups: om}, nil
}

// MustGroupTable is like NewGroupTable but panics on error.
func MustGroupTable(colors *Table, defs ...GroupDef) *GroupTable {
	g, err := NewGroupTable(colors, defs...)
	if err != nil {
		panic(fmt.Sprintf("palette: %v", err))
	}
	return g
}

// Len returns the number of groups.
func (g *GroupTable) Len() int {
	if g == nil || g.groups == nil {
		return 0
	}
	return g.groups.Len()
}

// Get returns the member table for a group.
// Tables are read-only, so the result can be shared freely.
func (g *GroupTable) Get(name string) (*Table, bool) {
	if g.Len() == 0 {
		return nil, false
	}
	return g.groups.ValueByKeyTry(name)
}

// Names returns the group names in definition order.
func (g *GroupTable) Names() []string {
	if g.Len() == 0 {
		return []string{}
	}
	return g.groups.Keys()
}

// Clone returns an independent copy of the group table and its member tables.
func (g *GroupTable) Clone() *GroupTable {
	om := ordmap.New[string, *Table]()
	for name, members := range g.All() {
		om.Add(name, members.Clone())
	}
	return &GroupTable{groups: om}
}

// Members returns the color names in a group, or an empty slice for an unknown group.
func (g *GroupTable) Members(name string) []string {
	members, ok := g.Get(name)
	if !ok {
		return []string{}
	}
	return members.Names()
}

// Groups returns every group in definition order.
func (g *GroupTable) Groups() []Group {
	out := make([]Group, 0, g.Len())
	for name, members := range g.All() {
		out = append(out, Group{Name: name, Colors: members})
	}
	return out
}

// All iterates over the groups in definition order.
func (g *GroupTable) All() iter.Seq2[string, *Table] {
	return func(yield func(string, *Table) bool) {
		if g.Len() == 0 {
			return
		}
		for _, kv := range g.groups.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

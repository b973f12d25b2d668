package palette

import (
	"fmt"
	"regexp"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidationError describes malformed table data.
type ValidationError struct {
	Table  string
	Key    string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %s: %s", e.Table, e.Key, e.Reason, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Table, e.Reason)
}

// IsHex reports whether value is a '#' followed by six hex digits.
func IsHex(value string) bool {
	return hexPattern.MatchString(value)
}

// Validate checks the tables before export and returns the first problem found.
func Validate(colors *Table, groups *GroupTable) error {
	if colors.Len() == 0 {
		return &ValidationError{Table: "colors", Reason: "palette table is empty or undefined"}
	}
	if groups.Len() == 0 {
		return &ValidationError{Table: "groups", Reason: "group table is empty or undefined"}
	}
	for name, hex := range colors.All() {
		if !IsHex(hex) {
			return &ValidationError{Table: "colors", Key: name, Value: hex, Reason: "invalid hex color"}
		}
	}
	return nil
}

// ValidatePartition checks that every palette color belongs to exactly one group
// and that every group member matches its palette entry.
func ValidatePartition(colors *Table, groups *GroupTable) error {
	owner := make(map[string]string, colors.Len())
	for group, members := range groups.All() {
		for name, hex := range members.All() {
			want, ok := colors.Get(name)
			if !ok {
				return &ValidationError{Table: "groups", Key: group + "." + name, Value: hex, Reason: "member not in palette"}
			}
			if want != hex {
				return &ValidationError{Table: "groups", Key: group + "." + name, Value: hex, Reason: "member differs from palette value " + want}
			}
			if prev, seen := owner[name]; seen {
				return &ValidationError{Table: "groups", Key: group + "." + name, Value: hex, Reason: "color already in group " + prev}
			}
			owner[name] = group
		}
	}
	for name, hex := range colors.All() {
		if _, ok := owner[name]; !ok {
			return &ValidationError{Table: "colors", Key: name, Value: hex, Reason: "color not in any group"}
		}
	}
	return nil
}

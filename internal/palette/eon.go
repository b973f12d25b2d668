package palette

var eonColors = MustTable(
	Color{Name: "black", Hex: "#000000"},
	Color{Name: "pitch", Hex: "#090909"},
	Color{Name: "night", Hex: "#121212"},
	Color{Name: "coal", Hex: "#2b2b2b"},
	Color{Name: "graphite", Hex: "#4a4a4a"},
	Color{Name: "storm", Hex: "#4a5759"},
	Color{Name: "steel", Hex: "#5a646e"},
	Color{Name: "olive", Hex: "#4f5851"},
	Color{Name: "sigil", Hex: "#4D4153"},
	Color{Name: "khaki", Hex: "#6a5e52"},
	Color{Name: "moss", Hex: "#7b8165"},
	Color{Name: "mauve", Hex: "#9a8c98"},
	Color{Name: "taupe", Hex: "#a59e8c"},
	Color{Name: "latte", Hex: "#d4a373"},
	Color{Name: "cream", Hex: "#eaddca"},
	Color{Name: "mint", Hex: "#ecffdc"},
	Color{Name: "sand", Hex: "#f1eee4"},
	Color{Name: "petal", Hex: "#ffe4ee"},
	Color{Name: "blush", Hex: "#fff0fb"},
	Color{Name: "smoke", Hex: "#f5f5f5"},
	Color{Name: "powder", Hex: "#faf9f6"},
	Color{Name: "white", Hex: "#ffffff"},
	Color{Name: "coral", Hex: "#e76f51"},
	Color{Name: "terra", Hex: "#d65a3a"},
	Color{Name: "peach", Hex: "#ffa69e"},
	Color{Name: "candy", Hex: "#ffc4d6"},
	Color{Name: "mustard", Hex: "#ffde5c"},
	Color{Name: "teal", Hex: "#2a9d8f"},
)

var eonGroups = MustGroupTable(eonColors,
	GroupDef{Name: "deepAnchors", Members: []string{"black", "pitch", "night", "coal"}},
	GroupDef{Name: "stoneNeutrals", Members: []string{"graphite", "storm", "steel"}},
	GroupDef{Name: "earthyTones", Members: []string{"olive", "khaki", "moss", "taupe", "latte"}},
	GroupDef{Name: "dustyChromatics", Members: []string{"sigil", "mauve"}},
	GroupDef{Name: "softNeutrals", Members: []string{"cream", "sand", "smoke", "powder", "white"}},
	GroupDef{Name: "etherealPastels", Members: []string{"mint", "petal", "blush", "candy", "peach"}},
	GroupDef{Name: "vibrantAccents", Members: []string{"coral", "terra", "mustard", "teal"}},
)

// Eon returns a copy of the Eon palette table.
func Eon() *Table {
	return eonColors.Clone()
}

// EonGroups returns a copy of the Eon group table.
func EonGroups() *GroupTable {
	return eonGroups.Clone()
}

// GetColor returns the hex value of an Eon color by exact, case-sensitive name.
func GetColor(name string) (string, bool) {
	return eonColors.Get(name)
}

// GetGroup returns a copy of the members of an Eon group.
func GetGroup(name string) (*Table, bool) {
	members, ok := eonGroups.Get(name)
	if !ok {
		return nil, false
	}
	return members.Clone(), true
}

// ColorNames returns every Eon color name in definition order.
func ColorNames() []string {
	return eonColors.Names()
}

// GroupNames returns every Eon group name in definition order.
func GroupNames() []string {
	return eonGroups.Names()
}

// ColorNamesInGroup returns the color names of a group, empty if the group is unknown.
func ColorNamesInGroup(group string) []string {
	return eonGroups.Members(group)
}

// IsKnownHex reports whether hex is the stored value of an Eon color.
// This is a membership test, not a format check.
func IsKnownHex(hex string) bool {
	return eonColors.ContainsHex(hex)
}

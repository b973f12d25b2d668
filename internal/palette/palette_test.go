package palette

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEonReferenceData(t *testing.T) {
	if got := Eon().Len(); got != 28 {
		t.Fatalf("expected 28 colors, got %d", got)
	}
	if got := EonGroups().Len(); got != 7 {
		t.Fatalf("expected 7 groups, got %d", got)
	}

	require.Equal(t, []string{
		"deepAnchors", "stoneNeutrals", "earthyTones", "dustyChromatics",
		"softNeutrals", "etherealPastels", "vibrantAccents",
	}, GroupNames())

	names := ColorNames()
	require.Equal(t, "black", names[0])
	require.Equal(t, "teal", names[len(names)-1])
}

func TestGetColor(t *testing.T) {
	hex, ok := GetColor("teal")
	require.True(t, ok)
	require.Equal(t, "#2a9d8f", hex)

	for _, name := range []string{"nonexistent", "", "Teal", " teal"} {
		hex, ok := GetColor(name)
		require.False(t, ok, name)
		require.Empty(t, hex, name)
	}
}

func TestGetColorEveryName(t *testing.T) {
	for name, hex := range Eon().All() {
		got, ok := GetColor(name)
		require.True(t, ok, name)
		require.Equal(t, hex, got)
		require.True(t, IsKnownHex(got), name)
	}
}

func TestStoredHexIsLowerCase(t *testing.T) {
	hex, ok := GetColor("sigil")
	require.True(t, ok)
	require.Equal(t, "#4d4153", hex)

	require.True(t, IsKnownHex("#4d4153"))
	require.False(t, IsKnownHex("#4D4153"))
	require.False(t, IsKnownHex("#123456"))
	require.False(t, IsKnownHex("teal"))
}

func TestGetGroup(t *testing.T) {
	group, ok := GetGroup("vibrantAccents")
	require.True(t, ok)
	require.Equal(t, []Color{
		{Name: "coral", Hex: "#e76f51"},
		{Name: "terra", Hex: "#d65a3a"},
		{Name: "mustard", Hex: "#ffde5c"},
		{Name: "teal", Hex: "#2a9d8f"},
	}, group.Entries())

	_, ok = GetGroup("nope")
	require.False(t, ok)
}

func TestGroupMembersMatchPalette(t *testing.T) {
	for _, name := range GroupNames() {
		group, ok := GetGroup(name)
		require.True(t, ok, name)
		for member, hex := range group.All() {
			want, ok := GetColor(member)
			require.True(t, ok, member)
			require.Equal(t, want, hex, member)
		}
	}
}

func TestColorNamesInGroup(t *testing.T) {
	require.Equal(t, []string{"black", "pitch", "night", "coal"}, ColorNamesInGroup("deepAnchors"))

	missing := ColorNamesInGroup("missing")
	require.NotNil(t, missing)
	require.Empty(t, missing)
}

func TestGroupsPartitionPalette(t *testing.T) {
	seen := make(map[string]int)
	for _, group := range GroupNames() {
		for _, name := range ColorNamesInGroup(group) {
			seen[name]++
		}
	}
	require.Len(t, seen, len(ColorNames()))
	for _, name := range ColorNames() {
		require.Equal(t, 1, seen[name], name)
	}

	require.NoError(t, ValidatePartition(Eon(), EonGroups()))
}

func TestReturnedSlicesDoNotAliasTables(t *testing.T) {
	names := ColorNames()
	names[0] = "mutated"
	require.Equal(t, "black", ColorNames()[0])

	entries := Eon().Entries()
	entries[0].Hex = "#ffffff"
	hex, _ := GetColor("black")
	require.Equal(t, "#000000", hex)

	members := ColorNamesInGroup("deepAnchors")
	members[0] = "mutated"
	require.Equal(t, "black", ColorNamesInGroup("deepAnchors")[0])
}

func TestNilTablesAreEmpty(t *testing.T) {
	var colors *Table
	var groups *GroupTable

	_, ok := colors.Get("teal")
	require.False(t, ok)
	require.Empty(t, colors.Names())
	require.False(t, colors.ContainsHex("#2a9d8f"))

	_, ok = groups.Get("deepAnchors")
	require.False(t, ok)
	require.Empty(t, groups.Names())
	require.Empty(t, groups.Members("deepAnchors"))
}

func TestNewTableRejectsBadNames(t *testing.T) {
	_, err := NewTable(Color{Name: "", Hex: "#000000"})
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewTable(Color{Name: "a", Hex: "#000000"}, Color{Name: "a", Hex: "#111111"})
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestNewGroupTableRejectsDanglingMember(t *testing.T) {
	colors := MustTable(Color{Name: "a", Hex: "#000000"})
	_, err := NewGroupTable(colors, GroupDef{Name: "g", Members: []string{"a", "b"}})
	require.ErrorIs(t, err, ErrUnknownMember)
	require.Contains(t, err.Error(), `"b"`)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Eon(), EonGroups()))

	tests := []struct {
		name   string
		colors *Table
		groups *GroupTable
		key    string
	}{
		{name: "nil palette", colors: nil, groups: EonGroups()},
		{name: "empty palette", colors: MustTable(), groups: EonGroups()},
		{name: "nil groups", colors: Eon(), groups: nil},
		{
			name:   "five digit hex",
			colors: MustTable(Color{Name: "ok", Hex: "#000000"}, Color{Name: "short", Hex: "#12345"}),
			groups: EonGroups(),
			key:    "short",
		},
		{
			name:   "named color",
			colors: MustTable(Color{Name: "sky", Hex: "blue"}),
			groups: EonGroups(),
			key:    "sky",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.colors, tt.groups)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tt.key, verr.Key)
			if tt.key != "" {
				require.Contains(t, err.Error(), tt.key)
			}
		})
	}
}

func TestValidateStopsAtFirstBadValue(t *testing.T) {
	colors := MustTable(
		Color{Name: "first", Hex: "nope"},
		Color{Name: "second", Hex: "#zzzzzz"},
	)
	err := Validate(colors, EonGroups())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "first", verr.Key)
	require.Equal(t, "nope", verr.Value)
}

func TestValidatePartitionDetectsOverlapAndOrphans(t *testing.T) {
	colors := MustTable(
		Color{Name: "a", Hex: "#000000"},
		Color{Name: "b", Hex: "#111111"},
		Color{Name: "c", Hex: "#222222"},
	)

	overlap := MustGroupTable(colors,
		GroupDef{Name: "one", Members: []string{"a", "b"}},
		GroupDef{Name: "two", Members: []string{"b", "c"}},
	)
	require.NoError(t, Validate(colors, overlap))
	err := ValidatePartition(colors, overlap)
	require.Error(t, err)
	require.Contains(t, err.Error(), "two.b")

	orphan := MustGroupTable(colors, GroupDef{Name: "one", Members: []string{"a", "b"}})
	err = ValidatePartition(colors, orphan)
	require.Error(t, err)
	require.Contains(t, err.Error(), "c")
}

func TestTableJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Eon())
	require.NoError(t, err)
	require.Contains(t, string(data), `{"black":"#000000","pitch":"#090909"`)

	decoded, err := DecodeTable(data)
	require.NoError(t, err)
	require.Equal(t, Eon().Entries(), decoded.Entries())

	groupData, err := json.Marshal(EonGroups())
	require.NoError(t, err)

	groups, err := DecodeGroupTable(groupData)
	require.NoError(t, err)
	require.Equal(t, GroupNames(), groups.Names())
	for _, name := range GroupNames() {
		want, _ := GetGroup(name)
		got, ok := groups.Get(name)
		require.True(t, ok, name)
		require.Equal(t, want.Entries(), got.Entries())
	}
	require.NoError(t, ValidatePartition(Eon(), groups))
}

func TestDecodeTableRejectsNonObject(t *testing.T) {
	_, err := DecodeTable([]byte(`["#000000"]`))
	require.Error(t, err)
	_, err = DecodeTable([]byte(`{"a": 1}`))
	require.Error(t, err)
	_, err = DecodeGroupTable([]byte(`{"g": {"a": "#000000"}, "g": {}}`))
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestTableJSONDoesNotEscapeHTML(t *testing.T) {
	table := MustTable(Color{Name: "a<b&c>", Hex: "#000000"})
	data, err := table.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"a<b&c>":"#000000"}`, string(data))

	groups := MustGroupTable(table, GroupDef{Name: "<g>", Members: []string{"a<b&c>"}})
	data, err = groups.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"<g>":{"a<b&c>":"#000000"}}`, string(data))
}

func TestReturnedTablesCannotChangeReferenceData(t *testing.T) {
	group, ok := GetGroup("deepAnchors")
	require.True(t, ok)
	_ = json.Unmarshal([]byte(`{"zzz":"#123456"}`), group)
	*group = Table{}

	colors := Eon()
	*colors = Table{}

	groups := EonGroups()
	members, ok := groups.Get("deepAnchors")
	require.True(t, ok)
	*members = *MustTable(Color{Name: "zzz", Hex: "#123456"})
	*groups = GroupTable{}

	_ = json.Unmarshal([]byte(`{"zzz":"#123456"}`), Eon())

	hex, ok := GetColor("teal")
	require.True(t, ok)
	require.Equal(t, "#2a9d8f", hex)
	require.Equal(t, []string{"black", "pitch", "night", "coal"}, ColorNamesInGroup("deepAnchors"))
	require.Equal(t, 28, Eon().Len())
	require.Equal(t, 7, EonGroups().Len())
}

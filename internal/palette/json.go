package palette

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cogentcore.org/core/base/ordmap"
)

// MarshalJSON encodes the table as a JSON object in definition order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, hex := range t.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, name, hex); err != nil {
			return nil, err
		}
		i++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the groups as nested JSON objects in definition order.
func (g *GroupTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, members := range g.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := members.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if err := writeMember(&buf, name, json.RawMessage(data)); err != nil {
			return nil, err
		}
		i++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeTable builds a new table from a JSON object, keeping key order.
func DecodeTable(data []byte) (*Table, error) {
	var entries []Color
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var hex string
		if err := json.Unmarshal(raw, &hex); err != nil {
			return fmt.Errorf("color %q: %w", key, err)
		}
		entries = append(entries, Color{Name: key, Hex: hex})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewTable(entries...)
}

// DecodeGroupTable builds a new group table from nested JSON objects, keeping key order.
// Members are taken as written; use ValidatePartition to check them against a palette.
func DecodeGroupTable(data []byte) (*GroupTable, error) {
	om := ordmap.New[string, *Table]()
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		if _, exists := om.ValueByKeyTry(key); exists {
			return fmt.Errorf("%w: group %q", ErrDuplicateName, key)
		}
		members, err := DecodeTable(raw)
		if err != nil {
			return fmt.Errorf("group %q: %w", key, err)
		}
		om.Add(key, members)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GroupTable{groups: om}, nil
}

// writeMember writes "key":value without HTML escaping, matching the document encoder.
func writeMember(buf *bytes.Buffer, key string, value any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return err
	}
	trimNewline(buf)
	buf.WriteByte(':')
	if err := enc.Encode(value); err != nil {
		return err
	}
	trimNewline(buf)
	return nil
}

func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}

func decodeObject(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered set of category tags (raw-material needs, supply
// capabilities) persisted as a JSON text column. The column layout is a
// documented denormalization carried over from the original schema.
type StringList []string

// Value marshals the list to its JSON text representation.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	payload, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("string list: marshal: %w", err)
	}
	return string(payload), nil
}

// Scan decodes the JSON text column. Null, blank, and malformed column data
// all decode to an empty list so historical rows never fail a read.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("string list: unsupported scan type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*l = StringList{}
		return nil
	}

	var decoded []string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		*l = StringList{}
		return nil
	}
	if decoded == nil {
		decoded = []string{}
	}
	*l = decoded
	return nil
}

// ContainsAny reports whether the list shares at least one entry with the
// requested tags. Matching is an any-overlap (OR) check after trimming.
func (l StringList) ContainsAny(tags []string) bool {
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		for _, have := range l {
			if have == trimmed {
				return true
			}
		}
	}
	return false
}

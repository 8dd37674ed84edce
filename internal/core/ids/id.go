// Package ids holds the opaque identifier used by every backend entity.
package ids

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque backend identifier. The backend mixes ULID strings and
// auto-increment integers, so both JSON forms decode into an ID.
type ID string

// String returns the identifier as text.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether no identifier is set.
func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("invalid id %s: %w", b, err)
		}
		*id = ID(n.String())
		return nil
	}
}

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque entity identifier.
//
// The backend is not consistent about identifier encoding: some endpoints
// return numeric ids (e.g. "user_id": 42) and others return strings. ID
// accepts both forms when decoding and always encodes as a JSON string.
type ID string

// String returns the identifier as a plain string.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts a JSON string, a
// JSON number or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode id string: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

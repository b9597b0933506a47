package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errRawObjectShape = errors.New("value must be a JSON object or an empty array")

// RawObject keeps a loosely specified JSON object undecoded.
//
// It shares the Notes fallback: an empty array decodes as an empty
// object, so callers only ever see object-shaped JSON (or nothing).
type RawObject json.RawMessage

// UnmarshalJSON implements json.Unmarshaler.
func (r *RawObject) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull):
		*r = nil
	case isEmptyArray(trimmed):
		*r = RawObject("{}")
	case trimmed[0] == '{':
		*r = append((*r)[:0], trimmed...)
	default:
		return errRawObjectShape
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r RawObject) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return jsonNull, nil
	}
	return r, nil
}

// IsEmpty reports whether the object is absent or has no keys.
func (r RawObject) IsEmpty() bool {
	trimmed := bytes.TrimSpace(r)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return true
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return false
	}
	return len(m) == 0
}

// Decode unmarshals the object into dst.
func (r RawObject) Decode(dst any) error {
	if len(r) == 0 {
		return nil
	}
	return json.Unmarshal(r, dst)
}

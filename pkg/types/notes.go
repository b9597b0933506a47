package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var (
	jsonNull       = []byte("null")
	jsonEmptyArray = []byte("[]")
)

// Notes is a flat string map Razorpay attaches to most entities.
//
// Razorpay serialises an empty notes collection as either {} or [], so
// decoding accepts both and yields an empty map for the array form. Any
// other array is rejected. Scalar values are kept as their string form.
type Notes map[string]string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Notes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		*n = nil
		return nil
	}
	if isEmptyArray(trimmed) {
		*n = Notes{}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("notes must be an object or an empty array: %w", err)
	}

	out := make(Notes, len(raw))
	for key, value := range raw {
		str, err := scalarString(value)
		if err != nil {
			return fmt.Errorf("notes[%s]: %w", key, err)
		}
		out[key] = str
	}
	*n = out
	return nil
}

// Get returns the value stored under key.
func (n Notes) Get(key string) (string, bool) {
	v, ok := n[key]
	return v, ok
}

func scalarString(value json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return "", nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("nested value %s is not supported", trimmed)
	default:
		return string(trimmed), nil
	}
}

func isEmptyArray(data []byte) bool {
	if bytes.Equal(data, jsonEmptyArray) {
		return true
	}
	if len(data) < 2 || data[0] != '[' || data[len(data)-1] != ']' {
		return false
	}
	return len(bytes.TrimSpace(data[1:len(data)-1])) == 0
}

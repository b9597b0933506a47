package types

import (
	"bytes"
	"fmt"
)

// IntBool is a boolean Razorpay expects as 0 or 1.
type IntBool bool

// Bool returns a pointer suitable for optional request fields.
func Bool(v bool) *IntBool {
	b := IntBool(v)
	return &b
}

// MarshalJSON implements json.Marshaler.
func (b IntBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON accepts 0/1, true/false and their quoted forms.
func (b *IntBool) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(bytes.TrimSpace(data), `"`)
	switch string(trimmed) {
	case "1", "true":
		*b = true
	case "0", "false", "", "null":
		*b = false
	default:
		return fmt.Errorf("invalid 0/1 boolean %q", data)
	}
	return nil
}

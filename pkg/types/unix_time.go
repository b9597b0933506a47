package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// UnixTime is a timestamp carried on the wire as integer seconds since epoch.
type UnixTime struct {
	time.Time
}

// NewUnixTime truncates t to whole seconds.
func NewUnixTime(t time.Time) UnixTime {
	return UnixTime{Time: t.UTC().Truncate(time.Second)}
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *UnixTime) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		u.Time = time.Time{}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	secs, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return err
		}
		secs = int64(f)
	}
	u.Time = time.Unix(secs, 0).UTC()
	return nil
}

// MarshalJSON implements json.Marshaler.
func (u UnixTime) MarshalJSON() ([]byte, error) {
	if u.Time.IsZero() {
		return jsonNull, nil
	}
	return []byte(strconv.FormatInt(u.Time.Unix(), 10)), nil
}

// IsZero lets omitzero skip unset timestamps.
func (u UnixTime) IsZero() bool {
	return u.Time.IsZero()
}

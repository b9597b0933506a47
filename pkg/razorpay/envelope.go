package razorpay

import (
	"bytes"
	"encoding/json"
	"reflect"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

// APIError is the structured rejection Razorpay returns as {"error": {...}}.
type APIError = pkgerrors.APIError

// AsAPIError extracts the Razorpay rejection carried by err, if any.
func AsAPIError(err error) (*APIError, bool) {
	return pkgerrors.AsAPIError(err)
}

var jsonNull = []byte("null")

// emptyBodyAccepted marks results whose endpoints may answer with no body.
type emptyBodyAccepted interface {
	acceptsEmptyBody()
}

// decodeEnvelope resolves the untagged success/error union Razorpay uses.
//
// The error shape is tried first: a top-level object whose "error" member
// is an object is always an APIError, whatever optional fields it carries.
// Anything else must decode as R and pass the decode checks on R's fields.
func decodeEnvelope[R any](body []byte) (*R, error) {
	trimmed := bytes.TrimSpace(body)
	apiErr, err := probeAPIError(trimmed)
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		return nil, pkgerrors.NewAPIError(apiErr)
	}

	var out R
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		if _, ok := any(&out).(emptyBodyAccepted); ok {
			return &out, nil
		}
		return nil, pkgerrors.New(pkgerrors.CodeSerialization, "empty response body")
	}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "decode response body").
			WithDetails(map[string]any{"body": truncate(string(trimmed), 512)})
	}
	if err := checkDecoded(&out); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "response does not match expected shape").
			WithDetails(map[string]any{
				"fields": fieldErrors(err),
				"body":   truncate(string(trimmed), 512),
			})
	}
	return &out, nil
}

// wireAPIError is APIError as it appears on the wire. Metadata stays raw so
// nested values do not push an error body onto the success path.
type wireAPIError struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Step        string          `json:"step"`
	Reason      string          `json:"reason"`
	Field       string          `json:"field"`
	Metadata    json.RawMessage `json:"metadata"`
}

// probeAPIError returns the rejection carried by body, or nil when body is
// not error-shaped. An error object that cannot be read is a
// serialization failure.
func probeAPIError(body []byte) (*APIError, error) {
	if len(body) == 0 || body[0] != '{' {
		return nil, nil
	}
	var env struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil
	}
	raw := bytes.TrimSpace(env.Error)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, nil
	}

	var wire wireAPIError
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "decode error envelope").
			WithDetails(map[string]any{"body": truncate(string(body), 512)})
	}
	return &APIError{
		Code:        wire.Code,
		Description: wire.Description,
		Source:      wire.Source,
		Step:        wire.Step,
		Reason:      wire.Reason,
		Field:       wire.Field,
		Metadata:    flattenMetadata(wire.Metadata),
	}, nil
}

// flattenMetadata turns error metadata into Notes. Strings are unquoted and
// any other value keeps its compact JSON text. Metadata that is not an
// object is kept under the "value" key.
func flattenMetadata(raw json.RawMessage) Notes {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		if len(bytes.Trim(trimmed, "[] \t\r\n")) == 0 {
			return Notes{}
		}
		return Notes{"value": compactJSON(trimmed)}
	}
	out := make(Notes, len(fields))
	for key, value := range fields {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			out[key] = s
			continue
		}
		if bytes.Equal(bytes.TrimSpace(value), jsonNull) {
			out[key] = ""
			continue
		}
		out[key] = compactJSON(value)
	}
	return out
}

func compactJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return buf.String()
}

// checkDecoded runs the decode tags on a struct result, so a body that
// shares no fields with R is not mistaken for an empty entity.
func checkDecoded(out any) error {
	if reflect.Indirect(reflect.ValueOf(out)).Kind() != reflect.Struct {
		return nil
	}
	return decodeValidate.Struct(out)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

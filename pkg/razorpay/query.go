package razorpay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

// encodeQuery flattens payload into query pairs. The payload must encode to
// a JSON object whose values are scalars or arrays of scalars; every array
// element becomes a repeated pair under the same key. Null values are
// skipped. Nested objects and arrays of objects are rejected.
func encodeQuery(payload any) (url.Values, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "encode query parameters")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var top any
	if err := dec.Decode(&top); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "encode query parameters")
	}
	if top == nil {
		return url.Values{}, nil
	}

	obj, ok := top.(map[string]any)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeSerialization, "query parameters must encode to a JSON object")
	}

	values := url.Values{}
	for key, value := range obj {
		switch v := value.(type) {
		case nil:
			continue
		case []any:
			for i, elem := range v {
				s, ok := scalarString(elem)
				if !ok {
					return nil, pkgerrors.New(pkgerrors.CodeSerialization,
						fmt.Sprintf("query parameter %s[%d]: nested values are not supported", key, i))
				}
				values.Add(key, s)
			}
		default:
			s, ok := scalarString(v)
			if !ok {
				return nil, pkgerrors.New(pkgerrors.CodeSerialization,
					fmt.Sprintf("query parameter %s: nested objects are not supported", key))
			}
			values.Add(key, s)
		}
	}
	return values, nil
}

func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case bool:
		return strconv.FormatBool(s), true
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	default:
		return "", false
	}
}

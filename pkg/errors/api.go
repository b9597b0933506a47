package errors

import (
	stdErrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/angelmondragon/razorpay-go-client/pkg/types"
)

// APIError is the structured rejection returned by Razorpay inside an
// {"error": {...}} envelope.
type APIError struct {
	Code        string      `json:"code"`
	Description string      `json:"description"`
	Source      string      `json:"source,omitempty"`
	Step        string      `json:"step,omitempty"`
	Reason      string      `json:"reason,omitempty"`
	Metadata    types.Notes `json:"metadata,omitempty"`
	Field       string      `json:"field,omitempty"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Razorpay Error: %s: %s", e.Code, e.Description)
	for _, part := range []struct{ key, value string }{
		{"source", e.Source},
		{"step", e.Step},
		{"reason", e.Reason},
		{"field", e.Field},
	} {
		if part.value != "" {
			fmt.Fprintf(&b, " %s=%s", part.key, part.value)
		}
	}
	if len(e.Metadata) > 0 {
		keys := make([]string, 0, len(e.Metadata))
		for k := range e.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+":"+e.Metadata[k])
		}
		fmt.Fprintf(&b, " metadata={%s}", strings.Join(pairs, ","))
	}
	return b.String()
}

// NewAPIError wraps a decoded Razorpay rejection as a CodeAPI error.
func NewAPIError(apiErr *APIError) *Error {
	msg := "razorpay api error"
	if apiErr != nil && apiErr.Description != "" {
		msg = apiErr.Description
	}
	return Wrap(CodeAPI, apiErr, msg).WithDetails(apiErr)
}

// AsAPIError extracts the Razorpay rejection from err, if any.
func AsAPIError(err error) (*APIError, bool) {
	if err == nil {
		return nil, false
	}
	var apiErr *APIError
	if stdErrors.As(err, &apiErr) && apiErr != nil {
		return apiErr, true
	}
	return nil, false
}

// TransportDetails describes a failed exchange with Razorpay at the HTTP level.
type TransportDetails struct {
	Method     string    `json:"method"`
	URL        string    `json:"url"`
	StatusCode int       `json:"status_code,omitempty"`
	Body       string    `json:"body,omitempty"`
	APIError   *APIError `json:"api_error,omitempty"`
}

// TransportStatus returns the HTTP status attached to a transport failure, or 0.
func TransportStatus(err error) int {
	typed := As(err)
	if typed == nil || typed.Code() != CodeTransport {
		return 0
	}
	if d, ok := typed.Details().(TransportDetails); ok {
		return d.StatusCode
	}
	return 0
}

package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
	"github.com/angelmondragon/razorpay-go-client/pkg/metrics"
)

var errNilClient = errors.New("razorpay client is nil")

// RequestDescriptor describes one outbound call.
//
// Path is appended to {base_url}/{version}. Version overrides the client
// default when set. Payload becomes the query string for GET and DELETE
// (it must encode to a flat JSON object) and the JSON body otherwise.
// Struct payloads are checked against their validate tags first; a failure
// is a VALIDATION_ERROR and no request is sent.
type RequestDescriptor struct {
	Path      string
	Version   string
	Payload   any
	Operation string
}

// Get issues a GET request and decodes the response into R.
func Get[R any](ctx context.Context, c *Client, req RequestDescriptor) (*R, error) {
	return do[R](ctx, c, http.MethodGet, req)
}

// Post issues a POST request with a JSON body and decodes the response into R.
func Post[R any](ctx context.Context, c *Client, req RequestDescriptor) (*R, error) {
	return do[R](ctx, c, http.MethodPost, req)
}

// Put issues a PUT request with a JSON body and decodes the response into R.
func Put[R any](ctx context.Context, c *Client, req RequestDescriptor) (*R, error) {
	return do[R](ctx, c, http.MethodPut, req)
}

// Patch issues a PATCH request with a JSON body and decodes the response into R.
func Patch[R any](ctx context.Context, c *Client, req RequestDescriptor) (*R, error) {
	return do[R](ctx, c, http.MethodPatch, req)
}

// Delete issues a DELETE request and decodes the response into R.
func Delete[R any](ctx context.Context, c *Client, req RequestDescriptor) (*R, error) {
	return do[R](ctx, c, http.MethodDelete, req)
}

func do[R any](ctx context.Context, c *Client, method string, req RequestDescriptor) (*R, error) {
	if c == nil {
		return nil, errNilClient
	}
	if ctx == nil {
		ctx = context.Background()
	}

	op := req.operation(method)
	start := time.Now()

	if err := validateParams(req.Payload); err != nil {
		c.finish(ctx, op, method, start, err)
		return nil, err
	}

	body, err := c.roundTrip(ctx, method, op, req)
	if err == nil {
		var out *R
		out, err = decodeEnvelope[R](body)
		if err == nil {
			c.finish(ctx, op, method, start, nil)
			return out, nil
		}
	}
	c.finish(ctx, op, method, start, err)
	return nil, err
}

func (c *Client) roundTrip(ctx context.Context, method, op string, req RequestDescriptor) ([]byte, error) {
	target := c.entityURL(req)
	fields := map[string]any{
		"method":            method,
		"path":              req.Path,
		"api_version":       c.versionFor(req),
		"client_request_id": uuid.NewString(),
	}

	var body io.Reader
	if req.Payload != nil {
		if method == http.MethodGet || method == http.MethodDelete {
			values, err := encodeQuery(req.Payload)
			if err != nil {
				return nil, err
			}
			if len(values) > 0 {
				target += "?" + values.Encode()
				fields["query"] = map[string][]string(values)
			}
		} else {
			raw, err := json.Marshal(req.Payload)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "encode request body")
			}
			if !bytes.Equal(raw, jsonNull) {
				body = bytes.NewReader(raw)
			}
		}
	}
	c.log(ctx, "start", op, fields)

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, "build request").
			WithDetails(pkgerrors.TransportDetails{Method: method, URL: target})
	}
	httpReq.SetBasicAuth(c.keyID, c.keySecret)
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, fmt.Sprintf("%s %s", method, req.Path)).
			WithDetails(pkgerrors.TransportDetails{Method: method, URL: target})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, "read response body").
			WithDetails(pkgerrors.TransportDetails{Method: method, URL: target, StatusCode: resp.StatusCode})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		details := pkgerrors.TransportDetails{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
		cause := fmt.Errorf("unexpected status %d", resp.StatusCode)
		if apiErr, _ := probeAPIError(bytes.TrimSpace(raw)); apiErr != nil {
			details.APIError = apiErr
			cause = fmt.Errorf("unexpected status %d: %w", resp.StatusCode, apiErr)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, cause, fmt.Sprintf("%s %s", method, req.Path)).
			WithDetails(details)
	}
	return raw, nil
}

func (c *Client) finish(ctx context.Context, op, method string, start time.Time, err error) {
	elapsed := time.Since(start)
	outcome := outcomeFor(err)
	c.metrics.Observe(op, method, outcome, elapsed)

	fields := map[string]any{
		"method":      method,
		"duration_ms": elapsed.Milliseconds(),
		"outcome":     outcome,
	}
	if err != nil {
		fields["error"] = err
		if status := pkgerrors.TransportStatus(err); status != 0 {
			fields["status"] = status
		}
		if apiErr, ok := pkgerrors.AsAPIError(err); ok {
			fields["razorpay_code"] = apiErr.Code
		}
		c.log(ctx, "error", op, fields)
		return
	}
	c.log(ctx, "success", op, fields)
}

func outcomeFor(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	switch pkgerrors.As(err).Code() {
	case pkgerrors.CodeAPI:
		return metrics.OutcomeAPIError
	case pkgerrors.CodeSerialization:
		return metrics.OutcomeSerialization
	case pkgerrors.CodeValidation:
		return metrics.OutcomeValidation
	default:
		return metrics.OutcomeTransport
	}
}

func (c *Client) versionFor(req RequestDescriptor) string {
	if v := strings.Trim(strings.TrimSpace(req.Version), "/"); v != "" {
		return v
	}
	return c.version
}

func (c *Client) entityURL(req RequestDescriptor) string {
	path := req.Path
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return fmt.Sprintf("%s/%s%s", c.baseURL, c.versionFor(req), path)
}

func (r RequestDescriptor) operation(method string) string {
	if r.Operation != "" {
		return r.Operation
	}
	return fmt.Sprintf("%s %s", method, r.Path)
}

package errors

import (
	"errors"
	"fmt"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	RazorpayCode        string            `json:"razorpay_code,omitempty"`
	RazorpayDescription string            `json:"razorpay_description,omitempty"`
	RazorpaySource      string            `json:"razorpay_source,omitempty"`
	RazorpayStep        string            `json:"razorpay_step,omitempty"`
	RazorpayReason      string            `json:"razorpay_reason,omitempty"`
	RazorpayField       string            `json:"razorpay_field,omitempty"`
	RazorpayMetadata    map[string]string `json:"razorpay_metadata,omitempty"`
	HTTPStatus          int               `json:"http_status,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
		if td, ok := te.Details().(TransportDetails); ok {
			d.HTTPStatus = td.StatusCode
			if td.APIError != nil {
				d.fillAPI(td.APIError)
			}
		}
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	if apiErr, ok := AsAPIError(err); ok {
		d.fillAPI(apiErr)
	}

	return d
}

func (d *ErrorDump) fillAPI(apiErr *APIError) {
	d.RazorpayCode = apiErr.Code
	d.RazorpayDescription = apiErr.Description
	d.RazorpaySource = apiErr.Source
	d.RazorpayStep = apiErr.Step
	d.RazorpayReason = apiErr.Reason
	d.RazorpayField = apiErr.Field
	d.RazorpayMetadata = apiErr.Metadata
}

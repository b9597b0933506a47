package types

// SuccessEnvelope wraps every 2xx body the listener writes.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorBody is the listener's own error shape. It is unrelated to the
// {"error": {...}} body Razorpay returns to API callers.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// WebhookAck is the data returned to Razorpay once a delivery is accepted.
// Duplicate is set when the event id was already processed.
type WebhookAck struct {
	Event     string `json:"event,omitempty"`
	Duplicate bool   `json:"duplicate"`
}

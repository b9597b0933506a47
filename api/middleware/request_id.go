package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
)

// RequestIDHeader is echoed on every response so a delivery can be matched
// to its log lines.
const RequestIDHeader = "X-Request-Id"

// RequestID tags the request context with a request id and, for Razorpay
// deliveries, the event id. Razorpay sends no request id of its own, so one
// is generated unless a proxy already set it.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if reqID == "" {
				reqID = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
				if eventID := strings.TrimSpace(r.Header.Get(razorpay.EventIDHeader)); eventID != "" {
					ctx = logg.WithEventID(ctx, eventID)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

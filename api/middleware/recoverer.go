package middleware

import (
	"fmt"
	"net/http"

	"github.com/angelmondragon/razorpay-go-client/api/responses"
	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
)

// Recoverer turns a panicking handler into a 500. Razorpay treats the 500
// as a failed delivery and retries it.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				err := fmt.Errorf("panic: %v", rec)
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"panic":    rec,
						"method":   r.Method,
						"path":     r.URL.Path,
						"signed":   r.Header.Get(razorpay.SignatureHeader) != "",
						"event_id": r.Header.Get(razorpay.EventIDHeader),
					})
					logg.Error(ctx, "webhook.panic_recovered", err)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

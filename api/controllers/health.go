package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/razorpay-go-client/api/responses"
	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/redis"
)

const readinessTimeout = 2 * time.Second

func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the idempotency backend answers. A nil
// pinger means the listener runs on the in-memory store.
func HealthReady(logg *logger.Logger, store redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"idempotency_store": "memory"}
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "redis not ready"))
				return
			}
			checks["idempotency_store"] = "redis"
		}
		checks["status"] = "ready"
		responses.WriteSuccess(w, checks)
	}
}

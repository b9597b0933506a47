package webhooks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/razorpay-go-client/api/responses"
	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/metrics"
	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
	"github.com/angelmondragon/razorpay-go-client/pkg/types"
)

// EventIDHeader carries the unique id Razorpay assigns to each event.
const EventIDHeader = razorpay.EventIDHeader

const maxWebhookBody = 1 << 20

type RazorpayWebhookService interface {
	HandleEvent(ctx context.Context, event *razorpay.WebhookEvent) error
}

type razorpayWebhookGuard interface {
	CheckAndMark(ctx context.Context, eventID string) (bool, error)
	Delete(ctx context.Context, eventID string) error
}

// DeliveryRecorder counts repeated deliveries of the same event.
type DeliveryRecorder interface {
	RecordDelivery(ctx context.Context, eventID string, ttl time.Duration) (int64, error)
}

type RazorpayWebhookParams struct {
	Service  RazorpayWebhookService
	Guard    razorpayWebhookGuard
	Secret   string
	Metrics  *metrics.WebhookMetrics
	Recorder DeliveryRecorder
	TTL      time.Duration
	Logger   *logger.Logger
}

// RazorpayWebhook verifies, deduplicates and dispatches Razorpay events.
func RazorpayWebhook(params RazorpayWebhookParams) http.HandlerFunc {
	svc, guard, logg := params.Service, params.Guard, params.Logger
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "webhook service unavailable"))
			return
		}
		if guard == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "idempotency guard unavailable"))
			return
		}
		if params.Secret == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "webhook secret unavailable"))
			return
		}

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
		if err != nil {
			params.Metrics.Inc("", metrics.WebhookRejected)
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeWebhookParse, err, "read request body"))
			return
		}

		sigHeader := r.Header.Get(razorpay.SignatureHeader)
		if strings.TrimSpace(sigHeader) == "" {
			params.Metrics.Inc("", metrics.WebhookRejected)
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeWebhookAuthentication, "razorpay signature missing"))
			return
		}

		event, err := razorpay.ConstructEvent(payload, sigHeader, params.Secret)
		if err != nil {
			params.Metrics.Inc("", metrics.WebhookRejected)
			responses.WriteError(ctx, logg, w, err)
			return
		}
		eventType := event.Event.String()

		eventID := strings.TrimSpace(r.Header.Get(EventIDHeader))
		if eventID == "" {
			eventID = bodyDigest(payload)
		}
		if logg != nil {
			ctx = logg.WithEventID(ctx, eventID)
			ctx = logg.WithField(ctx, "event_type", eventType)
		}

		if params.Recorder != nil {
			attempt, rerr := params.Recorder.RecordDelivery(ctx, eventID, params.TTL)
			if rerr != nil && logg != nil {
				logg.Warn(ctx, "failed to record webhook delivery")
			} else if attempt > 1 && logg != nil {
				logg.Info(logg.WithField(ctx, "delivery_attempt", attempt), "razorpay event redelivered")
			}
		}

		alreadyProcessed, err := guard.CheckAndMark(ctx, eventID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check idempotency"))
			return
		}
		if alreadyProcessed {
			params.Metrics.Inc(eventType, metrics.WebhookDuplicate)
			responses.WriteSuccess(w, types.WebhookAck{Event: eventType, Duplicate: true})
			return
		}

		if err := svc.HandleEvent(ctx, event); err != nil {
			_ = guard.Delete(ctx, eventID)
			params.Metrics.Inc(eventType, metrics.WebhookHandlerError)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		params.Metrics.Inc(eventType, metrics.WebhookProcessed)
		if logg != nil {
			logg.Info(ctx, "razorpay event processed")
		}
		responses.WriteSuccess(w, types.WebhookAck{Event: eventType})
	}
}

// bodyDigest identifies deliveries that arrive without an event id header.
func bodyDigest(payload []byte) string {
	sum := sha256.Sum256(payload)
	return "sha256_" + hex.EncodeToString(sum[:])
}

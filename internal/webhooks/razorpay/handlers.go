package razorpaywebhook

import (
	"context"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
)

// RegisterLogging attaches handlers that log the main entity of the
// payment, refund, order, subscription and dispute events.
func RegisterLogging(svc *Service, logg *logger.Logger) {
	if svc == nil || logg == nil {
		return
	}
	svc.OnAny(func(ctx context.Context, event *razorpay.WebhookEvent) error {
		fields := map[string]any{
			"event_type": event.Event.String(),
			"resource":   event.Event.Resource(),
			"account_id": event.AccountID,
		}
		if p, ok := event.Payment(); ok {
			fields["payment_id"] = p.ID.String()
			fields["payment_status"] = string(p.Status)
			fields["amount"] = int64(p.Amount)
		}
		if r, ok := event.Refund(); ok {
			fields["refund_id"] = r.ID.String()
		}
		if o, ok := event.Order(); ok {
			fields["order_id"] = o.ID.String()
		}
		if s, ok := event.Subscription(); ok {
			fields["subscription_id"] = s.ID.String()
		}
		if d, ok := event.Dispute(); ok {
			fields["dispute_id"] = d.ID.String()
		}
		logg.Info(logg.WithFields(ctx, fields), "razorpay event received")
		return nil
	})
}

// PaymentFetcher reads the authoritative payment state from the API.
type PaymentFetcher interface {
	Fetch(ctx context.Context, id razorpay.PaymentID, params *razorpay.FetchPaymentParams) (*razorpay.Payment, error)
}

// RegisterPaymentReconciler re-reads captured and failed payments from the
// API and fails the delivery when the webhook disagrees with it, so the
// event is released for Razorpay's retry.
func RegisterPaymentReconciler(svc *Service, payments PaymentFetcher, logg *logger.Logger) {
	if svc == nil || payments == nil {
		return
	}
	reconcile := func(ctx context.Context, event *razorpay.WebhookEvent) error {
		hooked, ok := event.Payment()
		if !ok {
			return pkgerrors.New(pkgerrors.CodeWebhookParse, "payment payload missing")
		}
		current, err := payments.Fetch(ctx, hooked.ID, nil)
		if err != nil {
			return err
		}
		if current.Amount != hooked.Amount {
			return pkgerrors.New(pkgerrors.CodeConflict, "payment amount differs from api").
				WithDetails(map[string]any{"payment_id": hooked.ID.String(), "webhook": int64(hooked.Amount), "api": int64(current.Amount)})
		}
		if logg != nil {
			logg.Info(logg.WithFields(ctx, map[string]any{
				"payment_id":     current.ID.String(),
				"webhook_status": string(hooked.Status),
				"api_status":     string(current.Status),
			}), "razorpay payment reconciled")
		}
		return nil
	}
	svc.On(razorpay.EventPaymentCaptured, reconcile)
	svc.On(razorpay.EventPaymentFailed, reconcile)
}

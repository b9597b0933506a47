package razorpay

import (
	"context"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
)

// ScheduleChangeAt says when a subscription update takes effect.
type ScheduleChangeAt string

const (
	ScheduleChangeNow      ScheduleChangeAt = "now"
	ScheduleChangeCycleEnd ScheduleChangeAt = "cycle_end"
)

// Subscription is the Razorpay subscription entity.
type Subscription struct {
	ID                  SubscriptionID           `json:"id" decode:"required"`
	Entity              Entity                   `json:"entity"`
	PlanID              PlanID                   `json:"plan_id"`
	CustomerID          CustomerID               `json:"customer_id,omitzero"`
	TotalCount          int                      `json:"total_count"`
	CustomerNotify      bool                     `json:"customer_notify"`
	StartAt             UnixTime                 `json:"start_at,omitzero"`
	Quantity            int                      `json:"quantity"`
	Notes               Notes                    `json:"notes"`
	Addons              []Addon                  `json:"addons,omitempty"`
	Status              enums.SubscriptionStatus `json:"status"`
	PaidCount           int                      `json:"paid_count"`
	CurrentStart        UnixTime                 `json:"current_start,omitzero"`
	CurrentEnd          UnixTime                 `json:"current_end,omitzero"`
	EndedAt             UnixTime                 `json:"ended_at,omitzero"`
	ChargeAt            UnixTime                 `json:"charge_at,omitzero"`
	AuthAttempts        int                      `json:"auth_attempts"`
	ExpireBy            UnixTime                 `json:"expire_by,omitzero"`
	OfferID             OfferID                  `json:"offer_id,omitzero"`
	ShortURL            string                   `json:"short_url"`
	HasScheduledChanges bool                     `json:"has_scheduled_changes"`
	ScheduleChangeAt    ScheduleChangeAt         `json:"schedule_change_at,omitempty"`
	RemainingCount      int                      `json:"remaining_count"`
	CreatedAt           UnixTime                 `json:"created_at,omitzero"`
}

// SubscriptionAddon defines an upfront charge collected with the
// authorisation payment.
type SubscriptionAddon struct {
	Item CreateItemParams `json:"item"`
}

// NotifyInfo overrides where Razorpay sends the authorisation link.
type NotifyInfo struct {
	NotifyEmail string `json:"notify_email,omitempty" validate:"omitempty,email"`
	NotifyPhone string `json:"notify_phone,omitempty"`
}

// CreateSubscriptionParams is the body of POST /subscriptions.
type CreateSubscriptionParams struct {
	PlanID         PlanID              `json:"plan_id" validate:"required"`
	TotalCount     int                 `json:"total_count" validate:"gt=0"`
	Quantity       int                 `json:"quantity,omitempty" validate:"gte=0"`
	StartAt        UnixTime            `json:"start_at,omitzero"`
	ExpireBy       UnixTime            `json:"expire_by,omitzero"`
	CustomerNotify *IntBool            `json:"customer_notify,omitempty"`
	Addons         []SubscriptionAddon `json:"addons,omitempty" validate:"dive"`
	OfferID        OfferID             `json:"offer_id,omitzero"`
	Notes          Notes               `json:"notes,omitempty" validate:"max=15"`
	NotifyInfo     *NotifyInfo         `json:"notify_info,omitempty"`
}

// ListSubscriptionsParams filters GET /subscriptions.
type ListSubscriptionsParams struct {
	Filter
	PlanID PlanID `json:"plan_id,omitzero"`
}

// UpdateSubscriptionParams is the body of PATCH /subscriptions/{id}.
type UpdateSubscriptionParams struct {
	PlanID           PlanID           `json:"plan_id,omitzero"`
	OfferID          OfferID          `json:"offer_id,omitzero"`
	Quantity         int              `json:"quantity,omitempty" validate:"gte=0"`
	RemainingCount   int              `json:"remaining_count,omitempty" validate:"gte=0"`
	StartAt          UnixTime         `json:"start_at,omitzero"`
	ScheduleChangeAt ScheduleChangeAt `json:"schedule_change_at,omitempty" validate:"omitempty,oneof=now cycle_end"`
	CustomerNotify   *IntBool         `json:"customer_notify,omitempty"`
}

type cancelSubscriptionBody struct {
	CancelAtCycleEnd IntBool `json:"cancel_at_cycle_end"`
}

type pauseSubscriptionBody struct {
	PauseAt string `json:"pause_at"`
}

type resumeSubscriptionBody struct {
	ResumeAt string `json:"resume_at"`
}

// SubscriptionService groups the /subscriptions endpoints.
type SubscriptionService struct {
	c *Client
}

// Create registers a subscription against a plan.
func (s *SubscriptionService) Create(ctx context.Context, params CreateSubscriptionParams) (*Subscription, error) {
	return Post[Subscription](ctx, s.c, RequestDescriptor{
		Path:      "/subscriptions",
		Payload:   params,
		Operation: "subscriptions.create",
	})
}

// Fetch loads one subscription.
func (s *SubscriptionService) Fetch(ctx context.Context, id SubscriptionID) (*Subscription, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Subscription](ctx, s.c, RequestDescriptor{
		Path:      "/subscriptions/" + id.String(),
		Operation: "subscriptions.fetch",
	})
}

// List returns a page of subscriptions. params may be nil.
func (s *SubscriptionService) List(ctx context.Context, params *ListSubscriptionsParams) (*Collection[Subscription], error) {
	return Get[Collection[Subscription]](ctx, s.c, RequestDescriptor{
		Path:      "/subscriptions",
		Payload:   params,
		Operation: "subscriptions.list",
	})
}

// Cancel stops a subscription immediately, or at the end of the current
// billing cycle when atCycleEnd is set.
func (s *SubscriptionService) Cancel(ctx context.Context, id SubscriptionID, atCycleEnd bool) (*Subscription, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Post[Subscription](ctx, s.c, RequestDescriptor{
		Path:      "/subscriptions/" + id.String() + "/cancel",
		Payload:   cancelSubscriptionBody{CancelAtCycleEnd: IntBool(atCycleEnd)},
		Operation: "subscriptions.cancel",
	})
}

// Update changes the plan, quantity or schedule of a subscription.
func (s *SubscriptionService) Update(ctx context.Context, id SubscriptionID, params UpdateSubscriptionParams) (*Subscription, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Patch[Subscription](ctx, s.c, RequestDescriptor{
		Path:      "/subscriptions/" + id.String(),
		Payload:   params,
		Operation: "subscriptions.update",
	})
}

// FetchPendingUpdate returns the subscription as it will look once the
// update scheduled for the cycle end applies.
func (s *SubscriptionService) FetchPendingUpdate(ctx context.Context, id SubscriptionID) (*Subscription, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Subscription](ctx, s.c, RequestDescriptor{
		Path:      "/subscriptions/" + id.String() + "/retrieve_scheduled_changes",
		Operation: "subscriptions.fetch_pending_update",
	})
}

// CancelScheduledUpdate drops a pending cycle-end update.
func (s *SubscriptionService) CancelScheduledUpdate(ctx context.Context, id SubscriptionID) (*Subscription, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Post[Subscription](ctx, s.c, RequestDescriptor{
		Path:      "/subscriptions/" + id.String() + "/cancel_scheduled_changes",
		Operation: "subscriptions.cancel_scheduled_update",
	})
}

// Pause halts charging immediately.
func (s *SubscriptionService) Pause(ctx context.Context, id SubscriptionID) (*Subscription, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Post[Subscription](ctx, s.c, RequestDescriptor{
		Path:      "/subscriptions/" + id.String() + "/pause",
		Payload:   pauseSubscriptionBody{PauseAt: string(ScheduleChangeNow)},
		Operation: "subscriptions.pause",
	})
}

// Resume restarts a paused subscription immediately.
func (s *SubscriptionService) Resume(ctx context.Context, id SubscriptionID) (*Subscription, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Post[Subscription](ctx, s.c, RequestDescriptor{
		Path:      "/subscriptions/" + id.String() + "/resume",
		Payload:   resumeSubscriptionBody{ResumeAt: string(ScheduleChangeNow)},
		Operation: "subscriptions.resume",
	})
}

package razorpay

import (
	"context"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
)

// Plan is a billing template for subscriptions.
type Plan struct {
	ID        PlanID           `json:"id" decode:"required"`
	Entity    Entity           `json:"entity"`
	Interval  int              `json:"interval"`
	Period    enums.PlanPeriod `json:"period"`
	Item      Item             `json:"item"`
	Notes     Notes            `json:"notes"`
	CreatedAt UnixTime         `json:"created_at"`
}

// CreatePlanParams is the body of POST /plans. A zero Interval is sent as 1.
type CreatePlanParams struct {
	Interval int              `json:"interval" validate:"gte=0"`
	Period   enums.PlanPeriod `json:"period" validate:"required,oneof=daily weekly monthly yearly"`
	Item     CreateItemParams `json:"item"`
	Notes    Notes            `json:"notes,omitempty" validate:"max=15"`
}

// PlanService groups the /plans endpoints.
type PlanService struct {
	c *Client
}

// Create registers a plan.
func (s *PlanService) Create(ctx context.Context, params CreatePlanParams) (*Plan, error) {
	if params.Interval == 0 {
		params.Interval = 1
	}
	return Post[Plan](ctx, s.c, RequestDescriptor{
		Path:      "/plans",
		Payload:   params,
		Operation: "plans.create",
	})
}

// List returns a page of plans. filter may be nil.
func (s *PlanService) List(ctx context.Context, filter *Filter) (*Collection[Plan], error) {
	return Get[Collection[Plan]](ctx, s.c, RequestDescriptor{
		Path:      "/plans",
		Payload:   filter,
		Operation: "plans.list",
	})
}

// Fetch loads one plan.
func (s *PlanService) Fetch(ctx context.Context, id PlanID) (*Plan, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Plan](ctx, s.c, RequestDescriptor{
		Path:      "/plans/" + id.String(),
		Operation: "plans.fetch",
	})
}

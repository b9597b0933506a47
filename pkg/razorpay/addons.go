package razorpay

import "context"

// Addon is a one-off charge attached to the next invoice of a subscription.
type Addon struct {
	ID             AddonID        `json:"id" decode:"required"`
	Entity         Entity         `json:"entity"`
	Item           Item           `json:"item"`
	Quantity       int            `json:"quantity"`
	CreatedAt      UnixTime       `json:"created_at"`
	SubscriptionID SubscriptionID `json:"subscription_id"`
	InvoiceID      InvoiceID      `json:"invoice_id,omitzero"`
}

// CreateAddonParams is the body of POST /subscriptions/{id}/addons.
type CreateAddonParams struct {
	Item     CreateItemParams `json:"item"`
	Quantity int              `json:"quantity" validate:"gt=0"`
}

// AddonService groups the addon endpoints.
type AddonService struct {
	c *Client
}

// Create adds an addon to a subscription.
func (s *AddonService) Create(ctx context.Context, subscriptionID SubscriptionID, params CreateAddonParams) (*Addon, error) {
	if err := requireID(subscriptionID); err != nil {
		return nil, err
	}
	return Post[Addon](ctx, s.c, RequestDescriptor{
		Path:      "/subscriptions/" + subscriptionID.String() + "/addons",
		Payload:   params,
		Operation: "addons.create",
	})
}

// List returns a page of addons. filter may be nil.
func (s *AddonService) List(ctx context.Context, filter *Filter) (*Collection[Addon], error) {
	return Get[Collection[Addon]](ctx, s.c, RequestDescriptor{
		Path:      "/addons",
		Payload:   filter,
		Operation: "addons.list",
	})
}

// Fetch loads one addon.
func (s *AddonService) Fetch(ctx context.Context, id AddonID) (*Addon, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Addon](ctx, s.c, RequestDescriptor{
		Path:      "/addons/" + id.String(),
		Operation: "addons.fetch",
	})
}

// Delete removes an addon that has not been invoiced yet.
func (s *AddonService) Delete(ctx context.Context, id AddonID) error {
	if err := requireID(id); err != nil {
		return err
	}
	_, err := Delete[Deleted](ctx, s.c, RequestDescriptor{
		Path:      "/addons/" + id.String(),
		Operation: "addons.delete",
	})
	return err
}

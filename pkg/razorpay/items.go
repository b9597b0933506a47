package razorpay

import "context"

// ItemType says where an item can be used.
type ItemType string

const (
	ItemTypePlan    ItemType = "plan"
	ItemTypeAddon   ItemType = "addon"
	ItemTypeInvoice ItemType = "invoice"
)

// Item is a reusable product or service with a price.
type Item struct {
	ID           ItemID   `json:"id" decode:"required"`
	Entity       Entity   `json:"entity,omitempty"`
	Name         string   `json:"name"`
	Active       bool     `json:"active"`
	Amount       Amount   `json:"amount"`
	UnitAmount   Amount   `json:"unit_amount"`
	Currency     Currency `json:"currency"`
	Description  string   `json:"description,omitempty"`
	Type         ItemType `json:"type"`
	Unit         *int64   `json:"unit,omitempty"`
	TaxInclusive bool     `json:"tax_inclusive"`
	HSNCode      string   `json:"hsn_code,omitempty"`
	SACCode      string   `json:"sac_code,omitempty"`
	TaxRate      *int64   `json:"tax_rate,omitempty"`
	TaxID        string   `json:"tax_id,omitempty"`
	TaxGroupID   string   `json:"tax_group_id,omitempty"`
	CreatedAt    UnixTime `json:"created_at"`
	UpdatedAt    UnixTime `json:"updated_at,omitzero"`
}

// CreateItemParams is the body of POST /items. It is also embedded when a
// plan or addon defines its item inline.
type CreateItemParams struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Amount      Amount   `json:"amount" validate:"gt=0"`
	Currency    Currency `json:"currency" validate:"required,len=3"`
}

// UpdateItemParams is the body of PATCH /items/{id}.
type UpdateItemParams struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Amount      Amount   `json:"amount,omitempty" validate:"gte=0"`
	Currency    Currency `json:"currency,omitempty" validate:"omitempty,len=3"`
	Active      *bool    `json:"active,omitempty"`
}

// ListItemsParams filters GET /items.
type ListItemsParams struct {
	Filter
	Active *IntBool `json:"active,omitempty"`
}

// ItemService groups the /items endpoints.
type ItemService struct {
	c *Client
}

// Create registers an item.
func (s *ItemService) Create(ctx context.Context, params CreateItemParams) (*Item, error) {
	return Post[Item](ctx, s.c, RequestDescriptor{
		Path:      "/items",
		Payload:   params,
		Operation: "items.create",
	})
}

// Fetch loads one item.
func (s *ItemService) Fetch(ctx context.Context, id ItemID) (*Item, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Item](ctx, s.c, RequestDescriptor{
		Path:      "/items/" + id.String(),
		Operation: "items.fetch",
	})
}

// List returns a page of items. params may be nil.
func (s *ItemService) List(ctx context.Context, params *ListItemsParams) (*Collection[Item], error) {
	return Get[Collection[Item]](ctx, s.c, RequestDescriptor{
		Path:      "/items",
		Payload:   params,
		Operation: "items.list",
	})
}

// Update edits an item. Items already used by an invoice cannot change price.
func (s *ItemService) Update(ctx context.Context, id ItemID, params UpdateItemParams) (*Item, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Patch[Item](ctx, s.c, RequestDescriptor{
		Path:      "/items/" + id.String(),
		Payload:   params,
		Operation: "items.update",
	})
}

// Delete removes an item.
func (s *ItemService) Delete(ctx context.Context, id ItemID) error {
	if err := requireID(id); err != nil {
		return err
	}
	_, err := Delete[Deleted](ctx, s.c, RequestDescriptor{
		Path:      "/items/" + id.String(),
		Operation: "items.delete",
	})
	return err
}

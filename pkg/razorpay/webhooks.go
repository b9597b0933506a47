package razorpay

import (
	"context"
	"strings"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

// WebhookOwnerType is the kind of account that owns a webhook.
type WebhookOwnerType string

const WebhookOwnerMerchant WebhookOwnerType = "merchant"

// Webhook is a webhook subscription registered on an account.
type Webhook struct {
	ID           string           `json:"id" decode:"required"`
	CreatedAt    UnixTime         `json:"created_at"`
	UpdatedAt    UnixTime         `json:"updated_at,omitzero"`
	OwnerID      AccountID        `json:"owner_id"`
	OwnerType    WebhookOwnerType `json:"owner_type"`
	URL          string           `json:"url"`
	Secret       string           `json:"secret,omitempty"`
	AlertEmail   string           `json:"alert_email,omitempty"`
	SecretExists bool             `json:"secret_exists"`
	Active       bool             `json:"active"`
	Events       []EventType      `json:"events"`
}

// CreateWebhookParams is the body of POST /v2/accounts/{id}/webhooks.
type CreateWebhookParams struct {
	URL        string      `json:"url" validate:"required,url"`
	AlertEmail string      `json:"alert_email,omitempty" validate:"omitempty,email"`
	Secret     string      `json:"secret,omitempty"`
	Events     []EventType `json:"events" validate:"required,min=1"`
}

// UpdateWebhookParams is the body of PATCH /v2/accounts/{id}/webhooks/{id}.
type UpdateWebhookParams struct {
	URL    string      `json:"url,omitempty" validate:"omitempty,url"`
	Events []EventType `json:"events" validate:"required,min=1"`
}

// WebhookService groups the v2 webhook management endpoints.
type WebhookService struct {
	c *Client
}

func webhooksPath(accountID AccountID) string {
	return "/accounts/" + accountID.String() + "/webhooks"
}

// Create registers a webhook on an account.
func (s *WebhookService) Create(ctx context.Context, accountID AccountID, params CreateWebhookParams) (*Webhook, error) {
	if err := requireID(accountID); err != nil {
		return nil, err
	}
	return Post[Webhook](ctx, s.c, RequestDescriptor{
		Path:      webhooksPath(accountID),
		Version:   versionV2,
		Payload:   params,
		Operation: "webhooks.create",
	})
}

// Fetch loads one webhook of an account.
func (s *WebhookService) Fetch(ctx context.Context, accountID AccountID, webhookID string) (*Webhook, error) {
	if err := requireID(accountID); err != nil {
		return nil, err
	}
	if err := requireWebhookID(webhookID); err != nil {
		return nil, err
	}
	return Get[Webhook](ctx, s.c, RequestDescriptor{
		Path:      webhooksPath(accountID) + "/" + webhookID,
		Version:   versionV2,
		Operation: "webhooks.fetch",
	})
}

// List returns a page of webhooks of an account. filter may be nil.
func (s *WebhookService) List(ctx context.Context, accountID AccountID, filter *Filter) (*Collection[Webhook], error) {
	if err := requireID(accountID); err != nil {
		return nil, err
	}
	return Get[Collection[Webhook]](ctx, s.c, RequestDescriptor{
		Path:      webhooksPath(accountID),
		Version:   versionV2,
		Payload:   filter,
		Operation: "webhooks.list",
	})
}

// Update changes the url or events of a webhook.
func (s *WebhookService) Update(ctx context.Context, accountID AccountID, webhookID string, params UpdateWebhookParams) (*Webhook, error) {
	if err := requireID(accountID); err != nil {
		return nil, err
	}
	if err := requireWebhookID(webhookID); err != nil {
		return nil, err
	}
	return Patch[Webhook](ctx, s.c, RequestDescriptor{
		Path:      webhooksPath(accountID) + "/" + webhookID,
		Version:   versionV2,
		Payload:   params,
		Operation: "webhooks.update",
	})
}

// Delete removes a webhook from an account.
func (s *WebhookService) Delete(ctx context.Context, accountID AccountID, webhookID string) error {
	if err := requireID(accountID); err != nil {
		return err
	}
	if err := requireWebhookID(webhookID); err != nil {
		return err
	}
	_, err := Delete[Deleted](ctx, s.c, RequestDescriptor{
		Path:      webhooksPath(accountID) + "/" + webhookID,
		Version:   versionV2,
		Operation: "webhooks.delete",
	})
	return err
}

func requireWebhookID(id string) error {
	if id == "" || strings.ContainsAny(id, "/?#") {
		return pkgerrors.New(pkgerrors.CodeValidation, "webhook id is required").
			WithDetails(map[string]string{"value": id})
	}
	return nil
}

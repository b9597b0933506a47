package razorpay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/razorpay-go-client/pkg/config"
	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/metrics"
)

const (
	// DefaultBaseURL is the Razorpay API host.
	DefaultBaseURL = "https://api.razorpay.com"
	// DefaultVersion is the API generation used unless a call overrides it.
	DefaultVersion = "v1"
	// LibraryVersion is reported in the User-Agent header.
	LibraryVersion = "0.1.0"

	versionV2 = "v2"
)

var (
	errKeyIDRequired     = errors.New("razorpay key id is required")
	errKeySecretRequired = errors.New("razorpay key secret is required")
	errBaseURLInvalid    = errors.New("razorpay base url must be absolute")
)

// Options configures a Client. Only the credentials are mandatory.
type Options struct {
	KeyID      string
	KeySecret  string
	BaseURL    string
	Version    string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *logger.Logger
	Metrics    *metrics.ClientMetrics
}

// Client talks to the Razorpay REST API. It holds only immutable state and
// is safe for concurrent use.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	version   string
	userAgent string
	http      *http.Client
	logger    *logger.Logger
	metrics   *metrics.ClientMetrics

	Orders        *OrderService
	Payments      *PaymentService
	Refunds       *RefundService
	Customers     *CustomerService
	Items         *ItemService
	Plans         *PlanService
	Addons        *AddonService
	Subscriptions *SubscriptionService
	Invoices      *InvoiceService
	Settlements   *SettlementService
	Disputes      *DisputeService
	Documents     *DocumentService
	Cards         *CardService
	IINs          *IINService
	Accounts      *AccountService
	Webhooks      *WebhookService
}

// New builds a client from explicit options.
func New(opts Options) (*Client, error) {
	keyID := strings.TrimSpace(opts.KeyID)
	if keyID == "" {
		return nil, errKeyIDRequired
	}
	keySecret := strings.TrimSpace(opts.KeySecret)
	if keySecret == "" {
		return nil, errKeySecretRequired
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, errBaseURLInvalid
	}

	version := strings.Trim(strings.TrimSpace(opts.Version), "/")
	if version == "" {
		version = DefaultVersion
	}

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = fmt.Sprintf("razorpay-go-client@%s", LibraryVersion)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		version:   version,
		userAgent: userAgent,
		http:      httpClient,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}
	c.Orders = &OrderService{c: c}
	c.Payments = &PaymentService{c: c}
	c.Refunds = &RefundService{c: c}
	c.Customers = &CustomerService{c: c}
	c.Items = &ItemService{c: c}
	c.Plans = &PlanService{c: c}
	c.Addons = &AddonService{c: c}
	c.Subscriptions = &SubscriptionService{c: c}
	c.Invoices = &InvoiceService{c: c}
	c.Settlements = &SettlementService{c: c}
	c.Disputes = &DisputeService{c: c}
	c.Documents = &DocumentService{c: c}
	c.Cards = &CardService{c: c}
	c.IINs = &IINService{c: c}
	c.Accounts = &AccountService{c: c}
	c.Webhooks = &WebhookService{c: c}
	return c, nil
}

// NewFromConfig validates the environment-derived config and builds a client.
func NewFromConfig(ctx context.Context, cfg config.RazorpayConfig, logg *logger.Logger, m *metrics.ClientMetrics) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := New(Options{
		KeyID:     cfg.KeyID,
		KeySecret: cfg.KeySecret,
		BaseURL:   cfg.BaseURL,
		Version:   cfg.APIVersion,
		UserAgent: cfg.UserAgent,
		Logger:    logg,
		Metrics:   m,
	})
	if err != nil {
		return nil, err
	}
	if logg != nil {
		logg.Info(logg.WithFields(ctx, map[string]any{
			"razorpay_env": cfg.Environment(),
			"base_url":     c.baseURL,
			"api_version":  c.version,
		}), "razorpay client initialized")
	}
	return c, nil
}

// KeyID returns the public half of the configured key pair.
func (c *Client) KeyID() string {
	if c == nil {
		return ""
	}
	return c.keyID
}

// BaseURL returns the API host the client targets.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

// Version returns the client-wide default API version.
func (c *Client) Version() string {
	if c == nil {
		return ""
	}
	return c.version
}

// NewReceipt returns a unique receipt id for orders, refunds and invoices.
// Razorpay caps receipts at 40 characters.
func NewReceipt(prefix string) string {
	key := strings.TrimSpace(prefix)
	if key == "" {
		key = "rcpt"
	}
	receipt := fmt.Sprintf("%s_%s", key, strings.ReplaceAll(uuid.NewString(), "-", ""))
	if len(receipt) > maxReceiptLen {
		receipt = receipt[:maxReceiptLen]
	}
	return receipt
}

const maxReceiptLen = 40

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = redact(k, v)
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		err, _ := fields["error"].(error)
		if err == nil {
			err = errors.New(fmt.Sprint(fields["error"]))
		}
		c.logger.Error(ctx, fmt.Sprintf("razorpay %s", op), err)
	case "start":
		c.logger.Debug(ctx, fmt.Sprintf("razorpay %s", phase))
	default:
		c.logger.Info(ctx, fmt.Sprintf("razorpay %s", phase))
	}
}

var sensitiveKeys = []string{"card", "cvv", "secret", "token", "email", "contact", "phone", "vpa", "pan", "gst"}

// redact masks values whose key has a sensitive segment, so "card_number"
// is hidden while "expand" is not.
func redact(key string, value any) any {
	for _, part := range strings.FieldsFunc(strings.ToLower(key), isKeySeparator) {
		if slices.Contains(sensitiveKeys, part) {
			return "[REDACTED]"
		}
	}
	if values, ok := value.(map[string][]string); ok {
		out := make(map[string]any, len(values))
		for k, v := range values {
			out[k] = redact(k, v)
		}
		return out
	}
	return value
}

func isKeySeparator(r rune) bool {
	return r == '_' || r == '.' || r == '[' || r == ']' || r == '-'
}

package config

// EnvPrefix is passed to envconfig; every field carries its full name.
const EnvPrefix = ""

const (
	EnvKeyID       = "RAZORPAY_KEY_ID"
	EnvKeySecret   = "RAZORPAY_KEY_SECRET"
	EnvEnvironment = "RAZORPAY_ENV"
	EnvBaseURL     = "RAZORPAY_BASE_URL"
	EnvAPIVersion  = "RAZORPAY_API_VERSION"
	EnvUserAgent   = "RAZORPAY_USER_AGENT"

	EnvWebhookSecret         = "RAZORPAY_WEBHOOK_SECRET"
	EnvWebhookIdempotencyTTL = "RAZORPAY_WEBHOOK_IDEMPOTENCY_TTL"

	EnvRedisURL  = "RAZORPAY_REDIS_URL"
	EnvRedisAddr = "RAZORPAY_REDIS_ADDR"

	EnvPort     = "RAZORPAY_LISTEN_PORT"
	EnvLogLevel = "RAZORPAY_LOG_LEVEL"
)

const (
	EnvTest = "test"
	EnvLive = "live"

	testKeyPrefix = "rzp_test_"
	liveKeyPrefix = "rzp_live_"
)

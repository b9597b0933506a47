package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	App      AppConfig
	Razorpay RazorpayConfig
	Webhook  WebhookConfig
	Redis    RedisConfig
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadClient reads only what the API client needs. Webhook and redis
// settings are ignored so CLI usage does not require them.
func LoadClient() (*RazorpayConfig, error) {
	var cfg RazorpayConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing razorpay config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate combines every configuration problem into one error.
func (c *Config) Validate() error {
	return multierr.Combine(
		c.Razorpay.Validate(),
		c.Redis.Validate(),
	)
}

type AppConfig struct {
	Port         string `envconfig:"RAZORPAY_LISTEN_PORT" default:"8080"`
	LogLevel     string `envconfig:"RAZORPAY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RAZORPAY_LOG_WARN_STACK" default:"false"`
}

type RazorpayConfig struct {
	KeyID      string `envconfig:"RAZORPAY_KEY_ID" required:"true"`
	KeySecret  string `envconfig:"RAZORPAY_KEY_SECRET" required:"true"`
	Env        string `envconfig:"RAZORPAY_ENV" default:"test"`
	BaseURL    string `envconfig:"RAZORPAY_BASE_URL" default:"https://api.razorpay.com"`
	APIVersion string `envconfig:"RAZORPAY_API_VERSION" default:"v1"`
	UserAgent  string `envconfig:"RAZORPAY_USER_AGENT"`
}

// Environment returns the normalized Razorpay environment (test/live).
func (r RazorpayConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(r.Env))
	if env == "" {
		return EnvTest
	}
	return env
}

// Validate checks the key pair and that the key id matches the environment.
func (r RazorpayConfig) Validate() error {
	var err error
	if strings.TrimSpace(r.KeyID) == "" {
		err = multierr.Append(err, errKeyIDRequired)
	}
	if strings.TrimSpace(r.KeySecret) == "" {
		err = multierr.Append(err, errKeySecretRequired)
	}
	if r.KeyID != "" {
		err = multierr.Append(err, ValidateKeyID(r.Environment(), r.KeyID))
	}
	if _, perr := url.ParseRequestURI(r.BaseURL); perr != nil || r.BaseURL == "" {
		err = multierr.Append(err, fmt.Errorf("%s must be an absolute url", EnvBaseURL))
	}
	if strings.TrimSpace(r.APIVersion) == "" {
		err = multierr.Append(err, fmt.Errorf("%s must not be empty", EnvAPIVersion))
	}
	return err
}

type WebhookConfig struct {
	Secret         string        `envconfig:"RAZORPAY_WEBHOOK_SECRET" required:"true"`
	IdempotencyTTL time.Duration `envconfig:"RAZORPAY_WEBHOOK_IDEMPOTENCY_TTL" default:"24h"`
	Path           string        `envconfig:"RAZORPAY_WEBHOOK_PATH" default:"/webhooks/razorpay"`
}

type RedisConfig struct {
	URL          string        `envconfig:"RAZORPAY_REDIS_URL"`
	Address      string        `envconfig:"RAZORPAY_REDIS_ADDR"`
	Password     string        `envconfig:"RAZORPAY_REDIS_PASSWORD"`
	DB           int           `envconfig:"RAZORPAY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RAZORPAY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RAZORPAY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RAZORPAY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RAZORPAY_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"RAZORPAY_REDIS_WRITE_TIMEOUT" default:"3s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

func (r RedisConfig) Validate() error {
	if r.URL == "" {
		return nil
	}
	u, err := url.Parse(r.URL)
	if err != nil || (u.Scheme != "redis" && u.Scheme != "rediss") {
		return fmt.Errorf("%s must be a redis:// or rediss:// url", EnvRedisURL)
	}
	return nil
}

var (
	errKeyIDRequired     = fmt.Errorf("%s is required", EnvKeyID)
	errKeySecretRequired = fmt.Errorf("%s is required", EnvKeySecret)
	errInvalidEnv        = fmt.Errorf("razorpay environment must be %q or %q", EnvTest, EnvLive)
)

// ValidateKeyID checks the key id prefix against the environment.
func ValidateKeyID(env, keyID string) error {
	switch env {
	case EnvTest:
		if strings.HasPrefix(keyID, testKeyPrefix) {
			return nil
		}
		return fmt.Errorf("razorpay environment %q requires a test key (%s)", EnvTest, testKeyPrefix)
	case EnvLive:
		if strings.HasPrefix(keyID, liveKeyPrefix) {
			return nil
		}
		return fmt.Errorf("razorpay environment %q requires a live key (%s)", EnvLive, liveKeyPrefix)
	default:
		return errInvalidEnv
	}
}

// IsInvalidEnv reports whether err was caused by an unknown RAZORPAY_ENV.
func IsInvalidEnv(err error) bool {
	for _, e := range multierr.Errors(err) {
		if errors.Is(e, errInvalidEnv) {
			return true
		}
	}
	return false
}

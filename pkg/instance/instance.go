package instance

import (
	"os"

	"github.com/angelmondragon/razorpay-go-client/pkg/env"
)

// GetID returns the listener instance identifier used in logs. It prefers
// RAZORPAY_INSTANCE_ID, then POD_NAME, then the host name.
func GetID() string {
	if id := env.FirstOf("", "RAZORPAY_INSTANCE_ID", "POD_NAME"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "listener-0"
}

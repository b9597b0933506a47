package env

import (
	"os"
	"strings"
)

// Get returns the value of the given environment variable or a fallback.
// Whitespace-only values count as unset.
func Get(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

// FirstOf returns the first set variable among keys, so RAZORPAY_-prefixed
// names can override the generic ones.
func FirstOf(fallback string, keys ...string) string {
	for _, key := range keys {
		if val := Get(key, ""); val != "" {
			return val
		}
	}
	return fallback
}

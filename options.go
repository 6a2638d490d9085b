package webpush

import (
	"net/http"
	"time"

	"github.com/pushforge/webpush-go/internal/ece"
	"github.com/pushforge/webpush-go/internal/vapid"
)

const (
	// DefaultTTL is the TTL attached to notifications that do not set one:
	// 24 hours of queueing at the push service.
	DefaultTTL = 24 * time.Hour

	// DefaultTokenExpiry is the validity window of VAPID tokens. RFC 8292
	// allows up to 24 hours; the shorter default tolerates clock skew.
	DefaultTokenExpiry = vapid.DefaultTokenExpiry

	// DefaultRecordSize is the encrypted record size push services are
	// required to accept.
	DefaultRecordSize = ece.DefaultRecordSize

	// MaxPayloadSize is the largest payload that fits in a default-size
	// record once padding and the authentication tag are accounted for.
	MaxPayloadSize = ece.DefaultRecordSize - ece.Overhead
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	httpClient  *http.Client
	tokenExpiry time.Duration
	recordSize  int
	defaultTTL  time.Duration
	now         func() time.Time
}

// Option configures the client.
type Option func(*clientConfig)

// WithHTTPClient sets a custom HTTP client for delivery requests. The SDK
// never retries; timeouts, proxies and retry policy belong to this client
// and the caller.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTokenExpiry sets the validity window of VAPID tokens. Push services
// reject tokens valid for more than 24 hours.
// Default: 12 hours.
func WithTokenExpiry(expiry time.Duration) Option {
	return func(c *clientConfig) {
		c.tokenExpiry = expiry
	}
}

// WithRecordSize sets the encrypted record size. Push services are only
// required to accept the default of 4096 bytes; lower it for services with
// tighter limits.
func WithRecordSize(size int) Option {
	return func(c *clientConfig) {
		c.recordSize = size
	}
}

// WithDefaultTTL sets the TTL used for notifications that do not carry one.
// Default: 24 hours.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *clientConfig) {
		c.defaultTTL = ttl
	}
}

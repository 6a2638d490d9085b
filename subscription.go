package webpush

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Keys holds the subscriber's base64-encoded key material from the browser
// subscription object.
type Keys struct {
	// P256dh is the subscriber's P-256 public key, an uncompressed point.
	P256dh string `json:"p256dh"`
	// Auth is the subscriber's 16-byte authentication secret.
	Auth string `json:"auth"`
}

// Subscription represents a PushSubscription obtained from the browser's
// Push API and handed to the application server out-of-band.
type Subscription struct {
	// Endpoint is the push service URL deliveries are POSTed to.
	Endpoint string `json:"endpoint"`
	// Keys is the subscriber's encryption key material.
	Keys Keys `json:"keys"`
}

// Validate checks that the subscription carries an HTTPS endpoint and both
// key values. It does not decode the keys; that happens during encryption.
func (s *Subscription) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: subscription is nil", ErrInvalidSubscription)
	}
	if s.Endpoint == "" {
		return fmt.Errorf("%w: missing endpoint", ErrInvalidSubscription)
	}
	if !strings.HasPrefix(s.Endpoint, "https://") {
		return fmt.Errorf("%w: endpoint must use HTTPS", ErrInvalidSubscription)
	}
	if s.Keys.P256dh == "" {
		return fmt.Errorf("%w: missing p256dh key", ErrInvalidSubscription)
	}
	if s.Keys.Auth == "" {
		return fmt.Errorf("%w: missing auth secret", ErrInvalidSubscription)
	}
	return nil
}

// ParseSubscription parses and validates the JSON form of a browser
// PushSubscription, the shape produced by PushSubscription.toJSON().
func ParseSubscription(data []byte) (*Subscription, error) {
	var sub Subscription
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubscription, err)
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	return &sub, nil
}

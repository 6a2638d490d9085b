package webpush

import (
	"errors"
	"fmt"

	"github.com/pushforge/webpush-go/internal/ece"
	"github.com/pushforge/webpush-go/internal/vapid"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingSigningKey is returned when no signing key is provided.
	ErrMissingSigningKey = errors.New("signing key is required")

	// ErrInvalidSubject is returned when the sender subject is not a
	// mailto: or https:// URI. This is a configuration fault and is
	// reported at client construction, before any cryptographic work.
	ErrInvalidSubject = errors.New("invalid VAPID subject")

	// ErrInvalidSubscription is returned when a subscription is missing
	// its endpoint or key material.
	ErrInvalidSubscription = errors.New("invalid subscription")

	// ErrInvalidEndpoint is returned when the subscription endpoint is not
	// a usable URL.
	ErrInvalidEndpoint = errors.New("invalid push endpoint")

	// ErrKeyAgreement is returned when the subscriber's key material is
	// unusable: p256dh is not a valid P-256 point or auth is not 16 bytes.
	// The subscription cannot be encrypted to and should be discarded.
	ErrKeyAgreement = errors.New("key agreement failed")

	// ErrPayloadTooLarge is returned when the payload does not fit in a
	// single encrypted record. Not retryable without shrinking the payload.
	ErrPayloadTooLarge = errors.New("payload exceeds maximum record size")

	// ErrInvalidTTL is returned when a notification carries a negative TTL
	// other than TTLImmediate.
	ErrInvalidTTL = errors.New("invalid TTL")

	// ErrInvalidUrgency is returned when a notification carries an urgency
	// outside the four values defined by RFC 8030.
	ErrInvalidUrgency = errors.New("invalid urgency")

	// ErrUnexpectedStatus is returned when the push service responds with
	// a status code that maps to neither delivery nor expiry.
	ErrUnexpectedStatus = errors.New("unexpected push service status")
)

// WebPushError is implemented by all SDK errors.
type WebPushError interface {
	error
	WebPushError() // marker method
}

// UnexpectedStatusError is returned when the push service answers with a
// status code the SDK does not map to a subscription state. The raw status
// and body are preserved verbatim so the caller can decide policy: a 400
// suggests a malformed request, 413 an oversized payload, 429 rate limiting.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("push service returned %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("push service returned %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *UnexpectedStatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// WebPushError implements the WebPushError interface.
func (e *UnexpectedStatusError) WebPushError() {}

// NetworkError represents a transport-level failure: the request never
// completed, so nothing can be inferred about the subscription.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// WebPushError implements the WebPushError interface.
func (e *NetworkError) WebPushError() {}

// wrapError converts internal package errors to public sentinels so that
// errors.Is() checks work at the SDK boundary.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ece.ErrInvalidPublicKey), errors.Is(err, ece.ErrInvalidAuthSecret):
		return fmt.Errorf("%w: %v", ErrKeyAgreement, err)
	case errors.Is(err, ece.ErrPayloadTooLarge):
		return fmt.Errorf("%w: %v", ErrPayloadTooLarge, err)
	case errors.Is(err, vapid.ErrInvalidSubject):
		return fmt.Errorf("%w: %v", ErrInvalidSubject, err)
	case errors.Is(err, vapid.ErrInvalidEndpoint):
		return fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}

	return err
}

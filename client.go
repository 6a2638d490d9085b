package webpush

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pushforge/webpush-go/internal/ece"
	"github.com/pushforge/webpush-go/internal/vapid"
)

// bodyReadLimit caps how much of a push service response body is retained
// in an UnexpectedStatusError.
const bodyReadLimit = 4096

// Request is a delivery request ready to POST to a push service: the
// encrypted body and every header the protocol requires.
type Request struct {
	// Endpoint is the push service URL from the subscription.
	Endpoint string
	// Body is the encrypted aes128gcm record.
	Body []byte
	// Headers holds Content-Encoding, Content-Length, TTL, Authorization,
	// and Urgency/Topic when set.
	Headers map[string]string
}

// Service is the capability a delivery backend needs: turning a
// notification into a wire request and a push service response into a
// subscription state. Client is the default implementation; the
// cryptographic core underneath depends on no HTTP abstraction.
type Service interface {
	BuildRequest(n *Notification) (*Request, error)
	InterpretResponse(statusCode int, body string) (SubscriptionState, error)
}

// Client sends Web Push notifications on behalf of one application server
// identity. It holds no mutable state and is safe for concurrent use.
type Client struct {
	signingKey  *SigningKey
	subject     string
	httpClient  *http.Client
	tokenExpiry time.Duration
	recordSize  int
	defaultTTL  time.Duration
	now         func() time.Time
}

var _ Service = (*Client)(nil)

// New creates a client for the given sender identity. subject must be a
// mailto: or https:// URI identifying the sender; an invalid subject is a
// configuration fault and fails here, before any per-send work.
func New(subject string, key *SigningKey, opts ...Option) (*Client, error) {
	if key == nil {
		return nil, ErrMissingSigningKey
	}
	if err := vapid.ValidateSubject(subject); err != nil {
		return nil, wrapError(err)
	}

	cfg := &clientConfig{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		tokenExpiry: DefaultTokenExpiry,
		recordSize:  DefaultRecordSize,
		defaultTTL:  DefaultTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		signingKey:  key,
		subject:     subject,
		httpClient:  cfg.httpClient,
		tokenExpiry: cfg.tokenExpiry,
		recordSize:  cfg.recordSize,
		defaultTTL:  cfg.defaultTTL,
		now:         cfg.now,
	}, nil
}

// ApplicationServerKey returns the public key value browsers need for
// PushManager.subscribe(), base64url encoded.
func (c *Client) ApplicationServerKey() string {
	return c.signingKey.PublicKeyB64()
}

// BuildRequest encrypts the notification payload and assembles the full
// header set. Every call consumes fresh randomness: a one-time ECDH key
// pair and salt for encryption, and a fresh ECDSA signature for the VAPID
// token.
func (c *Client) BuildRequest(n *Notification) (*Request, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	keys, err := ece.ParseSubscriberKeys(n.Subscription.Keys.P256dh, n.Subscription.Keys.Auth)
	if err != nil {
		return nil, wrapError(err)
	}

	body, err := ece.Encrypt(n.Payload, keys, c.recordSize)
	if err != nil {
		return nil, wrapError(err)
	}

	authorization, err := vapid.AuthorizationHeader(
		c.signingKey, n.Subscription.Endpoint, c.subject, c.tokenExpiry, c.now())
	if err != nil {
		return nil, wrapError(err)
	}

	ttl := n.TTL
	switch ttl {
	case TTLImmediate:
		ttl = 0
	case 0:
		ttl = c.defaultTTL
	}

	headers := map[string]string{
		"Content-Encoding": "aes128gcm",
		"Content-Type":     "application/octet-stream",
		"Content-Length":   strconv.Itoa(len(body)),
		"TTL":              strconv.Itoa(int(ttl.Seconds())),
		"Authorization":    authorization,
	}
	if n.Urgency != "" {
		headers["Urgency"] = string(n.Urgency)
	}
	if n.Topic != "" {
		headers["Topic"] = n.Topic
	}

	return &Request{
		Endpoint: n.Subscription.Endpoint,
		Body:     body,
		Headers:  headers,
	}, nil
}

// InterpretResponse maps a push service response to a subscription state.
// See ResolveSubscriptionState for the mapping.
func (c *Client) InterpretResponse(statusCode int, body string) (SubscriptionState, error) {
	return ResolveSubscriptionState(statusCode, body)
}

// Send encrypts, signs, and delivers one notification, returning the
// resulting subscription state.
//
// StateExpired is a normal outcome, not an error: discard the subscription.
// Failures are reported synchronously and never retried internally —
// transport problems surface as *NetworkError, unrecognized push service
// responses as *UnexpectedStatusError, and retry policy belongs to the
// caller.
func (c *Client) Send(ctx context.Context, n *Notification) (SubscriptionState, error) {
	request, err := c.BuildRequest(n)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, request.Endpoint, bytes.NewReader(request.Body))
	if err != nil {
		return "", wrapError(err)
	}
	for name, value := range request.Headers {
		httpReq.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &NetworkError{Err: err, URL: request.Endpoint}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, bodyReadLimit))

	return c.InterpretResponse(resp.StatusCode, string(body))
}

package webpush

// SubscriptionState is the outcome of a delivery attempt as reported by the
// push service.
type SubscriptionState string

const (
	// StateActive means the push service accepted the message; the
	// subscription remains valid.
	StateActive SubscriptionState = "active"

	// StateExpired means the subscription is permanently invalid (the push
	// service answered 404 or 410) and the caller should discard it.
	StateExpired SubscriptionState = "expired"
)

// ResolveSubscriptionState maps a push service HTTP response to a
// subscription state.
//
// Any 2xx means the message was accepted; 404 and 410 mean the
// subscription is gone. Every other status becomes an
// *UnexpectedStatusError carrying the raw code and body.
func ResolveSubscriptionState(statusCode int, body string) (SubscriptionState, error) {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return StateActive, nil
	case statusCode == 404, statusCode == 410:
		return StateExpired, nil
	default:
		return "", &UnexpectedStatusError{StatusCode: statusCode, Body: body}
	}
}

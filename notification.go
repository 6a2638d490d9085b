package webpush

import (
	"fmt"
	"time"
)

// Urgency is the delivery priority hint understood by push services.
// It directly impacts battery use on the receiving device (RFC 8030
// section 5.3).
type Urgency string

const (
	// UrgencyVeryLow delivers only on power and Wi-Fi.
	UrgencyVeryLow Urgency = "very-low"
	// UrgencyLow delivers on either power or Wi-Fi.
	UrgencyLow Urgency = "low"
	// UrgencyNormal delivers on neither power nor Wi-Fi.
	UrgencyNormal Urgency = "normal"
	// UrgencyHigh delivers in any state including low battery.
	UrgencyHigh Urgency = "high"
)

// IsValid reports whether u is one of the four defined urgency values.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyVeryLow, UrgencyLow, UrgencyNormal, UrgencyHigh:
		return true
	}
	return false
}

// TTLImmediate requests immediate delivery: a TTL header of 0, meaning the
// push service delivers right away or drops the message (RFC 8030 section
// 5.2). It is distinct from leaving TTL unset, which selects the client's
// default.
const TTLImmediate time.Duration = -1

// Notification is one push message: the payload, its target subscription,
// and the optional delivery hints. It is constructed per send and consumed
// once; the zero values of the optional fields mean "use defaults" (TTL) or
// "omit" (Topic, Urgency).
type Notification struct {
	// Subscription is the delivery target.
	Subscription *Subscription
	// Payload is the message body. It may be empty; push services deliver
	// payload-less messages as a bare wakeup.
	Payload []byte
	// TTL is how long the push service may queue the message. Zero means
	// the client's default, TTLImmediate means deliver-or-drop; it is
	// rounded down to whole seconds.
	TTL time.Duration
	// Topic, when set, lets a newer message replace a queued one carrying
	// the same topic. Push services limit it to 32 URL-safe characters.
	Topic string
	// Urgency, when set, is the delivery priority hint.
	Urgency Urgency
}

// Validate checks the notification and its subscription.
func (n *Notification) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: notification is nil", ErrInvalidSubscription)
	}
	if err := n.Subscription.Validate(); err != nil {
		return err
	}
	if n.TTL < 0 && n.TTL != TTLImmediate {
		return fmt.Errorf("%w: %v is negative", ErrInvalidTTL, n.TTL)
	}
	if n.Urgency != "" && !n.Urgency.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidUrgency, n.Urgency)
	}
	return nil
}

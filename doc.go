// Package webpush sends encrypted Web Push messages to browser push
// services on behalf of an application server.
//
// It implements Web Push message encryption (RFC 8291, the aes128gcm
// content encoding of RFC 8188) and VAPID sender authentication (RFC 8292):
// given a subscriber's key material and a payload, it produces the framed,
// encrypted request body and the signed Authorization header any
// standards-compliant push service accepts, and maps the service's response
// back to a subscription state.
//
// Basic usage:
//
//	key, err := webpush.ParseSigningKey(os.Getenv("VAPID_PRIVATE_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := webpush.New("mailto:ops@example.com", key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sub, err := webpush.ParseSubscription(subscriptionJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	state, err := client.Send(ctx, &webpush.Notification{
//	    Subscription: sub,
//	    Payload:      []byte(`{"title":"Hi"}`),
//	    Urgency:      webpush.UrgencyNormal,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if state == webpush.StateExpired {
//	    // The subscription is gone for good; remove it from storage.
//	}
//
// Every send is independent: a fresh one-time ECDH key pair and salt are
// consumed per message, so the client is safe for unbounded concurrent use.
// The SDK stores no subscriptions, schedules nothing, and never retries;
// delivery policy belongs to the caller.
package webpush

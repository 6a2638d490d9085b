// Package vapid implements Voluntary Application Server Identification for
// Web Push (RFC 8292).
//
// A sender proves its identity to a push service with a short-lived ES256
// JWT bound to the push service's origin:
//
//	{"aud": "https://push.example.net", "exp": 1700000000, "sub": "mailto:ops@example.com"}
//
// The token and the sender's raw public key travel in the Authorization
// header of every delivery request:
//
//	Authorization: vapid t=<jwt>, k=<base64url uncompressed public key>
//
// The signing key is a long-lived P-256 ECDSA key pair owned by the sending
// application. Its public half doubles as the applicationServerKey the
// browser uses when creating subscriptions, which is why this package keeps
// key management (generate, parse, export) next to token signing.
package vapid

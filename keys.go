package webpush

import "github.com/pushforge/webpush-go/internal/vapid"

// SigningKey is the application server's long-lived P-256 key pair used to
// sign VAPID tokens. Generate one with [GenerateSigningKey], persist the
// value of PrivateKeyB64, and reload it with [ParseSigningKey] on startup.
// A SigningKey is immutable and safe for concurrent use by any number of
// simultaneous sends.
type SigningKey = vapid.SigningKey

// GenerateSigningKey creates a new VAPID signing key pair.
func GenerateSigningKey() (*SigningKey, error) {
	return vapid.GenerateSigningKey()
}

// ParseSigningKey parses a signing key from its raw 32-byte scalar in
// base64url encoding.
func ParseSigningKey(privateKeyB64 string) (*SigningKey, error) {
	return vapid.ParseSigningKey(privateKeyB64)
}

// ParseSigningKeyPEM parses a PEM-encoded signing key in SEC 1 or PKCS #8
// form.
func ParseSigningKeyPEM(pemData []byte) (*SigningKey, error) {
	return vapid.ParseSigningKeyPEM(pemData)
}

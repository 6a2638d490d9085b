package ece

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for salts and one-time keys.
// It defaults to crypto/rand and can be overridden for testing.
var randReader io.Reader = rand.Reader

// SubscriberKeys holds the subscriber's key material from the browser
// subscription: the p256dh public key and the 16-byte auth secret.
type SubscriberKeys struct {
	// PublicKey is the subscriber's ECDH public key (p256dh).
	PublicKey *ecdh.PublicKey
	// Auth is the 16-byte shared authentication secret.
	Auth []byte
}

// ParseSubscriberKeys validates and decodes the base64-encoded p256dh and
// auth values from a browser subscription. The p256dh value must be a valid
// uncompressed point on P-256 and auth must be exactly 16 bytes.
func ParseSubscriberKeys(p256dh, auth string) (*SubscriberKeys, error) {
	publicKeyBytes, err := DecodeBase64(p256dh)
	if err != nil {
		return nil, fmt.Errorf("%w: decode p256dh: %v", ErrInvalidPublicKey, err)
	}

	publicKey, err := ecdh.P256().NewPublicKey(publicKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	authSecret, err := DecodeBase64(auth)
	if err != nil {
		return nil, fmt.Errorf("%w: decode auth: %v", ErrInvalidAuthSecret, err)
	}

	if len(authSecret) != AuthSecretSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidAuthSecret, len(authSecret), AuthSecretSize)
	}

	return &SubscriberKeys{
		PublicKey: publicKey,
		Auth:      authSecret,
	}, nil
}

// NewSubscriberKeys wraps already-decoded subscriber key material.
func NewSubscriberKeys(publicKeyBytes, auth []byte) (*SubscriberKeys, error) {
	publicKey, err := ecdh.P256().NewPublicKey(publicKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	if len(auth) != AuthSecretSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidAuthSecret, len(auth), AuthSecretSize)
	}

	return &SubscriberKeys{
		PublicKey: publicKey,
		Auth:      auth,
	}, nil
}

// GenerateSubscriberKeys creates a subscriber-side key pair and auth secret.
// This is the user agent half of a subscription; a sending application never
// needs it, but tests and local verification do.
func GenerateSubscriberKeys() (*SubscriberKeys, *ecdh.PrivateKey, error) {
	privateKey, err := ecdh.P256().GenerateKey(randReader)
	if err != nil {
		return nil, nil, err
	}

	auth := make([]byte, AuthSecretSize)
	if _, err := io.ReadFull(randReader, auth); err != nil {
		return nil, nil, err
	}

	keys := &SubscriberKeys{
		PublicKey: privateKey.PublicKey(),
		Auth:      auth,
	}
	return keys, privateKey, nil
}

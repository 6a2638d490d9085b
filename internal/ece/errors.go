package ece

import "errors"

var (
	// ErrInvalidPublicKey is returned when the subscriber's p256dh value
	// does not decode to a valid point on P-256.
	ErrInvalidPublicKey = errors.New("invalid subscriber public key")

	// ErrInvalidAuthSecret is returned when the subscriber's auth secret
	// is not exactly 16 bytes.
	ErrInvalidAuthSecret = errors.New("invalid auth secret size")

	// ErrPayloadTooLarge is returned when the padded plaintext would not
	// fit in a single record.
	ErrPayloadTooLarge = errors.New("payload exceeds maximum record size")

	// ErrInvalidRecordSize is returned when a requested record size does
	// not fit the 32-bit header field.
	ErrInvalidRecordSize = errors.New("invalid record size")

	// ErrInvalidRecord is returned when a record is too short or otherwise
	// malformed on the decrypting side.
	ErrInvalidRecord = errors.New("invalid aes128gcm record")

	// ErrDecryptionFailed is returned when AES-GCM authentication fails or
	// the padding delimiter is missing.
	ErrDecryptionFailed = errors.New("decryption failed")
)

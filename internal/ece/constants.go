package ece

const (
	// AuthSecretSize is the size of the subscriber's auth secret in bytes.
	AuthSecretSize = 16

	// SaltSize is the size of the per-message salt in bytes.
	SaltSize = 16

	// PublicKeySize is the size of an uncompressed P-256 point in bytes.
	PublicKeySize = 65

	// KeySize is the size of the AES-128 content encryption key in bytes.
	KeySize = 16

	// NonceSize is the size of the AES-GCM nonce in bytes.
	NonceSize = 12

	// TagSize is the size of the AES-GCM authentication tag in bytes.
	TagSize = 16

	// HeaderSize is the size of the aes128gcm record header in bytes:
	// salt (16) + record size (4) + key id length (1) + public key (65).
	HeaderSize = SaltSize + 4 + 1 + PublicKeySize

	// Overhead is the minimum expansion of a record over its plaintext:
	// header + padding delimiter + tag.
	Overhead = HeaderSize + 1 + TagSize

	// DefaultRecordSize is the record size push services are required to
	// accept (RFC 8291 section 4). Larger records may be rejected.
	DefaultRecordSize = 4096

	// ikmSize is the size of the HKDF-extracted input keying material.
	ikmSize = 32
)

// HKDF info strings, each terminated by a zero octet per RFC 8291.
var (
	webPushInfo = []byte("WebPush: info\x00")
	cekInfo     = []byte("Content-Encoding: aes128gcm\x00")
	nonceInfo   = []byte("Content-Encoding: nonce\x00")
)

package vapid

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
)

const (
	// PrivateKeySize is the size of a raw P-256 scalar in bytes.
	PrivateKeySize = 32
	// PublicKeySize is the size of an uncompressed P-256 point in bytes.
	PublicKeySize = 65
)

var (
	// ErrInvalidPrivateKey is returned when a private key cannot be decoded
	// or is not a valid P-256 scalar.
	ErrInvalidPrivateKey = errors.New("invalid VAPID private key")

	// ErrInvalidCurve is returned when a parsed key is not on P-256.
	ErrInvalidCurve = errors.New("VAPID key must use the P-256 curve")
)

// SigningKey is a long-lived P-256 ECDSA key pair used to sign VAPID tokens.
// It is immutable once constructed and safe for concurrent use.
type SigningKey struct {
	privateKey *ecdsa.PrivateKey
	// publicKeyB64 is the uncompressed public point, base64url encoded.
	// This is both the k= header parameter and the applicationServerKey.
	publicKeyB64 string
}

// GenerateSigningKey creates a new P-256 signing key pair.
func GenerateSigningKey() (*SigningKey, error) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return newSigningKey(privateKey)
}

// ParseSigningKey parses a private key from its raw 32-byte scalar in
// base64url encoding, the form produced by [SigningKey.PrivateKeyB64].
// The public key is recomputed from the scalar.
func ParseSigningKey(privateKeyB64 string) (*SigningKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if len(raw) != PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPrivateKey, len(raw), PrivateKeySize)
	}

	if _, err := ecdh.P256().NewPrivateKey(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	privateKey := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: elliptic.P256()},
		D:         new(big.Int).SetBytes(raw),
	}
	privateKey.X, privateKey.Y = privateKey.Curve.ScalarBaseMult(raw)

	return newSigningKey(privateKey)
}

// ParseSigningKeyPEM parses a PEM-encoded private key in either SEC 1 or
// PKCS #8 form.
func ParseSigningKeyPEM(pemData []byte) (*SigningKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidPrivateKey)
	}

	privateKey, err := x509.ParseECPrivateKey(block.Bytes)
	if err != nil {
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
		}
		var ok bool
		privateKey, ok = parsed.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an EC key", ErrInvalidPrivateKey)
		}
	}

	if privateKey.Curve != elliptic.P256() {
		return nil, ErrInvalidCurve
	}

	return newSigningKey(privateKey)
}

func newSigningKey(privateKey *ecdsa.PrivateKey) (*SigningKey, error) {
	ecdhPublicKey, err := privateKey.PublicKey.ECDH()
	if err != nil {
		return nil, fmt.Errorf("encode public key: %w", err)
	}
	publicKeyBytes := ecdhPublicKey.Bytes()
	return &SigningKey{
		privateKey:   privateKey,
		publicKeyB64: base64.RawURLEncoding.EncodeToString(publicKeyBytes),
	}, nil
}

// Private returns the underlying ECDSA private key.
func (k *SigningKey) Private() *ecdsa.PrivateKey {
	return k.privateKey
}

// Public returns the underlying ECDSA public key.
func (k *SigningKey) Public() *ecdsa.PublicKey {
	return &k.privateKey.PublicKey
}

// PublicKeyB64 returns the uncompressed public point in base64url encoding.
func (k *SigningKey) PublicKeyB64() string {
	return k.publicKeyB64
}

// PrivateKeyB64 returns the raw 32-byte scalar in base64url encoding,
// suitable for storing in configuration and reloading with ParseSigningKey.
func (k *SigningKey) PrivateKeyB64() (string, error) {
	ecdhPrivateKey, err := k.privateKey.ECDH()
	if err != nil {
		return "", fmt.Errorf("encode private key: %w", err)
	}
	raw := ecdhPrivateKey.Bytes()
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// ExportPEM exports the private key as SEC 1 PEM data.
func (k *SigningKey) ExportPEM() ([]byte, error) {
	der, err := x509.MarshalECPrivateKey(k.privateKey)
	if err != nil {
		return nil, fmt.Errorf("marshal signing key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{
		Type:  "EC PRIVATE KEY",
		Bytes: der,
	}), nil
}

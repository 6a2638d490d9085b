package vapid

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestGenerateSigningKey(t *testing.T) {
	key, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}

	publicKeyBytes, err := base64.RawURLEncoding.DecodeString(key.PublicKeyB64())
	if err != nil {
		t.Fatalf("decode public key: %v", err)
	}
	if len(publicKeyBytes) != PublicKeySize {
		t.Errorf("public key length = %d, want %d", len(publicKeyBytes), PublicKeySize)
	}
	if publicKeyBytes[0] != 0x04 {
		t.Errorf("public key starts with 0x%02x, want 0x04 (uncompressed point)", publicKeyBytes[0])
	}

	privateKeyB64, err := key.PrivateKeyB64()
	if err != nil {
		t.Fatalf("PrivateKeyB64() error = %v", err)
	}
	raw, err := base64.RawURLEncoding.DecodeString(privateKeyB64)
	if err != nil {
		t.Fatalf("decode private key: %v", err)
	}
	if len(raw) != PrivateKeySize {
		t.Errorf("private key length = %d, want %d", len(raw), PrivateKeySize)
	}
}

func TestGenerateSigningKey_Uniqueness(t *testing.T) {
	first, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}
	second, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}

	if first.PublicKeyB64() == second.PublicKeyB64() {
		t.Error("generated keys have identical public keys")
	}
}

func TestParseSigningKey_RoundTrip(t *testing.T) {
	original, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}

	privateKeyB64, err := original.PrivateKeyB64()
	if err != nil {
		t.Fatalf("PrivateKeyB64() error = %v", err)
	}

	parsed, err := ParseSigningKey(privateKeyB64)
	if err != nil {
		t.Fatalf("ParseSigningKey() error = %v", err)
	}

	// The public key is recomputed from the scalar and must match.
	if parsed.PublicKeyB64() != original.PublicKeyB64() {
		t.Error("parsed public key does not match original")
	}
}

func TestParseSigningKey_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"empty", ""},
		{"wrong length", base64.RawURLEncoding.EncodeToString(make([]byte, 16))},
		{"zero scalar", base64.RawURLEncoding.EncodeToString(make([]byte, 32))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSigningKey(tt.key); !errors.Is(err, ErrInvalidPrivateKey) {
				t.Errorf("expected ErrInvalidPrivateKey, got %v", err)
			}
		})
	}
}

func TestParseSigningKeyPEM_RoundTrip(t *testing.T) {
	original, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}

	pemData, err := original.ExportPEM()
	if err != nil {
		t.Fatalf("ExportPEM() error = %v", err)
	}

	parsed, err := ParseSigningKeyPEM(pemData)
	if err != nil {
		t.Fatalf("ParseSigningKeyPEM() error = %v", err)
	}

	if parsed.PublicKeyB64() != original.PublicKeyB64() {
		t.Error("parsed public key does not match original")
	}
}

func TestParseSigningKeyPEM_Invalid(t *testing.T) {
	if _, err := ParseSigningKeyPEM([]byte("not pem at all")); !errors.Is(err, ErrInvalidPrivateKey) {
		t.Errorf("expected ErrInvalidPrivateKey, got %v", err)
	}
}

package vapid

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		wantErr bool
	}{
		{"mailto", "mailto:ops@example.com", false},
		{"https", "https://example.com", false},
		{"http", "http://example.com", true},
		{"bare email", "ops@example.com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubject(tt.subject)
			if tt.wantErr && !errors.Is(err, ErrInvalidSubject) {
				t.Errorf("expected ErrInvalidSubject, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateSubject() error = %v", err)
			}
		})
	}
}

func TestAudience(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
		wantErr  bool
	}{
		{"fcm", "https://fcm.googleapis.com/fcm/send/abc123", "https://fcm.googleapis.com", false},
		{"mozilla", "https://updates.push.services.mozilla.com/wpush/v2/token", "https://updates.push.services.mozilla.com", false},
		{"with port", "https://push.example.net:8443/p/1", "https://push.example.net:8443", false},
		{"no scheme", "push.example.net/p/1", "", true},
		{"garbage", "://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Audience(tt.endpoint)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEndpoint) {
					t.Errorf("expected ErrInvalidEndpoint, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Audience() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Audience() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSign_VerifiesUnderSigningKey(t *testing.T) {
	key, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}

	now := time.Now()
	token, err := Sign(key, "https://push.example.net", "mailto:ops@example.com", time.Hour, now)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return key.Public(), nil
	}, jwt.WithValidMethods([]string{"ES256"}))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token did not verify under its own public key")
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if aud, _ := claims["aud"].(string); aud != "https://push.example.net" {
		t.Errorf("aud = %q, want %q", aud, "https://push.example.net")
	}
	if sub, _ := claims["sub"].(string); sub != "mailto:ops@example.com" {
		t.Errorf("sub = %q, want %q", sub, "mailto:ops@example.com")
	}
	exp, _ := claims["exp"].(float64)
	if int64(exp) != now.Add(time.Hour).Unix() {
		t.Errorf("exp = %d, want %d", int64(exp), now.Add(time.Hour).Unix())
	}
}

func TestSign_FailsUnderOtherKey(t *testing.T) {
	key, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}
	otherKey, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}

	token, err := Sign(key, "https://push.example.net", "mailto:ops@example.com", time.Hour, time.Time{})
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	_, err = jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return otherKey.Public(), nil
	}, jwt.WithValidMethods([]string{"ES256"}))
	if err == nil {
		t.Fatal("token verified under an unrelated public key")
	}
}

func TestSign_InvalidSubject(t *testing.T) {
	key, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}

	if _, err := Sign(key, "https://push.example.net", "ops@example.com", time.Hour, time.Time{}); !errors.Is(err, ErrInvalidSubject) {
		t.Errorf("expected ErrInvalidSubject, got %v", err)
	}
}

func TestSign_DefaultExpiry(t *testing.T) {
	key, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}

	now := time.Now()
	token, err := Sign(key, "https://push.example.net", "mailto:ops@example.com", 0, now)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return key.Public(), nil
	}, jwt.WithValidMethods([]string{"ES256"}))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	exp, _ := claims["exp"].(float64)
	if int64(exp) != now.Add(DefaultTokenExpiry).Unix() {
		t.Errorf("exp = %d, want now + default expiry", int64(exp))
	}
}

func TestAuthorizationHeader(t *testing.T) {
	key, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}

	header, err := AuthorizationHeader(key, "https://push.example.net/p/1", "mailto:ops@example.com", time.Hour, time.Time{})
	if err != nil {
		t.Fatalf("AuthorizationHeader() error = %v", err)
	}

	if !strings.HasPrefix(header, "vapid t=") {
		t.Errorf("header %q does not start with \"vapid t=\"", header)
	}
	if !strings.Contains(header, ", k="+key.PublicKeyB64()) {
		t.Error("header does not carry the sender public key")
	}

	// The token itself must be a compact three-part JWT.
	token := strings.TrimPrefix(strings.Split(header, ",")[0], "vapid t=")
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Errorf("token has %d parts, want 3", len(parts))
	}
}

func TestSign_Randomized(t *testing.T) {
	// ECDSA signing is randomized; two tokens over identical claims should
	// differ, and verifiers must not assume determinism.
	key, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey() error = %v", err)
	}

	now := time.Now()
	first, err := Sign(key, "https://push.example.net", "mailto:ops@example.com", time.Hour, now)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	second, err := Sign(key, "https://push.example.net", "mailto:ops@example.com", time.Hour, now)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	if first == second {
		t.Error("two signatures over identical claims are identical")
	}
}

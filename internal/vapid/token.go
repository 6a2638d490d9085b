package vapid

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenExpiry is how long signed tokens remain valid. RFC 8292 caps
// validity at 24 hours; staying well under that avoids rejections from
// clock skew between sender and push service.
const DefaultTokenExpiry = 12 * time.Hour

var (
	// ErrInvalidSubject is returned when the subject is not a mailto: or
	// https:// URI.
	ErrInvalidSubject = errors.New("subject must start with \"mailto:\" or \"https://\"")

	// ErrInvalidEndpoint is returned when the push endpoint URL cannot be
	// reduced to an origin.
	ErrInvalidEndpoint = errors.New("invalid push endpoint")
)

// ValidateSubject checks that a sender identity is a mailto: or https:// URI.
func ValidateSubject(subject string) error {
	if !strings.HasPrefix(subject, "mailto:") && !strings.HasPrefix(subject, "https://") {
		return fmt.Errorf("%w: %q", ErrInvalidSubject, subject)
	}
	return nil
}

// Audience derives the push service origin (scheme://host) from an endpoint
// URL, the aud claim of the token.
func Audience(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}
	return u.Scheme + "://" + u.Host, nil
}

// Sign produces the compact ES256 token for one delivery: audience is the
// push service origin, subject identifies the sender, and now+expiry bounds
// the token's validity. now is injectable so expiry is testable; pass
// time.Time{} to use the wall clock.
func Sign(key *SigningKey, audience, subject string, expiry time.Duration, now time.Time) (string, error) {
	if err := ValidateSubject(subject); err != nil {
		return "", err
	}
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	if now.IsZero() {
		now = time.Now()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"aud": audience,
		"exp": now.Add(expiry).Unix(),
		"sub": subject,
	})

	signed, err := token.SignedString(key.Private())
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// AuthorizationHeader builds the vapid-scheme Authorization value carrying
// the signed token and the sender's raw public key.
func AuthorizationHeader(key *SigningKey, endpoint, subject string, expiry time.Duration, now time.Time) (string, error) {
	audience, err := Audience(endpoint)
	if err != nil {
		return "", err
	}

	token, err := Sign(key, audience, subject, expiry, now)
	if err != nil {
		return "", err
	}

	return "vapid t=" + token + ", k=" + key.PublicKeyB64(), nil
}

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

var (
	// ErrEmptyToken is returned for a missing access token
	ErrEmptyToken = errors.New("access token is empty")
	// ErrMissingExpiry is returned for a token without exp claim
	ErrMissingExpiry = errors.New("access token has no exp claim")
)

// ParseToken decodes raw access token and returns it with its expiry.
//
// Any error means the token is not usable and has to be refreshed: empty, malformed,
// claims that cannot be decoded, no exp claim, or expiring within margin of now.
// The signature is not verified; the server remains the authority on it.
func ParseToken(raw string, now time.Time, margin time.Duration) (*oauth2.Token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyToken
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("failed to get expiration time: %w", err)
	}
	if expiry == nil {
		return nil, ErrMissingExpiry
	}
	if !now.Add(margin).Before(expiry.Time) {
		return nil, fmt.Errorf("%w: expired at %s", jwt.ErrTokenExpired, expiry.Time.UTC().Format(time.RFC3339))
	}
	return &oauth2.Token{
		TokenType:   "Bearer",
		AccessToken: raw,
		Expiry:      expiry.Time,
	}, nil
}

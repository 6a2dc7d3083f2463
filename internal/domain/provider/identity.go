package provider

import (
	"context"
	"time"
)

// Identity is the external identity provider's view of a verified token.
type Identity struct {
	Subject       string
	Email         string
	EmailVerified bool
}

// TokenVerifier abstracts the external identity verification boundary.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// RateLimiter counts hits per key within a rolling window. Hit records one
// event and returns the count observed inside the window, including it.
type RateLimiter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// GeoResolver maps an IP address to an ISO 3166-1 alpha-2 country code.
// Implementations return an empty string when the address cannot be resolved.
type GeoResolver interface {
	CountryCode(ip string) string
}

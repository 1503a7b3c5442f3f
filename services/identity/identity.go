// Package identity issues best-effort anonymous identities. It is not an
// access-control layer: callers continue without an identity on any failure.
package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid identity token")

// Identity is an anonymous session identity.
type Identity struct {
	UID       string    `json:"uid"`
	Token     string    `json:"token"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

type Provider interface {
	SignInAnonymously(ctx context.Context) (*Identity, error)
	// Verify returns the uid a token was issued for.
	Verify(ctx context.Context, token string) (string, error)
}

// Fingerprint is a log-safe digest of a token.
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

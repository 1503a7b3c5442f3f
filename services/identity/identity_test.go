package identity

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTProvider_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p := NewJWTProvider("test-secret", time.Hour)

	id, err := p.SignInAnonymously(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id.UID, "anon-"))
	assert.Equal(t, "jwt", id.Provider)

	uid, err := p.Verify(ctx, id.Token)
	require.NoError(t, err)
	assert.Equal(t, id.UID, uid)

	other, err := p.SignInAnonymously(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, id.UID, other.UID)
}

func TestJWTProvider_Rejects(t *testing.T) {
	ctx := context.Background()
	p := NewJWTProvider("test-secret", time.Hour)

	foreign, err := NewJWTProvider("another-secret", time.Hour).SignInAnonymously(ctx)
	require.NoError(t, err)
	_, err = p.Verify(ctx, foreign.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	p.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := p.SignInAnonymously(ctx)
	require.NoError(t, err)
	p.now = time.Now
	_, err = p.Verify(ctx, expired.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"anon": true}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = p.Verify(ctx, noSub)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = p.Verify(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTProvider_RandomSecretWhenUnset(t *testing.T) {
	p := NewJWTProvider("", 0)
	assert.NotEmpty(t, p.secret)
	assert.Equal(t, defaultTokenTTL, p.ttl)
}

func TestFingerprint(t *testing.T) {
	assert.Len(t, Fingerprint("abc"), 16)
	assert.Equal(t, Fingerprint("abc"), Fingerprint("abc"))
	assert.NotEqual(t, Fingerprint("abc"), Fingerprint("abd"))
}

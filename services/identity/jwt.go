package identity

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const defaultTokenTTL = 24 * time.Hour

// JWTProvider signs HS256 tokens for random anonymous uids.
type JWTProvider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTProvider falls back to a per-process random secret when secret is
// empty; tokens then stop verifying after a restart.
func NewJWTProvider(secret string, ttl time.Duration) *JWTProvider {
	if secret == "" {
		secret = uuid.NewString()
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTProvider{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (p *JWTProvider) SignInAnonymously(ctx context.Context) (*Identity, error) {
	now := p.now()
	uid := "anon-" + uuid.NewString()
	expires := now.Add(p.ttl)
	claims := jwt.MapClaims{
		"sub":  uid,
		"anon": true,
		"iat":  now.Unix(),
		"exp":  expires.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, err
	}
	return &Identity{UID: uid, Token: token, Provider: "jwt", ExpiresAt: expires.UTC()}, nil
}

func (p *JWTProvider) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

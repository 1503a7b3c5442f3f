package identity

import (
	"context"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
)

// Firebase custom tokens are valid for one hour.
const customTokenTTL = time.Hour

// FirebaseProvider mints custom tokens for random uids. Clients exchange
// them for ID tokens, which Verify accepts.
type FirebaseProvider struct {
	client *auth.Client
}

func NewFirebaseProvider(ctx context.Context, app *firebase.App) (*FirebaseProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseProvider{client: client}, nil
}

func (p *FirebaseProvider) SignInAnonymously(ctx context.Context) (*Identity, error) {
	uid := "anon-" + uuid.NewString()
	token, err := p.client.CustomTokenWithClaims(ctx, uid, map[string]interface{}{"anon": true})
	if err != nil {
		return nil, err
	}
	return &Identity{
		UID:       uid,
		Token:     token,
		Provider:  "firebase",
		ExpiresAt: time.Now().Add(customTokenTTL).UTC(),
	}, nil
}

func (p *FirebaseProvider) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", ErrInvalidToken
	}
	return token.UID, nil
}

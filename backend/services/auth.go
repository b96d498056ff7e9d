package services

import (
	"context"
	"strings"

	"skillshub/backend/session"
)

// AuthGateway resolves the acting identity of a request and manages
// session issuance and revocation.
type AuthGateway struct {
	sessions session.Registry
}

func NewAuthGateway(registry session.Registry) *AuthGateway {
	return &AuthGateway{sessions: registry}
}

// ResolveIdentity returns the user id a request acts as. A verified
// session always wins over a caller-asserted id, even when the two
// disagree; without a valid session the asserted id is taken at face
// value. An empty result means the request is anonymous and the endpoint
// decides whether that is acceptable.
func (g *AuthGateway) ResolveIdentity(ctx context.Context, sessionToken, assertedUserID string) (string, error) {
	if sessionToken != "" {
		userID, err := g.sessions.Verify(ctx, sessionToken)
		if err != nil {
			return "", err
		}
		if userID != "" {
			return userID, nil
		}
	}
	if strings.TrimSpace(assertedUserID) != "" {
		return assertedUserID, nil
	}
	return "", nil
}

// SignIn issues a fresh session token for the user. Binding the token to
// a cookie is the HTTP boundary's job.
func (g *AuthGateway) SignIn(ctx context.Context, userID string) (string, error) {
	return g.sessions.Create(ctx, userID)
}

// SignOut revokes the token. Unknown tokens revoke silently.
func (g *AuthGateway) SignOut(ctx context.Context, token string) error {
	return g.sessions.Delete(ctx, token)
}

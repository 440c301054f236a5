package auth

import (
	"context"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkuser "github.com/clerk/clerk-sdk-go/v2/user"

	"github.com/pressmill/console/internal/model"
)

// ClerkProvider resolves the current user through Clerk session claims
// carried on the request context.
type ClerkProvider struct{}

func NewClerkProvider(secretKey string) *ClerkProvider {
	clerk.SetKey(secretKey)
	return &ClerkProvider{}
}

func (p *ClerkProvider) CurrentUserID(ctx context.Context) (model.UserID, error) {
	claims, ok := clerk.SessionClaimsFromContext(ctx)
	if !ok {
		return "", ErrNoSession
	}

	usr, err := clerkuser.Get(ctx, claims.Subject)
	if err != nil {
		return "", err
	}

	return model.UserID(usr.ID), nil
}

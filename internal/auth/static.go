package auth

import (
	"context"

	"github.com/pressmill/console/internal/model"
)

// StaticProvider always reports the same user. Used for headless runs
// and tests, where no identity service is reachable.
type StaticProvider struct {
	userID model.UserID
}

func NewStaticProvider(userID model.UserID) *StaticProvider {
	return &StaticProvider{userID: userID}
}

func (p *StaticProvider) CurrentUserID(ctx context.Context) (model.UserID, error) {
	if p.userID == "" {
		return "", ErrNoSession
	}
	return p.userID, nil
}

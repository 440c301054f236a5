// Package auth resolves the identity of the currently signed-in user.
// Provider internals (session management, sign-in flows) belong to the
// external identity service; this package only asks it who the user is.
package auth

import (
	"context"
	"errors"

	"github.com/pressmill/console/internal/model"
)

// ErrNoSession is returned when no authenticated session is present.
var ErrNoSession = errors.New("auth: no active session")

type Provider interface {
	// CurrentUserID returns the opaque identifier of the signed-in user,
	// or ErrNoSession when nobody is signed in.
	CurrentUserID(ctx context.Context) (model.UserID, error)
}

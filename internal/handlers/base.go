package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/gdg-garage/camp-profile-api/internal/auth"
	"github.com/gdg-garage/camp-profile-api/internal/models"
	"github.com/gdg-garage/camp-profile-api/internal/store"
	"github.com/gdg-garage/camp-profile-api/internal/viewer"
)

// Deps carries what every handler needs to identify the caller and pick the
// camp year.
type Deps struct {
	Auth  *auth.AuthHandler
	Store *store.Store
	Log   *zap.Logger
	// CurrentYear overrides the newest camp in the database when non-zero.
	CurrentYear int
}

// capabilities resolves what the caller may do with subjectID's profile.
func (d Deps) capabilities(ctx context.Context, subjectID uint) (viewer.Capabilities, *models.User, error) {
	user, err := d.Auth.Viewer(ctx)
	if err != nil {
		return viewer.Anonymous, nil, err
	}
	return viewer.Resolve(user, subjectID), user, nil
}

// signedIn is capabilities for operations that need a session; anonymous
// callers get auth.ErrUnauthenticated.
func (d Deps) signedIn(ctx context.Context, subjectID uint) (viewer.Capabilities, *models.User, error) {
	caps, user, err := d.capabilities(ctx, subjectID)
	if err == nil && user == nil {
		err = auth.ErrUnauthenticated
	}
	return caps, user, err
}

// year returns requested when set, otherwise the current camp year.
func (d Deps) year(ctx context.Context, requested int) (int, error) {
	if requested > 0 {
		return requested, nil
	}
	return d.Store.CurrentYear(ctx, d.CurrentYear)
}

func (d Deps) fail(op string, err error) error {
	return toHumaError(d.Log, op, err)
}

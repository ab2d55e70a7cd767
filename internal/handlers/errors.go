package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/gdg-garage/camp-profile-api/internal/apperr"
	"github.com/gdg-garage/camp-profile-api/internal/auth"
	"github.com/gdg-garage/camp-profile-api/internal/observability"
)

// toHumaError maps domain errors onto HTTP responses. Anything unexpected is
// logged, reported and hidden behind a 500.
func toHumaError(log *zap.Logger, op string, err error) error {
	var statusErr huma.StatusError
	switch {
	case errors.As(err, &statusErr):
		return err
	case errors.Is(err, auth.ErrUnauthenticated):
		return huma.Error401Unauthorized("Unauthorized")
	case errors.Is(err, apperr.ErrPermissionDenied):
		return huma.Error403Forbidden("Permission denied")
	case errors.Is(err, apperr.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, apperr.ErrConcurrentModification):
		return huma.Error409Conflict("The participation was changed by someone else, reload and try again")
	case errors.Is(err, apperr.ErrConflict):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, apperr.ErrInvalidTransition):
		return huma.Error422UnprocessableEntity(err.Error())
	}

	log.Error("request failed", zap.String("op", op), zap.Error(err))
	observability.CaptureErr(err)
	return huma.Error500InternalServerError("Internal server error")
}

// Package apperr holds the error taxonomy shared by the qualification,
// history and profile packages. Callers wrap these with fmt.Errorf and match
// them with errors.Is at the request boundary.
package apperr

import "errors"

var (
	// ErrPermissionDenied means the viewer lacks the capability required for
	// an operation or a restricted resource.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidTransition means the requested qualification action is not
	// defined from the participation's current status.
	ErrInvalidTransition = errors.New("invalid qualification transition")

	// ErrConcurrentModification means the participation changed between the
	// moment the caller observed it and the write.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrNotFound means the participant, year, participation or workshop
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the operation cannot proceed because other records
	// still depend on the target.
	ErrConflict = errors.New("conflict")
)

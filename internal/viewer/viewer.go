// Package viewer computes what the current requester may do with a
// participant's profile. The Capabilities value is resolved once per request
// and passed to every decision that depends on it.
package viewer

import (
	"github.com/gdg-garage/camp-profile-api/internal/models"
)

type Capabilities struct {
	// Authenticated is false for anonymous requests.
	Authenticated bool
	// IsOwner is true when the viewer is the profile's participant.
	IsOwner bool
	// IsAdmin marks superusers.
	IsAdmin bool
	// CanSeeAllUsers grants access to other participants' history.
	CanSeeAllUsers bool
	// CanSeeAllWorkshops grants links to non-public workshop pages.
	CanSeeAllWorkshops bool
	// CanManageQualification allows status transitions.
	CanManageQualification bool
	// CanUseSecretNotes mirrors the use_secret_notes permission. See
	// CanSeeSecretNotes for the effective rule.
	CanUseSecretNotes bool
}

// Anonymous is the capability set of a request without identity.
var Anonymous = Capabilities{}

// Resolve derives the capabilities of viewer against the profile of
// subjectID. A nil viewer is anonymous.
func Resolve(viewer *models.User, subjectID uint) Capabilities {
	if viewer == nil {
		return Anonymous
	}
	canQualify := viewer.HasPerm(models.PermChangeCampParticipant)
	return Capabilities{
		Authenticated:          true,
		IsOwner:                viewer.ID == subjectID,
		IsAdmin:                viewer.IsAdmin,
		CanSeeAllUsers:         viewer.HasPerm(models.PermSeeAllUsers),
		CanSeeAllWorkshops:     canQualify || viewer.HasPerm(models.PermSeeAllWorkshops),
		CanManageQualification: canQualify,
		CanUseSecretNotes:      viewer.HasPerm(models.PermUseSecretNotes),
	}
}

// CanSeePrivateData covers email and cover letter.
func (c Capabilities) CanSeePrivateData() bool {
	return c.IsOwner || c.IsAdmin
}

// CanSeeSecretNotes reports whether administrative notes are read or written.
// The permission alone is not enough without owner or admin standing.
func (c Capabilities) CanSeeSecretNotes() bool {
	return c.CanUseSecretNotes && c.CanSeePrivateData()
}

// CanSeeHistory reports whether multi-year qualification history is shown.
func (c Capabilities) CanSeeHistory() bool {
	return c.IsOwner || c.IsAdmin || c.CanSeeAllUsers || c.CanSeeAllWorkshops
}

// CanSeeHiddenWorkshops reports whether workshops outside the public program
// are listed at all.
func (c Capabilities) CanSeeHiddenWorkshops() bool {
	return c.IsOwner || c.CanSeeAllWorkshops
}

// Kind is a short label used for metrics and logs.
func (c Capabilities) Kind() string {
	switch {
	case c.IsAdmin:
		return "admin"
	case c.IsOwner:
		return "owner"
	case c.CanSeeAllWorkshops || c.CanSeeAllUsers || c.CanManageQualification:
		return "staff"
	case c.Authenticated:
		return "user"
	}
	return "anonymous"
}

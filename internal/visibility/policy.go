// Package visibility decides how a workshop is presented to a viewer on a
// profile page.
package visibility

import (
	"github.com/gdg-garage/camp-profile-api/internal/links"
	"github.com/gdg-garage/camp-profile-api/internal/models"
	"github.com/gdg-garage/camp-profile-api/internal/viewer"
)

// TitleMode is how the workshop title is rendered.
type TitleMode string

const (
	// TitleStruck is a struck-through title linked to the edit view.
	TitleStruck TitleMode = "struck"
	// TitlePublicLink links to the public workshop page.
	TitlePublicLink TitleMode = "public_link"
	// TitleEditLink links to the edit view of a workshop whose page is private.
	TitleEditLink TitleMode = "edit_link"
	// TitlePlain is unlinked text.
	TitlePlain TitleMode = "plain"
)

// Badge styles.
const (
	StyleWarning   = "warning"
	StyleInfo      = "info"
	StyleDanger    = "danger"
	StyleSecondary = "secondary"
)

type Badge struct {
	Status models.WorkshopStatus
	Style  string
}

type Decision struct {
	Title TitleMode
	// URL is empty for TitlePlain.
	URL             string
	ShowPageContent bool
	// Badge is nil when no status badge is rendered.
	Badge *Badge
}

// Decide evaluates the title rules top to bottom, first match wins.
func Decide(w models.Workshop, caps viewer.Capabilities, r links.Resolver) Decision {
	d := Decision{Badge: BadgeFor(w.Status)}

	switch {
	case !w.IsPubliclyVisible():
		d.Title = TitleStruck
		d.URL = r.WorkshopEdit(w.Year, w.Name)
	case w.PageContentIsPublic:
		d.Title = TitlePublicLink
		d.URL = r.WorkshopPage(w.Year, w.Name)
	case caps.CanSeeAllWorkshops:
		d.Title = TitleEditLink
		d.URL = r.WorkshopEdit(w.Year, w.Name)
	default:
		d.Title = TitlePlain
	}

	d.ShowPageContent = (w.IsPubliclyVisible() && w.PageContentIsPublic) || caps.CanSeeAllWorkshops
	return d
}

// BadgeFor returns the status badge of a workshop, or nil for cancelled ones.
func BadgeFor(status models.WorkshopStatus) *Badge {
	if status == models.WorkshopCancelled {
		return nil
	}
	return &Badge{Status: status, Style: StyleFor(status)}
}

func StyleFor(status models.WorkshopStatus) string {
	switch status {
	case models.WorkshopProposed:
		return StyleWarning
	case models.WorkshopAccepted:
		return StyleInfo
	case models.WorkshopRejected:
		return StyleDanger
	}
	return StyleSecondary
}

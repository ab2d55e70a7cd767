package visibility

import (
	"testing"

	"github.com/gdg-garage/camp-profile-api/internal/links"
	"github.com/gdg-garage/camp-profile-api/internal/models"
	"github.com/gdg-garage/camp-profile-api/internal/viewer"
)

var (
	site       = links.NewSite("")
	privileged = viewer.Capabilities{Authenticated: true, CanSeeAllWorkshops: true}
	ordinary   = viewer.Capabilities{Authenticated: true}
)

func workshop(status models.WorkshopStatus, pagePublic bool) models.Workshop {
	return models.Workshop{Year: 2024, Name: "graphs", Title: "Graphs", Status: status, PageContentIsPublic: pagePublic}
}

func TestDecide_NotPubliclyVisibleIsAlwaysStruck(t *testing.T) {
	for _, status := range []models.WorkshopStatus{models.WorkshopProposed, models.WorkshopRejected, "other"} {
		for _, pagePublic := range []bool{true, false} {
			for _, caps := range []viewer.Capabilities{viewer.Anonymous, ordinary, privileged} {
				d := Decide(workshop(status, pagePublic), caps, site)
				if d.Title != TitleStruck {
					t.Errorf("status=%q pagePublic=%v caps=%+v: got %s", status, pagePublic, caps, d.Title)
				}
				if d.URL != "/2024/graphs/edit/" {
					t.Errorf("struck title must link to edit view, got %q", d.URL)
				}
			}
		}
	}
}

func TestDecide_PublicPage(t *testing.T) {
	for _, caps := range []viewer.Capabilities{viewer.Anonymous, privileged} {
		d := Decide(workshop(models.WorkshopAccepted, true), caps, site)
		if d.Title != TitlePublicLink || d.URL != "/2024/graphs/" {
			t.Errorf("expected public link, got %+v", d)
		}
		if !d.ShowPageContent {
			t.Error("public page content should be shown")
		}
	}
}

func TestDecide_PrivatePage(t *testing.T) {
	w := workshop(models.WorkshopAccepted, false)

	t.Run("NonPrivileged", func(t *testing.T) {
		d := Decide(w, ordinary, site)
		if d.Title != TitlePlain || d.URL != "" {
			t.Errorf("expected plain text, got %+v", d)
		}
		if d.ShowPageContent {
			t.Error("private page content must not be shown")
		}
	})

	t.Run("Privileged", func(t *testing.T) {
		d := Decide(w, privileged, site)
		if d.Title != TitleEditLink || d.URL != "/2024/graphs/edit/" {
			t.Errorf("expected edit link, got %+v", d)
		}
		if !d.ShowPageContent {
			t.Error("privileged viewer sees page content")
		}
	})
}

func TestDecide_CancelledWorkshopIsVisibleWithoutBadge(t *testing.T) {
	d := Decide(workshop(models.WorkshopCancelled, true), ordinary, site)
	if d.Title != TitlePublicLink {
		t.Errorf("cancelled workshops stay in the public program, got %s", d.Title)
	}
	if d.Badge != nil {
		t.Errorf("cancelled workshop must not carry a badge, got %+v", d.Badge)
	}
}

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		status models.WorkshopStatus
		style  string
	}{
		{models.WorkshopProposed, StyleWarning},
		{models.WorkshopAccepted, StyleInfo},
		{models.WorkshopRejected, StyleDanger},
		{"on_hold", StyleSecondary},
	}
	for _, tt := range tests {
		b := BadgeFor(tt.status)
		if b == nil || b.Style != tt.style {
			t.Errorf("BadgeFor(%q) = %+v, want style %s", tt.status, b, tt.style)
		}
	}
}

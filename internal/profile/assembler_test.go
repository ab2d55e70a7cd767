package profile

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/gdg-garage/camp-profile-api/internal/apperr"
	"github.com/gdg-garage/camp-profile-api/internal/links"
	"github.com/gdg-garage/camp-profile-api/internal/models"
	"github.com/gdg-garage/camp-profile-api/internal/qualification"
	"github.com/gdg-garage/camp-profile-api/internal/richtext"
	"github.com/gdg-garage/camp-profile-api/internal/store"
	"github.com/gdg-garage/camp-profile-api/internal/testutil/testdb"
	"github.com/gdg-garage/camp-profile-api/internal/viewer"
	"github.com/gdg-garage/camp-profile-api/internal/visibility"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	assembler *Assembler
	user      models.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testdb.New(t)

	for _, y := range []int{2022, 2023, 2024} {
		db.Create(&models.Camp{Year: y})
	}

	user := models.User{
		FirstName:         "Ala",
		LastName:          "Kot",
		Email:             "ala@example.com",
		Gender:            models.GenderFemale,
		School:            "XIV LO",
		MaturaExamYear:    ptr(2026),
		HowDoYouKnowAbout: "friends",
		ProfilePage:       `<p>About me</p><script>x()</script>`,
		SecretNotes:       "owes a book",
	}
	db.Create(&user)

	// Lectured workshops: one accepted with a private page, one rejected.
	db.Create(&models.Workshop{Year: 2023, Name: "sets", Title: "Sets", LecturerID: user.ID, Status: models.WorkshopAccepted})
	db.Create(&models.Workshop{Year: 2024, Name: "draft", Title: "Draft", LecturerID: user.ID, Status: models.WorkshopRejected})

	graphs := models.Workshop{Year: 2024, Name: "graphs", Title: "Graphs", Status: models.WorkshopAccepted, PageContentIsPublic: true, IsQualifying: true, MaxPoints: ptr(10.0), QualificationThreshold: ptr(5.0)}
	db.Create(&graphs)

	cp2024 := models.CampParticipation{UserID: user.ID, Year: 2024, CoverLetter: "<p>Please take me</p>"}
	db.Create(&cp2024)
	db.Create(&models.CampParticipation{UserID: user.ID, Year: 2022, Status: qualification.Accepted})
	db.Create(&models.WorkshopParticipation{CampParticipationID: cp2024.ID, WorkshopID: graphs.ID, QualificationResult: ptr(6.0)})

	return fixture{
		assembler: NewAssembler(store.New(db), links.NewSite(""), richtext.New()),
		user:      user,
	}
}

func TestAssemble_StrangerNeverSeesPrivateData(t *testing.T) {
	f := newFixture(t)

	stranger := viewer.Capabilities{Authenticated: true}
	qualifier := viewer.Capabilities{Authenticated: true, CanManageQualification: true, CanSeeAllWorkshops: true}
	notesHolder := viewer.Capabilities{Authenticated: true, CanUseSecretNotes: true}

	for _, caps := range []viewer.Capabilities{viewer.Anonymous, stranger, qualifier, notesHolder} {
		v, err := f.assembler.Assemble(context.Background(), f.user.ID, caps, 2024)
		if err != nil {
			t.Fatalf("Assemble returned error: %v", err)
		}
		if v.Participant.Email != nil || v.CoverLetter != nil {
			t.Errorf("caps %+v: email or cover letter leaked", caps)
		}
		if v.SecretNotes != nil {
			t.Errorf("caps %+v: notes leaked", caps)
		}

		body, _ := json.Marshal(v)
		if strings.Contains(string(body), "ala@example.com") || strings.Contains(string(body), "Please take me") || strings.Contains(string(body), "owes a book") {
			t.Errorf("caps %+v: serialized view contains private data: %s", caps, body)
		}
	}
}

func TestAssemble_Anonymous(t *testing.T) {
	f := newFixture(t)

	v, err := f.assembler.Assemble(context.Background(), f.user.ID, viewer.Anonymous, 2024)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if v.Participant.Name != "Ala Kot" {
		t.Errorf("unexpected name %q", v.Participant.Name)
	}
	if strings.Contains(v.AboutPage, "script") || !strings.Contains(v.AboutPage, "About me") {
		t.Errorf("about page not sanitized: %q", v.AboutPage)
	}
	if v.History != nil || v.Qualification != nil || v.OwnerNotice != "" {
		t.Error("anonymous viewer sees only public data")
	}
	if v.Participant.School != nil {
		t.Error("school is detailed data")
	}

	// Only the accepted workshop, rendered as plain text because its page is private.
	if len(v.LecturerWorkshops) != 1 {
		t.Fatalf("expected 1 lecturer workshop, got %d", len(v.LecturerWorkshops))
	}
	w := v.LecturerWorkshops[0]
	if w.Name != "sets" || w.TitleMode != visibility.TitlePlain || w.URL != "" {
		t.Errorf("unexpected workshop entry %+v", w)
	}
}

func TestAssemble_Owner(t *testing.T) {
	f := newFixture(t)

	caps := viewer.Capabilities{Authenticated: true, IsOwner: true}
	v, err := f.assembler.Assemble(context.Background(), f.user.ID, caps, 2024)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if v.OwnerNotice == "" {
		t.Error("owner notice missing")
	}
	if v.Participant.Email == nil || *v.Participant.Email != "ala@example.com" {
		t.Error("owner sees their email")
	}
	if v.CoverLetter == nil || *v.CoverLetter != "<p>Please take me</p>" {
		t.Errorf("owner sees their cover letter, got %v", v.CoverLetter)
	}
	if v.SecretNotes != nil {
		t.Error("secret notes are not shown to the owner")
	}
	if v.Qualification != nil {
		t.Error("owner cannot qualify")
	}

	if len(v.LecturerWorkshops) != 2 {
		t.Fatalf("owner sees all lectured workshops, got %d", len(v.LecturerWorkshops))
	}
	draft := v.LecturerWorkshops[0]
	if draft.Name != "draft" || draft.TitleMode != visibility.TitleStruck || draft.URL != "/2024/draft/edit/" {
		t.Errorf("rejected workshop should be struck through, got %+v", draft)
	}
	if draft.Badge == nil || draft.Badge.Style != visibility.StyleDanger {
		t.Errorf("unexpected badge %+v", draft.Badge)
	}

	if len(v.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(v.History))
	}
	cur, prev := v.History[0], v.History[1]
	if cur.Year != 2024 || cur.Collapsed {
		t.Errorf("unexpected current entry %+v", cur)
	}
	if len(cur.Results) != 1 || cur.Results[0].Percent == nil || *cur.Results[0].Percent != 60 {
		t.Fatalf("unexpected results %+v", cur.Results)
	}
	if cur.Results[0].Note != "zakwalifikowana" {
		t.Errorf("expected feminine qualified note, got %q", cur.Results[0].Note)
	}
	if cur.Results[0].Workshop.TitleMode != visibility.TitlePublicLink {
		t.Errorf("public workshop page should be linked, got %s", cur.Results[0].Workshop.TitleMode)
	}
	if prev.Year != 2022 || !prev.Collapsed || prev.Notice == "" || prev.Results != nil {
		t.Errorf("unexpected previous entry %+v", prev)
	}
	if prev.StatusLabel != "Zakwalifikowana" {
		t.Errorf("unexpected status label %q", prev.StatusLabel)
	}
}

func TestAssemble_QualificationPanel(t *testing.T) {
	f := newFixture(t)

	caps := viewer.Capabilities{Authenticated: true, CanManageQualification: true, CanSeeAllWorkshops: true}
	v, err := f.assembler.Assemble(context.Background(), f.user.ID, caps, 2024)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if v.Qualification == nil {
		t.Fatal("expected qualification panel")
	}
	var actions []string
	for _, a := range v.Qualification.Actions {
		actions = append(actions, a.Action)
	}
	if !slices.Equal(actions, []string{"accept", "reject"}) {
		t.Errorf("pending participation offers accept/reject only, got %v", actions)
	}

	// A year without participation has no panel.
	v, err = f.assembler.Assemble(context.Background(), f.user.ID, caps, 2023)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if v.Qualification != nil {
		t.Error("no participation in 2023")
	}
}

func TestAssemble_Admin(t *testing.T) {
	f := newFixture(t)

	caps := viewer.Capabilities{Authenticated: true, IsAdmin: true, CanManageQualification: true, CanSeeAllWorkshops: true, CanUseSecretNotes: true, CanSeeAllUsers: true}
	v, err := f.assembler.Assemble(context.Background(), f.user.ID, caps, 2024)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if v.Participant.Email == nil || v.CoverLetter == nil || v.SecretNotes == nil {
		t.Error("admin sees private data and notes")
	}
	if v.OwnerNotice != "" {
		t.Error("owner notice is for the owner only")
	}
	sets := v.LecturerWorkshops[1]
	if sets.TitleMode != visibility.TitleEditLink {
		t.Errorf("privileged viewer gets an edit link, got %s", sets.TitleMode)
	}
}

func TestAssemble_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.assembler.Assemble(context.Background(), 12345, viewer.Anonymous, 2024)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStatus(t *testing.T) {
	f := newFixture(t)

	v, err := f.assembler.Status(context.Background(), f.user.ID, 2024)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if v.Current == nil || v.Current.Year != 2024 {
		t.Fatalf("expected current entry for 2024, got %+v", v.Current)
	}
	if len(v.Current.Results) != 1 || v.Current.Results[0].Workshop.Name != "graphs" {
		t.Errorf("unexpected current results %+v", v.Current.Results)
	}
	if len(v.Previous) != 1 || v.Previous[0].Year != 2022 {
		t.Fatalf("expected only 2022 among previous years, got %+v", v.Previous)
	}
	if v.Previous[0].Notice == "" {
		t.Error("expected interested-only notice for 2022")
	}

	v, err = f.assembler.Status(context.Background(), f.user.ID, 2025)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if v.Current != nil || len(v.Previous) != 2 {
		t.Errorf("expected no current entry and two previous, got %+v", v)
	}
}

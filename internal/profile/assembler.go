// Package profile composes a participant's profile page for one viewer.
package profile

import (
	"context"
	"errors"

	"github.com/gdg-garage/camp-profile-api/internal/apperr"
	"github.com/gdg-garage/camp-profile-api/internal/history"
	"github.com/gdg-garage/camp-profile-api/internal/i18n"
	"github.com/gdg-garage/camp-profile-api/internal/links"
	"github.com/gdg-garage/camp-profile-api/internal/models"
	"github.com/gdg-garage/camp-profile-api/internal/qualification"
	"github.com/gdg-garage/camp-profile-api/internal/richtext"
	"github.com/gdg-garage/camp-profile-api/internal/viewer"
	"github.com/gdg-garage/camp-profile-api/internal/visibility"
)

// Repository is the read side the assembler needs.
type Repository interface {
	User(ctx context.Context, id uint) (*models.User, error)
	Participation(ctx context.Context, userID uint, year int) (*models.CampParticipation, error)
	LecturerWorkshops(ctx context.Context, userID uint) ([]models.Workshop, error)
	History(ctx context.Context, userID uint, keep func(models.Workshop) bool) (history.History, error)
}

type Assembler struct {
	repo      Repository
	links     links.Resolver
	sanitizer richtext.Sanitizer
}

func NewAssembler(repo Repository, resolver links.Resolver, sanitizer richtext.Sanitizer) *Assembler {
	return &Assembler{repo: repo, links: resolver, sanitizer: sanitizer}
}

// Assemble builds the profile of participantID as seen with caps.
func (a *Assembler) Assemble(ctx context.Context, participantID uint, caps viewer.Capabilities, currentYear int) (*View, error) {
	user, err := a.repo.User(ctx, participantID)
	if err != nil {
		return nil, err
	}

	cp, err := a.repo.Participation(ctx, user.ID, currentYear)
	if errors.Is(err, apperr.ErrNotFound) {
		cp = nil
	} else if err != nil {
		return nil, err
	}

	v := &View{
		Participant: Participant{
			ID:     user.ID,
			Name:   user.FullName(),
			Gender: string(user.Gender),
		},
		AboutPage:    a.sanitizer.Sanitize(user.ProfilePage),
		CurrentYear:  currentYear,
		CollapseFrom: history.CollapseFrom,
	}

	if caps.IsOwner {
		v.OwnerNotice = i18n.Text(i18n.OwnerNotice)
	}
	if caps.CanSeeHistory() {
		v.Participant.School = &user.School
		v.Participant.MaturaExamYear = user.MaturaExamYear
		v.Participant.HowDoYouKnowAbout = &user.HowDoYouKnowAbout
	}
	if caps.CanSeePrivateData() {
		v.Participant.Email = &user.Email
		if cp != nil {
			letter := a.sanitizer.Sanitize(cp.CoverLetter)
			v.CoverLetter = &letter
		}
	}
	if caps.CanSeeSecretNotes() {
		notes := user.SecretNotes
		v.SecretNotes = &notes
	}

	if caps.CanManageQualification && cp != nil {
		v.Qualification = qualificationPanel(cp, user.Gender)
	}

	lectured, err := a.repo.LecturerWorkshops(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	v.LecturerWorkshops = []WorkshopEntry{}
	for _, w := range lectured {
		if !caps.CanSeeHiddenWorkshops() && !w.IsPubliclyVisible() {
			continue
		}
		v.LecturerWorkshops = append(v.LecturerWorkshops, a.workshopEntry(w, caps))
	}

	if caps.CanSeeHistory() {
		h, err := a.repo.History(ctx, user.ID, HistoryFilter(caps))
		if err != nil {
			return nil, err
		}
		for i, s := range h.All() {
			v.History = append(v.History, a.yearEntry(i, s, user.Gender, caps))
		}
	}

	return v, nil
}

// HistoryFilter returns the workshops whose results caps may see in a
// participant's history; nil keeps all of them.
func HistoryFilter(caps viewer.Capabilities) func(models.Workshop) bool {
	if caps.CanSeeHiddenWorkshops() {
		return nil
	}
	return models.Workshop.IsPubliclyVisible
}

func qualificationPanel(cp *models.CampParticipation, g models.Gender) *QualificationPanel {
	p := &QualificationPanel{
		Year:        cp.Year,
		Status:      cp.Status.String(),
		StatusLabel: i18n.Status(cp.Status, g),
		Actions:     []ActionControl{},
	}
	for _, act := range qualification.Available(cp.Status) {
		p.Actions = append(p.Actions, ActionControl{Action: string(act), Label: i18n.Action(act)})
	}
	return p
}

func (a *Assembler) workshopEntry(w models.Workshop, caps viewer.Capabilities) WorkshopEntry {
	d := visibility.Decide(w, caps, a.links)
	e := WorkshopEntry{
		Year:            w.Year,
		Name:            w.Name,
		Title:           w.Title,
		TitleMode:       d.Title,
		URL:             d.URL,
		ShowPageContent: d.ShowPageContent,
	}
	if d.Badge != nil {
		e.Badge = &BadgeView{Label: i18n.WorkshopStatus(d.Badge.Status), Style: d.Badge.Style}
	}
	return e
}

func (a *Assembler) yearEntry(i int, s history.YearSummary, g models.Gender, caps viewer.Capabilities) YearEntry {
	e := YearEntry{Year: s.Year, Collapsed: history.Collapsed(i)}
	if s.Participation != nil {
		status := s.Participation.Status.String()
		e.Status = &status
		e.StatusLabel = i18n.Status(s.Participation.Status, g)
	}
	if s.InterestedOnly() {
		if caps.IsOwner {
			e.Notice = i18n.Text(i18n.InterestedOnlySelf)
		} else {
			e.Notice = i18n.ForGender("history.interested_only", g)
		}
		return e
	}
	for _, r := range s.Results {
		re := ResultEntry{
			Workshop:  a.workshopEntry(r.Workshop, caps),
			Points:    r.Points,
			Percent:   r.Percent,
			Qualified: r.Qualified,
			Comment:   r.Comment,
		}
		switch {
		case !r.Workshop.IsQualifying:
			re.Note = i18n.Text(i18n.NotQualifying)
		case r.Points == nil:
			re.Note = i18n.Text(i18n.NotChecked)
		case r.Qualified != nil && *r.Qualified:
			re.Note = i18n.ForGender("results.qualified", g)
		case r.Qualified != nil:
			re.Note = i18n.ForGender("results.not_qualified", g)
		}
		e.Results = append(e.Results, re)
	}
	return e
}

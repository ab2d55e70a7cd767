package profile

import (
	"github.com/gdg-garage/camp-profile-api/internal/visibility"
)

// View is the render model of a participant's profile page. Fields a viewer
// may not see are left out entirely.
type View struct {
	Participant Participant `json:"participant"`
	AboutPage   string      `json:"about_page" doc:"Sanitized public profile page"`
	OwnerNotice string      `json:"owner_notice,omitempty" doc:"Shown to the profile owner only"`
	CurrentYear int         `json:"current_year"`

	CoverLetter *string `json:"cover_letter,omitempty" doc:"Owner and admins only"`
	SecretNotes *string `json:"secret_notes,omitempty" doc:"Administrative notes"`

	Qualification *QualificationPanel `json:"qualification,omitempty"`

	LecturerWorkshops []WorkshopEntry `json:"lecturer_workshops"`

	History []YearEntry `json:"history,omitempty"`
	// CollapseFrom is the index of the first history entry in the
	// previous-years group.
	CollapseFrom int `json:"collapse_from"`
}

type Participant struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Gender            string  `json:"gender" enum:"M,F,"`
	Email             *string `json:"email,omitempty"`
	School            *string `json:"school,omitempty"`
	MaturaExamYear    *int    `json:"matura_exam_year,omitempty"`
	HowDoYouKnowAbout *string `json:"how_do_you_know_about,omitempty"`
}

type QualificationPanel struct {
	Year        int             `json:"year"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	Actions     []ActionControl `json:"actions"`
}

type ActionControl struct {
	Action string `json:"action"`
	Label  string `json:"label"`
}

type WorkshopEntry struct {
	Year            int                  `json:"year"`
	Name            string               `json:"name"`
	Title           string               `json:"title"`
	TitleMode       visibility.TitleMode `json:"title_mode"`
	URL             string               `json:"url,omitempty"`
	ShowPageContent bool                 `json:"show_page_content"`
	Badge           *BadgeView           `json:"badge,omitempty"`
}

type BadgeView struct {
	Label string `json:"label"`
	Style string `json:"style"`
}

type YearEntry struct {
	Year      int     `json:"year"`
	Collapsed bool    `json:"collapsed"`
	Status    *string `json:"status,omitempty"`
	// StatusLabel is empty when there is no participation that year.
	StatusLabel string        `json:"status_label,omitempty"`
	Notice      string        `json:"notice,omitempty"`
	Results     []ResultEntry `json:"results,omitempty"`
}

type ResultEntry struct {
	Workshop  WorkshopEntry `json:"workshop"`
	Points    *float64      `json:"points,omitempty"`
	Percent   *float64      `json:"percent,omitempty"`
	Qualified *bool         `json:"qualified,omitempty"`
	Note      string        `json:"note,omitempty"`
	Comment   string        `json:"comment,omitempty"`
}

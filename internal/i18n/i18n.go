// Package i18n holds the Polish strings shown on profile pages. Labels that
// refer to the participant agree with their grammatical gender.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gdg-garage/camp-profile-api/internal/models"
	"github.com/gdg-garage/camp-profile-api/internal/qualification"
)

var Lang = language.Polish

type entry struct {
	key                       string
	male, female, unspecified string
}

// Keys of gender-independent messages.
const (
	OwnerNotice        = "profile.owner_notice"
	InterestedOnlySelf = "history.interested_only.self"
	CurrentYear        = "history.current_year"
	PreviousYears      = "history.previous_years"
	NotChecked         = "results.not_checked"
	NotQualifying      = "results.not_qualifying"
)

var gendered = []entry{
	{"status.none", "Zgłoszony, czeka na decyzję", "Zgłoszona, czeka na decyzję", "Zgłoszony(-a), czeka na decyzję"},
	{"status.accepted", "Zakwalifikowany", "Zakwalifikowana", "Zakwalifikowany(-a)"},
	{"status.rejected", "Niezakwalifikowany", "Niezakwalifikowana", "Niezakwalifikowany(-a)"},
	{"status.cancelled", "Zrezygnował", "Zrezygnowała", "Zrezygnował(-a)"},
	{"history.interested_only", "Zainteresowany, ale nie zapisał się na żadne warsztaty", "Zainteresowana, ale nie zapisała się na żadne warsztaty", "Zainteresowany(-a), ale nie zapisał(-a) się na żadne warsztaty"},
	{"results.qualified", "zakwalifikowany", "zakwalifikowana", "zakwalifikowany(-a)"},
	{"results.not_qualified", "niezakwalifikowany", "niezakwalifikowana", "niezakwalifikowany(-a)"},
}

var plain = map[string]string{
	OwnerNotice:        "Szczegółowe dane oraz list motywacyjny są widoczne tylko dla organizatorów. Strona profilu jest publiczna.",
	InterestedOnlySelf: "Jesteś zainteresowany(-a) udziałem, ale nie zapisałeś(-aś) się na żadne warsztaty",
	CurrentYear:        "Bieżąca edycja",
	PreviousYears:      "Poprzednie edycje",
	NotChecked:         "Jeszcze nie sprawdzone",
	NotQualifying:      "Warsztaty bez kwalifikacji",

	"action.accept":      "Zakwalifikuj",
	"action.reject":      "Odrzuć",
	"action.cancel":      "Odwołaj przyjazd",
	"action.undo_cancel": "Cofnij rezygnację",
	"action.delete":      "Usuń kwalifikację",

	"workshop.proposed":  "Zgłoszone",
	"workshop.accepted":  "Zaakceptowane",
	"workshop.rejected":  "Odrzucone",
	"workshop.cancelled": "Odwołane",
	"workshop.other":     "Inny status",
}

func init() {
	for _, e := range gendered {
		message.SetString(Lang, e.key+".M", e.male)
		message.SetString(Lang, e.key+".F", e.female)
		message.SetString(Lang, e.key+".U", e.unspecified)
	}
	for k, v := range plain {
		message.SetString(Lang, k, v)
	}
}

var printer = message.NewPrinter(Lang)

func suffix(g models.Gender) string {
	switch g {
	case models.GenderMale:
		return ".M"
	case models.GenderFemale:
		return ".F"
	}
	return ".U"
}

// Text returns a gender-independent message.
func Text(key string) string {
	return printer.Sprintf(key)
}

// ForGender returns the variant of key agreeing with g.
func ForGender(key string, g models.Gender) string {
	return printer.Sprintf(key + suffix(g))
}

// Status describes a participation status of a participant of gender g.
func Status(s qualification.Status, g models.Gender) string {
	return ForGender("status."+s.String(), g)
}

// Action is the button label of a qualification action.
func Action(a qualification.Action) string {
	return printer.Sprintf("action." + string(a))
}

// WorkshopStatus is the badge text of a workshop status.
func WorkshopStatus(s models.WorkshopStatus) string {
	switch s {
	case models.WorkshopProposed:
		return printer.Sprintf("workshop.proposed")
	case models.WorkshopAccepted, models.WorkshopRejected, models.WorkshopCancelled:
		return printer.Sprintf("workshop." + string(s))
	}
	return printer.Sprintf("workshop.other")
}

package profile

import (
	"context"

	"github.com/gdg-garage/camp-profile-api/internal/viewer"
)

// StatusView is a participant's own qualification status page: the current
// camp next to everything before it.
type StatusView struct {
	CurrentYear int         `json:"current_year"`
	Current     *YearEntry  `json:"current,omitempty"`
	Previous    []YearEntry `json:"previous"`
}

// Status builds the status page of userID as seen by that same user.
func (a *Assembler) Status(ctx context.Context, userID uint, currentYear int) (*StatusView, error) {
	user, err := a.repo.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	caps := viewer.Resolve(user, user.ID)

	h, err := a.repo.History(ctx, user.ID, HistoryFilter(caps))
	if err != nil {
		return nil, err
	}

	cur, past := h.Split(currentYear)
	v := &StatusView{CurrentYear: currentYear, Previous: []YearEntry{}}
	if cur != nil {
		e := a.yearEntry(0, *cur, user.Gender, caps)
		v.Current = &e
	}
	for i, s := range past {
		v.Previous = append(v.Previous, a.yearEntry(i+1, s, user.Gender, caps))
	}
	return v, nil
}

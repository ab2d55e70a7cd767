package history

import (
	"github.com/gdg-garage/camp-profile-api/internal/models"
)

// Records is an in-memory Source built from preloaded participations.
type Records struct {
	participations map[int]*models.CampParticipation
	results        map[int][]Result
}

// NewRecords indexes participations (with their workshop participations and
// workshops loaded) by year. maxEntered maps workshop IDs to the highest
// result entered for them. Workshops rejected by keep are left out.
func NewRecords(participations []models.CampParticipation, maxEntered map[uint]float64, keep func(models.Workshop) bool) *Records {
	r := &Records{
		participations: make(map[int]*models.CampParticipation, len(participations)),
		results:        make(map[int][]Result),
	}
	for i := range participations {
		cp := &participations[i]
		r.participations[cp.Year] = cp
		for _, wp := range cp.WorkshopParticipations {
			if keep != nil && !keep(wp.Workshop) {
				continue
			}
			var top *float64
			if m, ok := maxEntered[wp.WorkshopID]; ok {
				top = &m
			}
			r.results[cp.Year] = append(r.results[cp.Year], Score(wp, top))
		}
	}
	return r
}

func (r *Records) Participation(year int) *models.CampParticipation {
	return r.participations[year]
}

func (r *Records) Results(year int) []Result {
	return r.results[year]
}

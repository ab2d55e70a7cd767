package history

import (
	"github.com/gdg-garage/camp-profile-api/internal/models"
)

// Result is a participant's outcome in one workshop.
type Result struct {
	Workshop models.Workshop
	Points   *float64
	// Percent is Points relative to the workshop maximum.
	Percent *float64
	// Qualified compares Points with the workshop threshold. It is nil while
	// either is unknown or the workshop does not qualify participants.
	Qualified *bool
	Comment   string
}

// Score computes the derived fields of a workshop participation. maxEntered
// is the highest result entered for that workshop and is used when the
// workshop has no maximum configured.
func Score(wp models.WorkshopParticipation, maxEntered *float64) Result {
	r := Result{
		Workshop: wp.Workshop,
		Points:   wp.QualificationResult,
		Comment:  wp.Comment,
	}
	if !wp.Workshop.IsQualifying || wp.QualificationResult == nil {
		return r
	}
	points := *wp.QualificationResult

	maxPoints := wp.Workshop.MaxPoints
	if maxPoints == nil {
		maxPoints = maxEntered
	}
	if maxPoints != nil && *maxPoints > 0 {
		p := points / *maxPoints * 100
		r.Percent = &p
	}

	if t := wp.Workshop.QualificationThreshold; t != nil {
		q := points >= *t
		r.Qualified = &q
	}
	return r
}

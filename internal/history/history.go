// Package history assembles a participant's per-year qualification
// summaries, newest year first.
//
// The first emitted summary is the headline entry; every later one belongs
// to the "previous years" group. The package exposes that boundary as an
// index and leaves any toggle state to the presentation layer.
package history

import (
	"cmp"
	"iter"
	"slices"

	"github.com/gdg-garage/camp-profile-api/internal/models"
)

// CollapseFrom is the index of the first summary in the previous-years group.
const CollapseFrom = 1

// YearSummary combines a year's participation record with its results.
type YearSummary struct {
	Year int
	// Participation is nil when the participant never registered interest
	// that year.
	Participation *models.CampParticipation
	Results       []Result
}

// InterestedOnly is true when the participant registered interest but did not
// enroll in any workshop.
func (y YearSummary) InterestedOnly() bool {
	return y.Participation != nil && len(y.Results) == 0
}

func (y YearSummary) empty() bool {
	return y.Participation == nil && len(y.Results) == 0
}

// Source supplies one participant's records per year.
type Source interface {
	Participation(year int) *models.CampParticipation
	Results(year int) []Result
}

// History is a restartable sequence of year summaries. It holds no cursor;
// every iteration reads the source again.
type History struct {
	years []int
	src   Source
}

// Aggregate prepares the history of the given years. Duplicates are dropped
// and years are ordered newest first regardless of input order.
func Aggregate(years []int, src Source) History {
	ys := slices.Clone(years)
	slices.SortFunc(ys, func(a, b int) int { return cmp.Compare(b, a) })
	return History{years: slices.Compact(ys), src: src}
}

// All yields the non-empty summaries with their position in the sequence.
func (h History) All() iter.Seq2[int, YearSummary] {
	return func(yield func(int, YearSummary) bool) {
		if h.src == nil {
			return
		}
		i := 0
		for _, year := range h.years {
			s := YearSummary{
				Year:          year,
				Participation: h.src.Participation(year),
				Results:       h.src.Results(year),
			}
			if s.empty() {
				continue
			}
			if !yield(i, s) {
				return
			}
			i++
		}
	}
}

// Summaries collects the whole sequence.
func (h History) Summaries() []YearSummary {
	var out []YearSummary
	for _, s := range h.All() {
		out = append(out, s)
	}
	return out
}

// Collapsed reports whether the summary at index i belongs to the
// previous-years group.
func Collapsed(i int) bool {
	return i >= CollapseFrom
}

// Split separates the summary of year from all others, keeping order.
func (h History) Split(year int) (current *YearSummary, past []YearSummary) {
	for _, s := range h.All() {
		if s.Year == year && current == nil {
			current = &s
			continue
		}
		past = append(past, s)
	}
	return current, past
}

package history

import (
	"testing"

	"github.com/gdg-garage/camp-profile-api/internal/models"
	"github.com/gdg-garage/camp-profile-api/internal/qualification"
)

func ptr[T any](v T) *T { return &v }

func participation(year int, status qualification.Status, wps ...models.WorkshopParticipation) models.CampParticipation {
	return models.CampParticipation{Year: year, Status: status, WorkshopParticipations: wps}
}

func result(id uint, title string, points *float64) models.WorkshopParticipation {
	w := models.Workshop{Title: title, Status: models.WorkshopAccepted, IsQualifying: true, MaxPoints: ptr(10.0)}
	w.ID = id
	return models.WorkshopParticipation{WorkshopID: id, Workshop: w, QualificationResult: points}
}

// addResult attaches a result to a year that may have no participation.
func addResult(r *Records, year int, res Result) {
	r.results[year] = append(r.results[year], res)
}

func years(h History) []int {
	var out []int
	for _, s := range h.All() {
		out = append(out, s.Year)
	}
	return out
}

func TestAggregate_SkipsEmptyYears(t *testing.T) {
	src := NewRecords([]models.CampParticipation{
		participation(2024, qualification.None, result(1, "Graphs", ptr(5.0))),
	}, nil, nil)

	got := Aggregate([]int{2024, 2023, 2022}, src).Summaries()
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}
	if got[0].Year != 2024 {
		t.Errorf("expected 2024, got %d", got[0].Year)
	}
}

func TestAggregate_OrderAndCollapse(t *testing.T) {
	src := NewRecords([]models.CampParticipation{
		participation(2022, qualification.Rejected),
		participation(2024, qualification.Accepted, result(1, "Graphs", ptr(7.0))),
		participation(2023, qualification.Cancelled, result(2, "Crypto", nil)),
	}, nil, nil)

	h := Aggregate([]int{2022, 2024, 2023, 2024, 2021}, src)

	got := years(h)
	want := []int{2024, 2023, 2022}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	for i, s := range h.All() {
		if Collapsed(i) != (i >= 1) {
			t.Errorf("summary %d (%d): unexpected collapse flag", i, s.Year)
		}
	}

	// Restartable: a second pass yields the same sequence.
	again := years(h)
	for i := range want {
		if again[i] != got[i] {
			t.Fatalf("second iteration differs: %v vs %v", again, got)
		}
	}
}

func TestAggregate_InterestedOnly(t *testing.T) {
	src := NewRecords([]models.CampParticipation{
		participation(2024, qualification.None),
		participation(2023, qualification.Accepted, result(1, "Graphs", ptr(3.0))),
	}, nil, nil)

	got := Aggregate([]int{2024, 2023}, src).Summaries()
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if !got[0].InterestedOnly() {
		t.Error("2024 has a participation without results")
	}
	if got[1].InterestedOnly() {
		t.Error("2023 has results")
	}
}

func TestAggregate_ResultsWithoutParticipation(t *testing.T) {
	src := NewRecords(nil, nil, nil)
	addResult(src, 2021, Score(result(1, "Graphs", ptr(4.0)), nil))

	got := Aggregate([]int{2021}, src).Summaries()
	if len(got) != 1 || got[0].Participation != nil || got[0].InterestedOnly() {
		t.Fatalf("unexpected summaries %+v", got)
	}
}

func TestAggregate_KeepFilter(t *testing.T) {
	hidden := result(2, "Secret", ptr(1.0))
	hidden.Workshop.Status = models.WorkshopRejected

	src := NewRecords([]models.CampParticipation{
		participation(2024, qualification.None, result(1, "Graphs", ptr(2.0)), hidden),
	}, nil, models.Workshop.IsPubliclyVisible)

	got := Aggregate([]int{2024}, src).Summaries()
	if len(got) != 1 || len(got[0].Results) != 1 || got[0].Results[0].Workshop.Title != "Graphs" {
		t.Fatalf("expected only the public workshop, got %+v", got)
	}
}

func TestAggregate_EarlyStop(t *testing.T) {
	src := NewRecords([]models.CampParticipation{
		participation(2024, qualification.None),
		participation(2023, qualification.None),
	}, nil, nil)

	n := 0
	for range Aggregate([]int{2024, 2023}, src).All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("expected iteration to stop after one summary, got %d", n)
	}
}

func TestSplit(t *testing.T) {
	src := NewRecords([]models.CampParticipation{
		participation(2024, qualification.None),
		participation(2023, qualification.Accepted),
		participation(2022, qualification.Rejected),
	}, nil, nil)
	h := Aggregate([]int{2024, 2023, 2022}, src)

	current, past := h.Split(2024)
	if current == nil || current.Year != 2024 {
		t.Fatalf("expected current 2024, got %+v", current)
	}
	if len(past) != 2 || past[0].Year != 2023 || past[1].Year != 2022 {
		t.Errorf("unexpected past %+v", past)
	}

	current, past = h.Split(2025)
	if current != nil || len(past) != 3 {
		t.Errorf("no summary for 2025 expected, got %+v / %d past", current, len(past))
	}
}

package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/gdg-garage/camp-profile-api/internal/history"
	"github.com/gdg-garage/camp-profile-api/internal/models"
	"github.com/gdg-garage/camp-profile-api/internal/qualification"
)

func ptr[T any](v T) *T { return &v }

func summaries() []history.YearSummary {
	w := models.Workshop{Title: "Graphs", IsQualifying: true, MaxPoints: ptr(10.0), QualificationThreshold: ptr(5.0)}
	return []history.YearSummary{
		{
			Year:          2024,
			Participation: &models.CampParticipation{Year: 2024, Status: qualification.Accepted},
			Results: []history.Result{
				history.Score(models.WorkshopParticipation{Workshop: w, QualificationResult: ptr(7.5)}, nil),
				history.Score(models.WorkshopParticipation{Workshop: models.Workshop{Title: "Crypto", IsQualifying: true}}, nil),
			},
		},
		{
			Year:          2023,
			Participation: &models.CampParticipation{Year: 2023},
		},
	}
}

func TestRows(t *testing.T) {
	user := models.User{FirstName: "Jan", Gender: models.GenderMale}
	rows := Rows(user, summaries())

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"2024", "Zakwalifikowany", "Graphs", "7.5", "75.0", "zakwalifikowany"}
	for i := range want {
		if rows[0][i] != want[i] {
			t.Errorf("row 0 column %d: expected %q, got %q", i, want[i], rows[0][i])
		}
	}
	if rows[1][5] != "Jeszcze nie sprawdzone" {
		t.Errorf("unexpected unchecked marker %q", rows[1][5])
	}
	if rows[2][0] != "2023" || rows[2][2] == "" {
		t.Errorf("expected interested-only notice row, got %v", rows[2])
	}
}

func TestHistoryXLSX(t *testing.T) {
	user := models.User{FirstName: "Jan", LastName: "Nowak"}
	data, err := HistoryXLSX(user, summaries())
	if err != nil {
		t.Fatalf("HistoryXLSX returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	title, _ := f.GetCellValue(SheetName, "A1")
	if title != "Jan Nowak" {
		t.Errorf("unexpected title %q", title)
	}
	head, _ := f.GetCellValue(SheetName, "C2")
	if head != "Warsztaty" {
		t.Errorf("unexpected header %q", head)
	}
	workshop, _ := f.GetCellValue(SheetName, "C3")
	if workshop != "Graphs" {
		t.Errorf("unexpected first workshop %q", workshop)
	}

	idx, err := f.GetCellStyle(SheetName, "F2")
	if err != nil {
		t.Fatalf("GetCellStyle returned error: %v", err)
	}
	style, err := f.GetStyle(idx)
	if err != nil {
		t.Fatalf("GetStyle returned error: %v", err)
	}
	if style.Font == nil || !style.Font.Bold {
		t.Error("expected a bold header")
	}
}

func TestStyleSheet_ReportsErrors(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := styleSheet(f, "Missing"); err == nil {
		t.Fatal("expected an error for a sheet that does not exist")
	}
	if err := styleSheet(f, "Sheet1"); err != nil {
		t.Errorf("styleSheet returned error: %v", err)
	}
}

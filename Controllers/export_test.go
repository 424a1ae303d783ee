package Controllers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ChestVision/Models"

	"gorm.io/gorm"
)

func exportFixtures() []Models.Analysis {
	created := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	return []Models.Analysis{
		{
			Model:      gorm.Model{ID: 1, CreatedAt: created},
			Patient:    Models.Patient{Name: "Jane Doe", Age: 34, Gender: "Female"},
			Disease:    "COVID-19",
			Severity:   "Severe",
			Confidence: 92.5,
		},
		{
			Model:      gorm.Model{ID: 2, CreatedAt: created.Add(time.Hour)},
			Patient:    Models.Patient{Name: "John Smith", Age: 61, Gender: "Male"},
			Disease:    "Normal",
			Severity:   "None",
			Confidence: 88.1,
		},
	}
}

func TestBuildRecordsWorkbook(t *testing.T) {
	file := buildRecordsWorkbook(exportFixtures())

	cases := map[string]string{
		"A1": "Date",
		"B1": "Patient",
		"B2": "Jane Doe",
		"E2": "COVID-19",
		"F2": "Severe",
		"A2": "2026-08-20 10:30",
		"B3": "John Smith",
		"E3": "Normal",
	}
	for axis, want := range cases {
		if got := file.GetCellValue(recordsSheet, axis); got != want {
			t.Errorf("cell %s = %q, want %q", axis, got, want)
		}
	}
}

func TestWorkbookSavesPerFile(t *testing.T) {
	// Two builds saved side by side must not share a path.
	first := filepath.Join(t.TempDir(), "first.xlsx")
	second := filepath.Join(t.TempDir(), "second.xlsx")

	if err := buildRecordsWorkbook(exportFixtures()).SaveAs(first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := buildRecordsWorkbook(nil).SaveAs(second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	firstInfo, err := os.Stat(first)
	if err != nil {
		t.Fatalf("stat first: %v", err)
	}
	secondInfo, err := os.Stat(second)
	if err != nil {
		t.Fatalf("stat second: %v", err)
	}
	if firstInfo.Size() == 0 || secondInfo.Size() == 0 {
		t.Error("saved workbooks must not be empty")
	}
}

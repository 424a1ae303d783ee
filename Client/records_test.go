package Client

import "testing"

func sampleRecords() []Record {
	return []Record{
		{ID: 1, PatientName: "Jane Doe", PatientAge: 34, PatientGender: "Female", Disease: "COVID-19", Severity: "Severe", Confidence: 92.5, Timestamp: "2026-08-20T10:30:00Z", ReportAvailable: true},
		{ID: 2, PatientName: "John Smith", PatientAge: 61, PatientGender: "Male", Disease: "Normal", Severity: "None", Confidence: 88.1, Timestamp: "2026-08-21T14:00:00Z"},
	}
}

func TestNewRecordsView(t *testing.T) {
	view := NewRecordsView(sampleRecords())

	if view.Empty {
		t.Error("non-empty fetch flagged as empty")
	}
	row := view.Rows[0]
	if row.AgeGender != "34 years, Female" {
		t.Errorf("AgeGender = %q", row.AgeGender)
	}
	if row.ConfidencePct != "92.5%" {
		t.Errorf("ConfidencePct = %q", row.ConfidencePct)
	}
	if row.BadgeClass != "danger" {
		t.Errorf("BadgeClass = %q", row.BadgeClass)
	}
	if !row.Visible {
		t.Error("rows must start visible")
	}
}

func TestEmptyFetchShowsEmptyState(t *testing.T) {
	view := NewRecordsView(nil)
	if !view.Empty {
		t.Error("empty fetch must set the explicit empty state")
	}
	if len(view.Rows) != 0 {
		t.Errorf("got %d rows", len(view.Rows))
	}
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	view := NewRecordsView(sampleRecords())

	view.Filter("jane")

	if !view.Rows[0].Visible {
		t.Error("\"jane\" must match \"Jane Doe\"")
	}
	if view.Rows[1].Visible {
		t.Error("\"jane\" must not match \"John Smith\"")
	}
	if view.VisibleCount() != 1 {
		t.Errorf("VisibleCount = %d", view.VisibleCount())
	}
}

func TestFilterMatchesAnyRenderedField(t *testing.T) {
	cases := []struct {
		query string
		want  []bool
	}{
		{"covid", []bool{true, false}},
		{"severe", []bool{true, false}},
		{"female", []bool{true, false}},
		{"34 years", []bool{true, false}},
		{"normal", []bool{false, true}},
		{"92.5", []bool{true, false}},
	}

	for _, tc := range cases {
		view := NewRecordsView(sampleRecords())
		view.Filter(tc.query)
		for i, want := range tc.want {
			if view.Rows[i].Visible != want {
				t.Errorf("Filter(%q): row %d visible = %v, want %v", tc.query, i, view.Rows[i].Visible, want)
			}
		}
	}
}

func TestBlankFilterRestoresAllRows(t *testing.T) {
	view := NewRecordsView(sampleRecords())

	view.Filter("jane")
	view.Filter("")

	if view.VisibleCount() != len(view.Rows) {
		t.Errorf("blank filter left %d of %d rows visible", view.VisibleCount(), len(view.Rows))
	}
}

func TestSplitRecommendations(t *testing.T) {
	got := SplitRecommendations("Isolate patient immediately, PCR test confirmation required")
	if len(got) != 2 || got[0] != "Isolate patient immediately" {
		t.Errorf("SplitRecommendations = %v", got)
	}
	if SplitRecommendations("") != nil {
		t.Error("empty string must split to nil")
	}
}

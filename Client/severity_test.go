package Client

import "testing"

func TestBadgeClass(t *testing.T) {
	cases := []struct {
		severity string
		want     string
	}{
		{"Severe", "danger"},
		{"Moderate", "warning"},
		{"Mild", "success"},
		{"None", "info"},
		{"", "info"},
		{"Critical", "info"},
	}

	for _, tc := range cases {
		if got := BadgeClass(tc.severity); got != tc.want {
			t.Errorf("BadgeClass(%q) = %q, want %q", tc.severity, got, tc.want)
		}
	}
}

func TestResultView(t *testing.T) {
	view := NewResultView(AnalysisResult{
		AnalysisID:      42,
		Disease:         "Tuberculosis",
		Severity:        "Moderate",
		Confidence:      83.27,
		AffectedRegions: []string{"Upper lobes", "Apical segments"},
		Recommendations: []string{"Hospital admission recommended", "Initiate standard TB treatment regimen"},
	})

	if view.ConfidencePct != "83.3%" {
		t.Errorf("ConfidencePct = %q", view.ConfidencePct)
	}
	if view.BadgeClass != "warning" {
		t.Errorf("BadgeClass = %q", view.BadgeClass)
	}
	if view.AffectedRegions != "Upper lobes, Apical segments" {
		t.Errorf("AffectedRegions = %q", view.AffectedRegions)
	}
	if view.GradcamURL != "/api/image/gradcam/42" {
		t.Errorf("GradcamURL = %q", view.GradcamURL)
	}
	if view.ReportFilename != "medical_report_42.pdf" {
		t.Errorf("ReportFilename = %q", view.ReportFilename)
	}
	if !view.ScrollIntoView {
		t.Error("fresh result must request a scroll")
	}

	view.Rendered()
	if view.ScrollIntoView {
		t.Error("scroll flag must clear after the first render")
	}
}

package Client

import (
	"fmt"
	"strings"
)

// ResultView is the display form of one analysis result. Every field is
// precomputed so rendering is a straight read.
type ResultView struct {
	AnalysisID      uint
	Disease         string
	Severity        string
	BadgeClass      string
	ConfidencePct   string
	AffectedRegions string
	Recommendations []string
	GradcamURL      string
	ReportFilename  string

	// ScrollIntoView is set on the first render of a fresh result so the
	// panel is brought on screen once, not on every repaint.
	ScrollIntoView bool
}

// NewResultView maps a server response into its display form.
func NewResultView(result AnalysisResult) ResultView {
	return ResultView{
		AnalysisID:      result.AnalysisID,
		Disease:         result.Disease,
		Severity:        result.Severity,
		BadgeClass:      BadgeClass(result.Severity),
		ConfidencePct:   fmt.Sprintf("%.1f%%", result.Confidence),
		AffectedRegions: strings.Join(result.AffectedRegions, ", "),
		Recommendations: result.Recommendations,
		GradcamURL:      fmt.Sprintf("/api/image/gradcam/%d", result.AnalysisID),
		ReportFilename:  fmt.Sprintf("medical_report_%d.pdf", result.AnalysisID),
		ScrollIntoView:  true,
	}
}

// Rendered marks the view as shown, clearing the one-shot scroll flag.
func (v *ResultView) Rendered() {
	v.ScrollIntoView = false
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ", ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package Client

import (
	"fmt"
	"strings"
	"time"
)

// RecordRow is one table row of the records view.
type RecordRow struct {
	AnalysisID      uint
	PatientName     string
	AgeGender       string
	Disease         string
	Severity        string
	BadgeClass      string
	ConfidencePct   string
	Timestamp       string
	ReportAvailable bool
	Visible         bool

	// rowText is every rendered cell of the row, lowercased, so the live
	// filter can match any visible field.
	rowText string
}

// RecordsView holds every fetched row; filtering only toggles visibility,
// it never refetches.
type RecordsView struct {
	Rows  []RecordRow
	Empty bool
}

// NewRecordsView maps the fetched records into display rows. An empty fetch
// produces the explicit empty state rather than a bare table.
func NewRecordsView(records []Record) RecordsView {
	rows := make([]RecordRow, 0, len(records))
	for _, r := range records {
		row := RecordRow{
			AnalysisID:      r.ID,
			PatientName:     r.PatientName,
			AgeGender:       fmt.Sprintf("%d years, %s", r.PatientAge, r.PatientGender),
			Disease:         r.Disease,
			Severity:        r.Severity,
			BadgeClass:      BadgeClass(r.Severity),
			ConfidencePct:   fmt.Sprintf("%.1f%%", r.Confidence),
			Timestamp:       localTimestamp(r.Timestamp),
			ReportAvailable: r.ReportAvailable,
			Visible:         true,
		}
		row.rowText = strings.ToLower(strings.Join([]string{
			row.PatientName,
			row.AgeGender,
			row.Disease,
			row.Severity,
			row.ConfidencePct,
			row.Timestamp,
		}, " "))
		rows = append(rows, row)
	}
	return RecordsView{Rows: rows, Empty: len(rows) == 0}
}

// Filter shows only rows whose rendered text contains the query,
// case-insensitively. A blank query restores every row.
func (v *RecordsView) Filter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	for i := range v.Rows {
		v.Rows[i].Visible = query == "" ||
			strings.Contains(v.Rows[i].rowText, query)
	}
}

// VisibleCount reports how many rows the current filter leaves on screen.
func (v *RecordsView) VisibleCount() int {
	n := 0
	for _, row := range v.Rows {
		if row.Visible {
			n++
		}
	}
	return n
}

// SplitRecommendations breaks the stored recommendation string back into
// its list form for the detail drawer.
func SplitRecommendations(joined string) []string {
	return splitList(joined)
}

func localTimestamp(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}

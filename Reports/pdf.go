package Reports

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"ChestVision/Inference"
	"ChestVision/Models"

	"github.com/jung-kurt/gofpdf"
)

var severityColors = map[string][3]int{
	"Mild":     {16, 185, 129},
	"Moderate": {245, 158, 11},
	"Severe":   {239, 68, 68},
	"None":     {107, 114, 128},
}

// Generate renders the full medical report for one analysis and writes it
// under outputDir, returning the file path.
func Generate(outputDir string, analysis Models.Analysis, patient Models.Patient, doctor Models.Doctor, prediction Inference.Prediction) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir,
		fmt.Sprintf("report_%s_%s.pdf", strings.ReplaceAll(patient.Name, " ", "_"), timestamp))

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(30, 64, 175)
	pdf.MultiCell(0, 10, "AI-ASSISTED CHEST X-RAY ANALYSIS REPORT", "", "C", false)
	pdf.Ln(6)

	// Report header box
	pdf.SetTextColor(0, 0, 0)
	addDetail(pdf, "Report Date:", time.Now().Format("January 2, 2006 3:04 PM"), true)
	addDetail(pdf, "Report ID:", fmt.Sprintf("RPT-%06d", analysis.ID), true)
	addDetail(pdf, "Analyzing Physician:", doctor.Name, true)
	addDetail(pdf, "Specialty:", doctor.Specialty, true)
	addDetail(pdf, "License Number:", doctor.LicenseNumber, true)
	pdf.Ln(6)

	// Patient information
	addHeading(pdf, "PATIENT INFORMATION")
	addDetail(pdf, "Name:", patient.Name, false)
	addDetail(pdf, "Age:", fmt.Sprintf("%d years", patient.Age), false)
	addDetail(pdf, "Gender:", patient.Gender, false)
	addDetail(pdf, "Patient ID:", fmt.Sprintf("PAT-%06d", patient.ID), false)
	pdf.Ln(4)

	// Clinical indication
	addHeading(pdf, "CLINICAL INDICATION")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, "Symptoms: "+analysis.Symptoms, "", "L", false)
	if patient.MedicalHistory != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 5, "Medical History: "+patient.MedicalHistory, "", "L", false)
	}
	pdf.Ln(4)

	// Vital signs, only the readings that were actually taken
	if analysis.Temperature != nil || analysis.OxygenSaturation != nil ||
		analysis.HeartRate != nil || analysis.RespiratoryRate != nil {
		addHeading(pdf, "VITAL SIGNS")
		if analysis.Temperature != nil {
			addDetail(pdf, "Temperature:", fmt.Sprintf("%.1f C", *analysis.Temperature), false)
		}
		if analysis.OxygenSaturation != nil {
			addDetail(pdf, "Oxygen Saturation:", fmt.Sprintf("%d%%", *analysis.OxygenSaturation), false)
		}
		if analysis.HeartRate != nil {
			addDetail(pdf, "Heart Rate:", fmt.Sprintf("%d bpm", *analysis.HeartRate), false)
		}
		if analysis.RespiratoryRate != nil {
			addDetail(pdf, "Respiratory Rate:", fmt.Sprintf("%d breaths/min", *analysis.RespiratoryRate), false)
		}
		pdf.Ln(4)
	}

	// AI analysis results
	addHeading(pdf, "AI ANALYSIS RESULTS")
	addDetail(pdf, "Detected Condition:", prediction.Disease, true)
	addDetail(pdf, "Confidence Level:", fmt.Sprintf("%.1f%%", prediction.Confidence), true)
	addSeverityRow(pdf, prediction.Severity)
	regions := "N/A"
	if len(prediction.AffectedRegions) > 0 {
		regions = strings.Join(prediction.AffectedRegions, ", ")
	}
	addDetail(pdf, "Affected Regions:", regions, true)
	pdf.Ln(6)

	// Findings
	addHeading(pdf, "FINDINGS")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, findingsText(prediction), "", "L", false)
	pdf.Ln(6)

	// Impression
	addHeading(pdf, "IMPRESSION")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("%s - %s severity", prediction.Disease, prediction.Severity), "", "L", false)
	pdf.Ln(6)

	// Recommendations
	addHeading(pdf, "CLINICAL RECOMMENDATIONS")
	pdf.SetFont("Helvetica", "", 10)
	for i, rec := range prediction.Recommendations {
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, rec), "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(4)

	// Disclaimer
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.MultiCell(0, 4,
		"IMPORTANT DISCLAIMER: This report has been generated with AI assistance and represents a "+
			"preliminary analysis. All findings must be reviewed and confirmed by a qualified radiologist "+
			"or physician before making any clinical decisions. This AI system is designed to assist "+
			"healthcare professionals, not replace clinical judgment. The final diagnosis and treatment "+
			"plan should be determined by the attending physician based on complete clinical context.",
		"1", "L", false)
	pdf.Ln(8)

	// Signature section
	pdf.SetTextColor(0, 0, 0)
	addDetail(pdf, "Physician Signature:", strings.Repeat("_", 40), false)
	addDetail(pdf, "Date:", time.Now().Format("January 2, 2006"), false)

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}

	return filename, nil
}

func findingsText(prediction Inference.Prediction) string {
	if prediction.Disease == "Normal" {
		return "The chest X-ray demonstrates clear lung fields with no acute abnormalities detected. " +
			"Cardiac silhouette is within normal limits."
	}

	regions := "the lung fields"
	if len(prediction.AffectedRegions) > 0 {
		regions = strings.Join(prediction.AffectedRegions, ", ")
	}
	return fmt.Sprintf(
		"The chest X-ray demonstrates findings consistent with %s. AI analysis identified "+
			"abnormalities in %s with %.1f%% confidence. The severity is assessed as %s.",
		prediction.Disease, regions, prediction.Confidence, strings.ToLower(prediction.Severity))
}

func addHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func addDetail(pdf *gofpdf.Fpdf, label, value string, shaded bool) {
	pdf.SetFont("Helvetica", "B", 10)
	if shaded {
		pdf.SetFillColor(224, 231, 255)
	} else {
		pdf.SetFillColor(243, 244, 246)
	}
	pdf.CellFormat(55, 8, label, "1", 0, "", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, value, "1", 1, "", false, 0, "")
}

func addSeverityRow(pdf *gofpdf.Fpdf, severity string) {
	rgb, ok := severityColors[severity]
	if !ok {
		rgb = [3]int{128, 128, 128}
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(224, 231, 255)
	pdf.CellFormat(55, 8, "Severity Grade:", "1", 0, "", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 8, severity, "1", 1, "", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

package Controllers

import (
	"net/http"
	"strconv"
	"time"

	"ChestVision/Models"

	"github.com/gin-gonic/gin"
)

func FetchRecords(c *gin.Context) {
	doctorID := getDoctorID(c)

	analyses, err := Models.FetchAnalyses(doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch records"})
		return
	}

	records := make([]gin.H, 0, len(analyses))
	for _, analysis := range analyses {
		records = append(records, gin.H{
			"id":               analysis.ID,
			"patient_name":     analysis.Patient.Name,
			"patient_age":      analysis.Patient.Age,
			"patient_gender":   analysis.Patient.Gender,
			"disease":          analysis.Disease,
			"severity":         analysis.Severity,
			"confidence":       analysis.Confidence,
			"timestamp":        analysis.CreatedAt.Format(time.RFC3339),
			"report_available": analysis.ReportPath != "",
		})
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

func AnalysisDetail(c *gin.Context) {
	doctorID := getDoctorID(c)

	analysisID, err := strconv.ParseUint(c.Param("analysis_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid analysis id"})
		return
	}

	analysis, err := Models.GetAnalysisForDoctor(uint(analysisID), doctorID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Analysis not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patient": gin.H{
			"name":            analysis.Patient.Name,
			"age":             analysis.Patient.Age,
			"gender":          analysis.Patient.Gender,
			"medical_history": analysis.Patient.MedicalHistory,
		},
		"analysis": gin.H{
			"disease":    analysis.Disease,
			"severity":   analysis.Severity,
			"confidence": analysis.Confidence,
			"symptoms":   analysis.Symptoms,
			"vital_signs": gin.H{
				"temperature":       analysis.Temperature,
				"oxygen_saturation": analysis.OxygenSaturation,
				"heart_rate":        analysis.HeartRate,
				"respiratory_rate":  analysis.RespiratoryRate,
			},
			"recommendations":   analysis.Recommendations,
			"timestamp":         analysis.CreatedAt.Format(time.RFC3339),
			"gradcam_available": analysis.GradcamPath != "",
		},
	})
}

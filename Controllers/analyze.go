package Controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ChestVision/Inference"
	"ChestVision/Models"
	"ChestVision/Reports"
	"ChestVision/SSE"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Predictor stands in for the pretrained model. Swappable so tests can pin
// the prediction.
var Predictor Inference.Predictor = Inference.NewEngine()

const reportsDir = "reports"

func Analyze(c *gin.Context) {
	doctorID := getDoctorID(c)

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "An X-ray image is required"})
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Uploaded file must be an image"})
		return
	}

	patientName := c.PostForm("patient_name")
	gender := c.PostForm("patient_gender")
	symptoms := c.PostForm("symptoms")
	if patientName == "" || gender == "" || symptoms == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "patient_name, patient_gender and symptoms are required"})
		return
	}
	age, err := strconv.Atoi(c.PostForm("patient_age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "patient_age must be a number"})
		return
	}
	medicalHistory := c.PostForm("medical_history")

	temperature, err := optionalFloat(c, "temperature")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "temperature must be a number"})
		return
	}
	oxygenSaturation, err := optionalInt(c, "oxygen_saturation")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "oxygen_saturation must be a number"})
		return
	}
	heartRate, err := optionalInt(c, "heart_rate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "heart_rate must be a number"})
		return
	}
	respiratoryRate, err := optionalInt(c, "respiratory_rate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "respiratory_rate must be a number"})
		return
	}

	imagePath := filepath.Join("uploads", uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, imagePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to save the uploaded image"})
		return
	}

	prediction, err := Predictor.Predict(imagePath)
	if err != nil {
		os.Remove(imagePath)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Analysis failed: %v", err)})
		return
	}

	patient, err := Models.FindOrCreatePatient(patientName, age, gender, medicalHistory)
	if err != nil {
		os.Remove(imagePath)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to store patient"})
		return
	}

	analysis := Models.Analysis{
		PatientID:        patient.ID,
		DoctorID:         doctorID,
		Disease:          prediction.Disease,
		Severity:         prediction.Severity,
		Confidence:       prediction.Confidence,
		Symptoms:         symptoms,
		Temperature:      temperature,
		OxygenSaturation: oxygenSaturation,
		HeartRate:        heartRate,
		RespiratoryRate:  respiratoryRate,
		Recommendations:  strings.Join(prediction.Recommendations, ", "),
		ImagePath:        imagePath,
		GradcamPath:      prediction.GradcamPath,
	}
	if err := Models.DB.Create(&analysis).Error; err != nil {
		os.Remove(imagePath)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to store analysis"})
		return
	}

	doctor, err := Models.GetDoctorByID(doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	reportPath, err := Reports.Generate(reportsDir, analysis, patient, doctor, prediction)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Report generation failed: %v", err)})
		return
	}
	if err := Models.DB.Model(&analysis).Update("report_path", reportPath).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to store report path"})
		return
	}

	SSE.NotifyRecordsChanged()

	c.JSON(http.StatusOK, gin.H{
		"analysis_id":      analysis.ID,
		"disease":          prediction.Disease,
		"severity":         prediction.Severity,
		"confidence":       prediction.Confidence,
		"affected_regions": prediction.AffectedRegions,
		"recommendations":  prediction.Recommendations,
		"gradcam_image":    prediction.GradcamPath,
		"report_path":      reportPath,
		"timestamp":        analysis.CreatedAt.Format(time.RFC3339),
	})
}

// optionalFloat reads a form field that may be absent. Blank is nil, never
// zero.
func optionalFloat(c *gin.Context, field string) (*float64, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func optionalInt(c *gin.Context, field string) (*int, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

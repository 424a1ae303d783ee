package Controllers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"ChestVision/Models"

	"github.com/gin-gonic/gin"
	"github.com/go-gomail/gomail"
)

func DownloadReport(c *gin.Context) {
	doctorID := getDoctorID(c)

	analysisID, err := strconv.ParseUint(c.Param("analysis_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid analysis id"})
		return
	}

	analysis, err := Models.GetAnalysisForDoctor(uint(analysisID), doctorID)
	if err != nil || analysis.ReportPath == "" {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Report not found"})
		return
	}
	if _, err := os.Stat(analysis.ReportPath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Report file not found"})
		return
	}

	filename := fmt.Sprintf("report_%s_%s.pdf",
		analysis.Patient.Name, analysis.CreatedAt.Format("20060102"))
	c.FileAttachment(analysis.ReportPath, filename)
}

// EmailReport mails the stored PDF to a recipient chosen by the doctor.
func EmailReport(c *gin.Context) {
	doctorID := getDoctorID(c)

	var input struct {
		AnalysisID uint   `json:"analysis_id" binding:"required"`
		To         string `json:"to" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	analysis, err := Models.GetAnalysisForDoctor(input.AnalysisID, doctorID)
	if err != nil || analysis.ReportPath == "" {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Report not found"})
		return
	}

	report, err := os.ReadFile(analysis.ReportPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Report file not found"})
		return
	}

	body := fmt.Sprintf("Attached is the AI-assisted chest X-ray analysis report for %s.",
		analysis.Patient.Name)
	attachmentName := fmt.Sprintf("medical_report_%d.pdf", analysis.ID)
	if err := sendReportEmail(body, input.To, attachmentName, report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report sent"})
}

// sendReportEmail sends an email with the report attached
func sendReportEmail(msg, email, attachmentName string, attachmentData []byte) error {
	// SMTP server configuration
	senderEmail := os.Getenv("SMTP_EMAIL")
	senderPassword := os.Getenv("SMTP_PASSWORD")

	// Compose email message
	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Chest X-ray analysis report")
	m.SetBody("text/plain", msg)

	// Add attachment
	m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachmentData)
		return err
	}))

	// Dial to SMTP server and send email
	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}

package Controllers

import (
	"net/http"
	"os"
	"strconv"

	"ChestVision/Models"

	"github.com/gin-gonic/gin"
)

// GetImage serves either the uploaded X-ray or its Grad-CAM heatmap.
func GetImage(c *gin.Context) {
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

	imagePath := analysis.GradcamPath
	if c.Param("image_type") == "original" {
		imagePath = analysis.ImagePath
	}

	if imagePath == "" {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Image not found"})
		return
	}
	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Image not found"})
		return
	}

	c.File(imagePath)
}

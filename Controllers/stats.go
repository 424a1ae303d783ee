package Controllers

import (
	"net/http"

	"ChestVision/Models"

	"github.com/gin-gonic/gin"
)

const recentWindow = 5

func Stats(c *gin.Context) {
	doctorID := getDoctorID(c)

	total, err := Models.CountAnalyses(doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to count analyses"})
		return
	}

	distribution, err := Models.DiseaseDistribution(doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to compute disease distribution"})
		return
	}

	recent, err := Models.RecentAnalysesCount(doctorID, recentWindow)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to count recent analyses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_analyses":       total,
		"disease_distribution": distribution,
		"recent_count":         recent,
	})
}

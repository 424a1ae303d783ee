package Controllers

import (
	"github.com/gin-gonic/gin"
)

// getDoctorID reads the doctor id the SetDoctor middleware resolved. Zero
// means unauthenticated, which the auth middleware already rejected.
func getDoctorID(c *gin.Context) uint {
	doctorID, exists := c.Get("doctorID")
	if !exists {
		return 0
	}
	id, ok := doctorID.(uint)
	if !ok {
		return 0
	}
	return id
}

package Controllers

import (
	"net/http"

	"ChestVision/Cache"
	"ChestVision/Models"
	"ChestVision/Utils/Token"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Specialty     string `json:"specialty" binding:"required"`
	LicenseNumber string `json:"license_number" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if Cache.IsRateLimited(input.Email) {
		c.JSON(http.StatusTooManyRequests, gin.H{"detail": "Too many login attempts. Please try again later."})
		return
	}

	uid, token, err := Models.LoginCheck(input.Email, input.Password)

	if err != nil {
		Cache.RecordFailedAttempt(input.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		return
	}

	Cache.ClearAttempts(input.Email)

	doctor, _ := Models.GetDoctorByID(uid)

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"doctor_name":  doctor.Name,
		"doctor_id":    doctor.ID,
	})
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	taken, err := Models.EmailTaken(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to check email"})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		return
	}

	doctor := Models.Doctor{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Specialty:     input.Specialty,
		LicenseNumber: input.LicenseNumber,
	}

	if _, err := doctor.SaveDoctor(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	token, err := Token.GenerateToken(doctor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"doctor_name":  doctor.Name,
		"doctor_id":    doctor.ID,
	})
}

// Logout keeps the presented token on a denylist until its natural expiry.
func Logout(c *gin.Context) {
	token := Token.ExtractToken(c)
	if err := Cache.RevokeToken(token, Token.RemainingLife(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func CurrentUser(c *gin.Context) {
	doctorID := getDoctorID(c)

	doctor, err := Models.GetDoctorByID(doctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             doctor.ID,
		"name":           doctor.Name,
		"email":          doctor.Email,
		"specialty":      doctor.Specialty,
		"license_number": doctor.LicenseNumber,
	})
}

package Routes

import (
	"ChestVision/Controllers"
	"ChestVision/Middleware"
	"ChestVision/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api/auth")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
	}

	// Authorized routes
	authorized := router.Group("/api")
	authorized.Use(Middleware.JwtAuthMiddleware())
	authorized.Use(Middleware.SetDoctor())
	{
		// Session-related routes
		authorized.GET("/auth/me", Controllers.CurrentUser)
		authorized.POST("/auth/logout", Controllers.Logout)

		// Analysis-related routes
		authorized.POST("/analyze", Controllers.Analyze)
		authorized.GET("/records", Controllers.FetchRecords)
		authorized.GET("/records/:analysis_id", Controllers.AnalysisDetail)
		authorized.GET("/stats", Controllers.Stats)
		authorized.GET("/image/:image_type/:analysis_id", Controllers.GetImage)

		// Report-related routes
		authorized.GET("/download/report/:analysis_id", Controllers.DownloadReport)
		authorized.POST("/report/email", Controllers.EmailReport)

		// Export-related routes
		authorized.GET("/export/records", Controllers.ExportRecords)

		// SSE (Server-Sent Events) route
		authorized.GET("/events", SSE.RequestSSE)
	}
}

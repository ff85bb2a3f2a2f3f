package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"faculty-performance-api/controllers"
)

// Controllers bundles the handler set SetupRoutes wires up.
type Controllers struct {
	Auth    *controllers.AuthController
	Faculty *controllers.FacultyController
	Admin   *controllers.AdminController
}

func SetupRoutes(router *gin.Engine, ctl Controllers) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Faculty Performance API is running",
		})
	})

	// Prometheus exposition
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		faculty := api.Group("/faculty")
		{
			faculty.POST("/login", ctl.Auth.FacultyLogin)
			faculty.POST("/signup", ctl.Auth.FacultySignup)
			faculty.POST("/reset-password", ctl.Auth.FacultyResetPassword)

			faculty.POST("/submit", ctl.Faculty.SubmitProof)
			faculty.POST("/save-draft", ctl.Faculty.SaveDraft)
			faculty.DELETE("/submission/:faculty_id", ctl.Faculty.DeleteSubmission)
			faculty.GET("/proof/:faculty_id", ctl.Faculty.GetProof)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", ctl.Auth.AdminLogin)
			admin.POST("/signup", ctl.Auth.AdminSignup)
			admin.POST("/reset-password", ctl.Auth.AdminResetPassword)

			admin.GET("/faculty-submissions", ctl.Admin.GetSubmittedFaculty)
			admin.GET("/proofs/:faculty_id", ctl.Admin.GetProofByFaculty)
			admin.POST("/submit-score", ctl.Admin.SubmitScores)
		}

		// Legacy aliases kept for older SPA builds that talk to /api/auth.
		auth := api.Group("/auth")
		{
			auth.POST("/faculty/login", ctl.Auth.FacultyLogin)
			auth.POST("/admin/login", ctl.Auth.AdminLogin)
			auth.POST("/faculty/reset-password", ctl.Auth.FacultyResetPassword)
			auth.POST("/admin/reset-password", ctl.Auth.AdminResetPassword)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Route not found"})
	})
}

// Package routes wires controllers onto the gin router
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/controllers"
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	studentController *controllers.StudentController,
	driveController *controllers.DriveController,
	queryController *controllers.QueryController,
	journeyController *controllers.JourneyController,
	commentController *controllers.CommentController,
	companyController *controllers.CompanyController,
	portfolioController *controllers.PortfolioController,
	skillController *controllers.SkillController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.Use(middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.RegisterStudent)
		auth.POST("/login", authController.LoginStudent)
		auth.POST("/admin/register", authController.RegisterAdmin)
		auth.POST("/admin/login", authController.LoginAdmin)
	}

	// --- Public company reads ---
	companies := router.Group("/companies")
	{
		companies.GET("/all", companyController.GetAll)
		companies.GET("/company/:id", companyController.GetByID)
	}

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Admin area
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/dashboard", adminController.Dashboard)
			admin.GET("/students", adminController.FilterStudents)
			admin.POST("/drives", driveController.Create)
			admin.PUT("/drives/:driveId", driveController.Update)
			admin.DELETE("/drives/:driveId", driveController.Delete)
		}

		// Company writes stay under /companies but require the admin role
		companiesProtected := authenticated.Group("/companies")
		companiesProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			companiesProtected.POST("/company", companyController.Create)
			companiesProtected.PUT("/company/:id", companyController.Update)
			companiesProtected.DELETE("/company/:id", companyController.Delete)
		}

		// Drive browsing
		drives := authenticated.Group("/drives")
		{
			drives.GET("/drives", driveController.GetAll)
			drives.GET("/drive/:driveId", driveController.GetDetail)
		}

		// Queries
		queries := authenticated.Group("/queries")
		{
			queries.GET("/drives/:driveId/queries", queryController.GetByDrive)
			queries.POST("/drives/:driveId/queries", queryController.Create)
			queries.PUT("/queries/:queryId", queryController.Update)
			queries.DELETE("/queries/:queryId", queryController.Delete)
		}

		// Journeys
		journeys := authenticated.Group("/journeys")
		{
			journeys.GET("/drives/:driveId/journeys", journeyController.GetByDrive)
			journeys.GET("/drives/:driveId/journeys/all", journeyController.GetAllByDrive)
			journeys.POST("/drives/:driveId/journeys", journeyController.Create)
			journeys.PUT("/journeys/:journeyId", journeyController.Update)
			journeys.DELETE("/journeys/:journeyId", journeyController.Delete)
		}

		// Comments
		comments := authenticated.Group("/comments")
		{
			comments.GET("/journeys/:journeyId/comments", commentController.GetByJourney)
			comments.POST("/journeys/:journeyId/comments", commentController.Create)
			comments.PUT("/comments/:commentId", commentController.Update)
			comments.DELETE("/comments/:commentId", commentController.Delete)
		}

		// Student dashboard
		students := authenticated.Group("/students")
		{
			students.GET("/dashboard", studentController.Dashboard)
		}

		// Portfolios
		portfolio := authenticated.Group("/portfolio")
		{
			portfolio.GET("/portfolio/me", portfolioController.GetOwn)
			portfolio.PUT("/portfolio/me", portfolioController.UpdateOwn)
			portfolio.GET("/portfolio/:studentId", portfolioController.GetByID)
			portfolio.DELETE("/portfolio/:studentId", portfolioController.Delete)
		}

		// Skill catalog and claims
		skills := authenticated.Group("/skills")
		{
			skills.GET("", skillController.GetAll)
			skills.POST("", skillController.Create)
			skills.POST("/bulk", skillController.CreateBulk)
			skills.DELETE("/:id", skillController.Delete)
		}

		studentSkills := authenticated.Group("/student-skills")
		{
			studentSkills.POST("", skillController.ClaimSkill)
			studentSkills.PUT("/:id", skillController.UpdateClaim)
			studentSkills.DELETE("/:id", skillController.DeleteClaim)
		}
	}
}

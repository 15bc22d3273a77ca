package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/services"
	"github.com/campushire/placementhub/internal/middleware"
)

// StudentController handles the student landing page
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Dashboard returns the student landing-page feeds
// @Summary Student dashboard
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Upcoming drives and recent public activity"
// @Failure 403 {object} dto.ErrorResponse "Student access required"
// @Router /students/dashboard [get]
func (c *StudentController) Dashboard(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	dashboard, err := c.studentService.Dashboard(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":   "Dashboard retrieved successfully",
		"dashboard": dashboard,
	})
}

package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/services"
	"github.com/campushire/placementhub/internal/middleware"
)

// AdminController handles the admin dashboard and the student roster
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Dashboard returns the admin landing-page counters
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Dashboard counters"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	dashboard, err := c.adminService.Dashboard(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":   "Dashboard retrieved successfully",
		"dashboard": dashboard,
	})
}

// FilterStudents returns the roster matching the query parameters.
// cgpaMin, cgpaMax, department, year and skills (comma separated names) are
// honored; arrearsMax is accepted and ignored, there is no such column.
// @Summary Filter the student roster
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param cgpaMin query number false "Minimum CGPA"
// @Param cgpaMax query number false "Maximum CGPA"
// @Param department query string false "Department"
// @Param year query string false "Year (I-IV)"
// @Param skills query string false "Skill names, comma separated"
// @Success 200 {object} map[string]interface{} "Matching students"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /admin/students [get]
func (c *AdminController) FilterStudents(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var filter dto.StudentFilter
	if v := ctx.Query("cgpaMin"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.CGPAMin = &min
		}
	}
	if v := ctx.Query("cgpaMax"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.CGPAMax = &max
		}
	}
	filter.Department = ctx.Query("department")
	filter.Year = ctx.Query("year")
	if v := ctx.Query("skills"); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				filter.Skills = append(filter.Skills, name)
			}
		}
	}

	students, err := c.adminService.FilterStudents(ctx.Request.Context(), actor, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Students retrieved successfully",
		"students": students,
	})
}

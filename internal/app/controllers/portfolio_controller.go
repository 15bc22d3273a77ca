package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/services"
	"github.com/campushire/placementhub/internal/middleware"
)

// PortfolioController handles student profile operations
type PortfolioController struct {
	portfolioService *services.PortfolioService
}

// NewPortfolioController creates a new PortfolioController
func NewPortfolioController(portfolioService *services.PortfolioService) *PortfolioController {
	return &PortfolioController{portfolioService: portfolioService}
}

// GetOwn returns the calling student's profile with skills
func (c *PortfolioController) GetOwn(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	student, err := c.portfolioService.GetOwn(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Portfolio retrieved successfully",
		"student": student,
	})
}

// GetByID returns any student's profile with skills
func (c *PortfolioController) GetByID(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	student, err := c.portfolioService.GetByID(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Portfolio retrieved successfully",
		"student": student,
	})
}

// UpdateOwn merges the allow-listed profile fields onto the calling student
func (c *PortfolioController) UpdateOwn(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.portfolioService.UpdateOwn(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Portfolio updated successfully",
		"student": student,
	})
}

// Delete removes a student account (owner or admin)
func (c *PortfolioController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.portfolioService.Delete(ctx.Request.Context(), actor, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/services"
	"github.com/campushire/placementhub/internal/middleware"
)

// JourneyController handles interview journey operations
type JourneyController struct {
	journeyService *services.JourneyService
}

// NewJourneyController creates a new JourneyController
func NewJourneyController(journeyService *services.JourneyService) *JourneyController {
	return &JourneyController{journeyService: journeyService}
}

// GetByDrive lists the approved journeys of a drive
// @Summary List approved journeys
// @Tags journeys
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID"
// @Success 200 {object} map[string]interface{} "Approved journeys"
// @Router /journeys/drives/{driveId}/journeys [get]
func (c *JourneyController) GetByDrive(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	journeys, err := c.journeyService.GetByDrive(ctx.Request.Context(), driveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Journeys retrieved successfully",
		"journeys": journeys,
	})
}

// GetAllByDrive lists every journey of a drive, the moderation queue (admin)
func (c *JourneyController) GetAllByDrive(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	journeys, err := c.journeyService.GetAllByDrive(ctx.Request.Context(), actor, driveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Journeys retrieved successfully",
		"journeys": journeys,
	})
}

// Create records a journey against a drive
func (c *JourneyController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	var req dto.CreateJourneyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	journey, err := c.journeyService.Create(ctx.Request.Context(), actor, driveID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Journey created successfully",
		"journey": journey,
	})
}

// Update edits a journey; approval changes are honored for admins only
func (c *JourneyController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	journeyID, ok := parseIDParam(ctx, "journeyId")
	if !ok {
		return
	}

	var req dto.UpdateJourneyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	journey, err := c.journeyService.Update(ctx.Request.Context(), actor, journeyID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Journey updated successfully",
		"journey": journey,
	})
}

// Delete removes a journey and its comments (owner or admin)
func (c *JourneyController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	journeyID, ok := parseIDParam(ctx, "journeyId")
	if !ok {
		return
	}

	if err := c.journeyService.Delete(ctx.Request.Context(), actor, journeyID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Journey deleted successfully"})
}

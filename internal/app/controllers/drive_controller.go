package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/services"
	"github.com/campushire/placementhub/internal/middleware"
)

// DriveController handles placement drive operations
type DriveController struct {
	driveService *services.DriveService
}

// NewDriveController creates a new DriveController
func NewDriveController(driveService *services.DriveService) *DriveController {
	return &DriveController{driveService: driveService}
}

// GetAll lists every drive with its company summary
// @Summary List placement drives
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Drives ordered by registration deadline"
// @Router /drives/drives [get]
func (c *DriveController) GetAll(ctx *gin.Context) {
	drives, err := c.driveService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Drives retrieved successfully",
		"drives":  drives,
	})
}

// GetDetail returns one drive with company, public queries and approved journeys
// @Summary Get drive detail
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID"
// @Success 200 {object} map[string]interface{} "Drive detail"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/drive/{driveId} [get]
func (c *DriveController) GetDetail(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	detail, err := c.driveService.GetDetail(ctx.Request.Context(), driveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Drive retrieved successfully",
		"drive":   detail,
	})
}

// Create opens a new drive
// @Summary Create a placement drive
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDriveRequest true "Drive data"
// @Success 201 {object} map[string]interface{} "Drive created"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /admin/drives [post]
func (c *DriveController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateDriveRequest
	if !bindJSON(ctx, &req) {
		return
	}

	drive, err := c.driveService.Create(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Drive created successfully",
		"drive":   drive,
	})
}

// Update merges fields onto a drive
func (c *DriveController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	var req dto.UpdateDriveRequest
	if !bindJSON(ctx, &req) {
		return
	}

	drive, err := c.driveService.Update(ctx.Request.Context(), actor, driveID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Drive updated successfully",
		"drive":   drive,
	})
}

// Delete removes a drive
func (c *DriveController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	if err := c.driveService.Delete(ctx.Request.Context(), actor, driveID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Drive deleted successfully"})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/services"
	"github.com/campushire/placementhub/internal/middleware"
)

// QueryController handles drive query operations
type QueryController struct {
	queryService *services.QueryService
}

// NewQueryController creates a new QueryController
func NewQueryController(queryService *services.QueryService) *QueryController {
	return &QueryController{queryService: queryService}
}

// GetByDrive lists the queries of a drive. Defaults to public rows;
// ?public=false asks for the private moderation view, which is admin only.
// @Summary List drive queries
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID"
// @Param public query bool false "Set false for the private listing (admin)"
// @Success 200 {object} map[string]interface{} "Queries"
// @Failure 403 {object} dto.ErrorResponse "Private listing is admin only"
// @Router /queries/drives/{driveId}/queries [get]
func (c *QueryController) GetByDrive(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	public := ctx.DefaultQuery("public", "true") != "false"

	queries, err := c.queryService.GetByDrive(ctx.Request.Context(), actor, driveID, public)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Queries retrieved successfully",
		"queries": queries,
	})
}

// Create raises a query against a drive
func (c *QueryController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	var req dto.CreateQueryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	query, err := c.queryService.Create(ctx.Request.Context(), actor, driveID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Query created successfully",
		"query":   query,
	})
}

// Update answers or publishes a query (admin)
func (c *QueryController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	queryID, ok := parseIDParam(ctx, "queryId")
	if !ok {
		return
	}

	var req dto.UpdateQueryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	query, err := c.queryService.Update(ctx.Request.Context(), actor, queryID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Query updated successfully",
		"query":   query,
	})
}

// Delete removes a query (owner or admin)
func (c *QueryController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	queryID, ok := parseIDParam(ctx, "queryId")
	if !ok {
		return
	}

	if err := c.queryService.Delete(ctx.Request.Context(), actor, queryID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Query deleted successfully"})
}

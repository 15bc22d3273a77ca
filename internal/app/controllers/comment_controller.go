package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/services"
	"github.com/campushire/placementhub/internal/middleware"
)

// CommentController handles journey comment operations
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// GetByJourney lists the comments of a journey
func (c *CommentController) GetByJourney(ctx *gin.Context) {
	journeyID, ok := parseIDParam(ctx, "journeyId")
	if !ok {
		return
	}

	comments, err := c.commentService.GetByJourney(ctx.Request.Context(), journeyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Comments retrieved successfully",
		"comments": comments,
	})
}

// Create posts a comment on a journey
func (c *CommentController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	journeyID, ok := parseIDParam(ctx, "journeyId")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	comment, err := c.commentService.Create(ctx.Request.Context(), actor, journeyID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

// Update moderates a comment (admin)
func (c *CommentController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	commentID, ok := parseIDParam(ctx, "commentId")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	comment, err := c.commentService.Update(ctx.Request.Context(), actor, commentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Comment updated successfully",
		"comment": comment,
	})
}

// Delete removes a comment (owner or admin)
func (c *CommentController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	commentID, ok := parseIDParam(ctx, "commentId")
	if !ok {
		return
	}

	if err := c.commentService.Delete(ctx.Request.Context(), actor, commentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

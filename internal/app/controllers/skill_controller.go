package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/services"
	"github.com/campushire/placementhub/internal/middleware"
)

// SkillController handles the skill catalog and student skill claims
type SkillController struct {
	skillService *services.SkillService
}

// NewSkillController creates a new SkillController
func NewSkillController(skillService *services.SkillService) *SkillController {
	return &SkillController{skillService: skillService}
}

// GetAll lists the skill catalog
func (c *SkillController) GetAll(ctx *gin.Context) {
	skills, err := c.skillService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Skills retrieved successfully",
		"skills":  skills,
	})
}

// Create adds a catalog entry (admin)
func (c *SkillController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.AddSkillRequest
	if !bindJSON(ctx, &req) {
		return
	}

	skill, err := c.skillService.Create(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Skill created successfully",
		"skill":   skill,
	})
}

// CreateBulk adds many catalog entries at once, skipping existing names (admin)
func (c *SkillController) CreateBulk(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var reqs []dto.AddSkillRequest
	if !bindJSON(ctx, &reqs) {
		return
	}

	skills, err := c.skillService.CreateBulk(ctx.Request.Context(), actor, reqs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Skills created successfully",
		"skills":  skills,
	})
}

// Delete removes a catalog entry (admin)
func (c *SkillController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.skillService.Delete(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}

// ClaimSkill attaches a catalog skill to the calling student
func (c *SkillController) ClaimSkill(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateStudentSkillRequest
	if !bindJSON(ctx, &req) {
		return
	}

	claim, err := c.skillService.ClaimSkill(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":      "Skill claimed successfully",
		"studentSkill": claim,
	})
}

// UpdateClaim merges fields onto a claim (owner or admin)
func (c *SkillController) UpdateClaim(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentSkillRequest
	if !bindJSON(ctx, &req) {
		return
	}

	claim, err := c.skillService.UpdateClaim(ctx.Request.Context(), actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "Skill claim updated successfully",
		"studentSkill": claim,
	})
}

// DeleteClaim removes a claim (owner or admin)
func (c *SkillController) DeleteClaim(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.skillService.DeleteClaim(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Skill claim deleted successfully"})
}

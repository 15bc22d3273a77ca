package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/services"
	"github.com/campushire/placementhub/internal/middleware"
)

// CompanyController handles company catalog operations
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// GetAll lists every company. Public.
func (c *CompanyController) GetAll(ctx *gin.Context) {
	companies, err := c.companyService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":   "Companies retrieved successfully",
		"companies": companies,
	})
}

// GetByID retrieves one company. Public.
func (c *CompanyController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	company, err := c.companyService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Company retrieved successfully",
		"company": company,
	})
}

// Create adds a company (admin)
func (c *CompanyController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	company, err := c.companyService.Create(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Company created successfully",
		"company": company,
	})
}

// Update merges fields onto a company (admin)
func (c *CompanyController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	company, err := c.companyService.Update(ctx.Request.Context(), actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Company updated successfully",
		"company": company,
	})
}

// Delete removes a company (admin)
func (c *CompanyController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.companyService.Delete(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}

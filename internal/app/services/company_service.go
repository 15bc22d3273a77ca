package services

import (
	"context"

	appauth "github.com/campushire/placementhub/internal/app/auth"
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/repositories"
	"github.com/campushire/placementhub/internal/pkg/logger"
)

// CompanyService handles the company catalog
type CompanyService struct {
	companies repositories.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companies repositories.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

// GetAll lists all companies. Open to unauthenticated callers.
func (s *CompanyService) GetAll(ctx context.Context) ([]models.Company, error) {
	return s.companies.GetAll(ctx)
}

// GetByID retrieves one company. Open to unauthenticated callers.
func (s *CompanyService) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	return s.companies.GetByID(ctx, id)
}

// Create adds a company to the catalog
func (s *CompanyService) Create(ctx context.Context, actor appauth.Actor, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	company := &models.Company{
		Name:                req.Name,
		Website:             req.Website,
		ContactPerson:       req.ContactPerson,
		ContactEmail:        req.ContactEmail,
		EligibilityCriteria: req.EligibilityCriteria,
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	logger.Info().Int64("company_id", company.ID).Str("name", company.Name).Msg("Company created")
	return company, nil
}

// Update merges the provided fields onto an existing company
func (s *CompanyService) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Website != nil {
		company.Website = req.Website
	}
	if req.ContactPerson != nil {
		company.ContactPerson = req.ContactPerson
	}
	if req.ContactEmail != nil {
		company.ContactEmail = req.ContactEmail
	}
	if req.EligibilityCriteria != nil {
		company.EligibilityCriteria = req.EligibilityCriteria
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// Delete removes a company
func (s *CompanyService) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	if _, err := s.companies.GetByID(ctx, id); err != nil {
		return err
	}

	if err := appauth.RequireAdmin(actor); err != nil {
		return err
	}

	return s.companies.Delete(ctx, id)
}

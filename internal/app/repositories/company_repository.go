package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
	"github.com/campushire/placementhub/internal/pkg/dberrors"
)

// CompanyRepository handles database operations for companies
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetAll(ctx context.Context) ([]models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id int64) error
}

type companyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) CompanyRepository {
	return &companyRepository{db: db}
}

// Create inserts a new company row
func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (name, website, contact_person, contact_email, eligibility_criteria)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		company.Name, company.Website, company.ContactPerson,
		company.ContactEmail, company.EligibilityCriteria,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCompanyAlreadyExists
		}
		return fmt.Errorf("error creating company: %w", err)
	}

	return nil
}

// GetByID retrieves a company by ID
func (r *companyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	query := `
		SELECT id, name, website, contact_person, contact_email, eligibility_criteria,
		       created_at, updated_at
		FROM companies WHERE id = $1
	`

	var c models.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Website, &c.ContactPerson, &c.ContactEmail,
		&c.EligibilityCriteria, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}

	return &c, nil
}

// GetAll retrieves all companies ordered by name
func (r *companyRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	query := `
		SELECT id, name, website, contact_person, contact_email, eligibility_criteria,
		       created_at, updated_at
		FROM companies ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Website, &c.ContactPerson, &c.ContactEmail,
			&c.EligibilityCriteria, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

// Update writes the mutable columns of an already-loaded company
func (r *companyRepository) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies
		SET name = $1, website = $2, contact_person = $3, contact_email = $4,
		    eligibility_criteria = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		company.Name, company.Website, company.ContactPerson,
		company.ContactEmail, company.EligibilityCriteria, company.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCompanyAlreadyExists
		}
		return fmt.Errorf("error updating company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}

// Delete deletes a company by ID
func (r *companyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}

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

// SkillRepository handles database operations for the skill catalog
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	CreateBulk(ctx context.Context, skills []models.Skill) ([]models.Skill, error)
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	GetAll(ctx context.Context) ([]models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

type skillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *pgxpool.Pool) SkillRepository {
	return &skillRepository{db: db}
}

// Create inserts a new catalog entry
func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	query := `INSERT INTO skills (name, category) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRow(ctx, query, skill.Name, skill.Category).Scan(&skill.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSkillAlreadyExists
		}
		return fmt.Errorf("error creating skill: %w", err)
	}

	return nil
}

// CreateBulk inserts many catalog entries at once, skipping names that
// already exist. Returns the rows actually inserted.
func (r *skillRepository) CreateBulk(ctx context.Context, skills []models.Skill) ([]models.Skill, error) {
	query := `
		INSERT INTO skills (name, category)
		SELECT unnest($1::text[]), unnest($2::text[])
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name, category
	`

	names := make([]string, len(skills))
	categories := make([]*string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
		categories[i] = s.Category
	}

	rows, err := r.db.Query(ctx, query, names, categories)
	if err != nil {
		return nil, fmt.Errorf("error creating skills: %w", err)
	}
	defer rows.Close()

	var inserted []models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		inserted = append(inserted, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return inserted, nil
}

// GetByID retrieves a catalog entry by ID
func (r *skillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	var s models.Skill
	err := r.db.QueryRow(ctx, `SELECT id, name, category FROM skills WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, fmt.Errorf("error retrieving skill: %w", err)
	}

	return &s, nil
}

// GetAll retrieves the full catalog ordered by name
func (r *skillRepository) GetAll(ctx context.Context) ([]models.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving skills: %w", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return skills, nil
}

// Delete deletes a catalog entry by ID
func (r *skillRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting skill: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSkillNotFound
	}

	return nil
}

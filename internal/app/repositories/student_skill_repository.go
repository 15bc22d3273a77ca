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

// StudentSkillRepository handles database operations for claimed skills
type StudentSkillRepository interface {
	Create(ctx context.Context, claim *models.StudentSkill) error
	GetByID(ctx context.Context, id int64) (*models.StudentSkill, error)
	GetByStudent(ctx context.Context, studentID int64) ([]models.StudentSkill, error)
	Update(ctx context.Context, claim *models.StudentSkill) error
	Delete(ctx context.Context, id int64) error
}

type studentSkillRepository struct {
	db *pgxpool.Pool
}

// NewStudentSkillRepository creates a new student skill repository
func NewStudentSkillRepository(db *pgxpool.Pool) StudentSkillRepository {
	return &studentSkillRepository{db: db}
}

const studentSkillSelect = `
	SELECT ss.id, ss.student_id, ss.skill_id, ss.proof_url, ss.description,
	       ss.created_at, ss.updated_at, sk.id, sk.name, sk.category
	FROM student_skills ss
	JOIN skills sk ON ss.skill_id = sk.id
`

func scanStudentSkill(row pgx.Row) (*models.StudentSkill, error) {
	var ss models.StudentSkill
	var sk models.Skill

	err := row.Scan(
		&ss.ID, &ss.StudentID, &ss.SkillID, &ss.ProofURL, &ss.Description,
		&ss.CreatedAt, &ss.UpdatedAt, &sk.ID, &sk.Name, &sk.Category,
	)
	if err != nil {
		return nil, err
	}

	ss.Skill = &sk
	return &ss, nil
}

// Create inserts a new claim row
func (r *studentSkillRepository) Create(ctx context.Context, claim *models.StudentSkill) error {
	query := `
		INSERT INTO student_skills (student_id, skill_id, proof_url, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		claim.StudentID, claim.SkillID, claim.ProofURL, claim.Description,
	).Scan(&claim.ID, &claim.CreatedAt, &claim.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSkillNotFound
		}
		return fmt.Errorf("error creating student skill: %w", err)
	}

	return nil
}

// GetByID retrieves a claim with its catalog entry
func (r *studentSkillRepository) GetByID(ctx context.Context, id int64) (*models.StudentSkill, error) {
	ss, err := scanStudentSkill(r.db.QueryRow(ctx, studentSkillSelect+` WHERE ss.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentSkillNotFound
		}
		return nil, fmt.Errorf("error retrieving student skill: %w", err)
	}

	return ss, nil
}

// GetByStudent retrieves the claims of one student ordered by skill name
func (r *studentSkillRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.StudentSkill, error) {
	query := studentSkillSelect + ` WHERE ss.student_id = $1 ORDER BY sk.name ASC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student skills: %w", err)
	}
	defer rows.Close()

	var claims []models.StudentSkill
	for rows.Next() {
		ss, err := scanStudentSkill(rows)
		if err != nil {
			return nil, err
		}
		claims = append(claims, *ss)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return claims, nil
}

// Update writes the mutable columns of an already-loaded claim
func (r *studentSkillRepository) Update(ctx context.Context, claim *models.StudentSkill) error {
	query := `
		UPDATE student_skills
		SET skill_id = $1, proof_url = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		claim.SkillID, claim.ProofURL, claim.Description, claim.ID,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSkillNotFound
		}
		return fmt.Errorf("error updating student skill: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentSkillNotFound
	}

	return nil
}

// Delete deletes a claim by ID
func (r *studentSkillRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student_skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student skill: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentSkillNotFound
	}

	return nil
}

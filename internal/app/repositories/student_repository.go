package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
	"github.com/campushire/placementhub/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetWithSkills(ctx context.Context, id int64) (*models.Student, error)
	Filter(ctx context.Context, filter dto.StudentFilter) ([]models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

type studentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = `id, reg_no, name, gender, fathers_name, date_of_birth,
	residential_address, email, mobile, parents_mobile_no, aadhar_card_no, password,
	department, year, section, cgpa, bio, portfolio, github_profile, linkedin_profile,
	profile_picture, is_verified, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.RegNo, &s.Name, &s.Gender, &s.FathersName, &s.DateOfBirth,
		&s.ResidentialAddress, &s.Email, &s.Mobile, &s.ParentsMobileNo, &s.AadharCardNo,
		&s.Password, &s.Department, &s.Year, &s.Section, &s.CGPA, &s.Bio, &s.Portfolio,
		&s.GithubProfile, &s.LinkedinProfile, &s.ProfilePicture, &s.IsVerified,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student row
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (reg_no, name, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_verified, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.RegNo, student.Name, student.Email, student.Password,
	).Scan(&student.ID, &student.IsVerified, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_reg_no_key") {
			return apperrors.ErrRegNoAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByEmail retrieves a student by email for login
func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}

	return student, nil
}

// GetWithSkills retrieves a student together with the claimed skill rows
func (r *studentRepository) GetWithSkills(ctx context.Context, id int64) (*models.Student, error) {
	student, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ss.id, ss.student_id, ss.skill_id, ss.proof_url, ss.description,
		       ss.created_at, ss.updated_at, sk.id, sk.name, sk.category
		FROM student_skills ss
		JOIN skills sk ON ss.skill_id = sk.id
		WHERE ss.student_id = $1
		ORDER BY sk.name
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student skills: %w", err)
	}
	defer rows.Close()

	student.Skills = []models.StudentSkill{}
	for rows.Next() {
		var ss models.StudentSkill
		var sk models.Skill
		if err := rows.Scan(
			&ss.ID, &ss.StudentID, &ss.SkillID, &ss.ProofURL, &ss.Description,
			&ss.CreatedAt, &ss.UpdatedAt, &sk.ID, &sk.Name, &sk.Category,
		); err != nil {
			return nil, err
		}
		ss.Skill = &sk
		student.Skills = append(student.Skills, ss)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return student, nil
}

// Filter retrieves students matching the roster filter. Skill filtering is
// any-of membership by skill name.
func (r *studentRepository) Filter(ctx context.Context, filter dto.StudentFilter) ([]models.Student, error) {
	sel := r.sb.Select(
		"s.id", "s.reg_no", "s.name", "s.gender", "s.fathers_name", "s.date_of_birth",
		"s.residential_address", "s.email", "s.mobile", "s.parents_mobile_no",
		"s.aadhar_card_no", "s.password", "s.department", "s.year", "s.section",
		"s.cgpa", "s.bio", "s.portfolio", "s.github_profile", "s.linkedin_profile",
		"s.profile_picture", "s.is_verified", "s.created_at", "s.updated_at",
	).From("students s")

	where := squirrel.And{}
	if filter.CGPAMin != nil {
		where = append(where, squirrel.GtOrEq{"s.cgpa": *filter.CGPAMin})
	}
	if filter.CGPAMax != nil {
		where = append(where, squirrel.LtOrEq{"s.cgpa": *filter.CGPAMax})
	}
	if filter.Department != "" {
		where = append(where, squirrel.Eq{"s.department": filter.Department})
	}
	if filter.Year != "" {
		where = append(where, squirrel.Eq{"s.year": filter.Year})
	}
	if len(filter.Skills) > 0 {
		sel = sel.
			Join("student_skills ss ON ss.student_id = s.id").
			Join("skills sk ON sk.id = ss.skill_id").
			GroupBy("s.id")
		where = append(where, squirrel.Eq{"sk.name": filter.Skills})
	}

	if len(where) > 0 {
		sel = sel.Where(where)
	}
	sel = sel.OrderBy("s.reg_no ASC")

	sqlStr, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student filter query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error filtering students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update writes the mutable profile columns of an already-loaded row
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET reg_no = $1, name = $2, gender = $3, fathers_name = $4, date_of_birth = $5,
		    residential_address = $6, mobile = $7, parents_mobile_no = $8,
		    aadhar_card_no = $9, department = $10, year = $11, section = $12,
		    cgpa = $13, bio = $14, portfolio = $15, github_profile = $16,
		    linkedin_profile = $17, profile_picture = $18, updated_at = NOW()
		WHERE id = $19
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.RegNo, student.Name, student.Gender, student.FathersName,
		student.DateOfBirth, student.ResidentialAddress, student.Mobile,
		student.ParentsMobileNo, student.AadharCardNo, student.Department,
		student.Year, student.Section, student.CGPA, student.Bio, student.Portfolio,
		student.GithubProfile, student.LinkedinProfile, student.ProfilePicture,
		student.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_reg_no_key") {
			return apperrors.ErrRegNoAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID
func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

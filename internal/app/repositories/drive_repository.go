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

// DriveRepository handles database operations for placement drives
type DriveRepository interface {
	Create(ctx context.Context, drive *models.PlacementDrive) error
	GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error)
	GetAll(ctx context.Context) ([]models.PlacementDrive, error)
	GetUpcoming(ctx context.Context, limit int) ([]models.PlacementDrive, error)
	Update(ctx context.Context, drive *models.PlacementDrive) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type driveRepository struct {
	db *pgxpool.Pool
}

// NewDriveRepository creates a new placement drive repository
func NewDriveRepository(db *pgxpool.Pool) DriveRepository {
	return &driveRepository{db: db}
}

// Create inserts a new drive row
func (r *driveRepository) Create(ctx context.Context, drive *models.PlacementDrive) error {
	query := `
		INSERT INTO placement_drives
			(company_id, batch, registration_deadline, test_date, interview_date,
			 location, mode, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		drive.CompanyID, drive.Batch, drive.RegistrationDeadline, drive.TestDate,
		drive.InterviewDate, drive.Location, drive.Mode, drive.CreatedBy,
	).Scan(&drive.ID, &drive.CreatedAt, &drive.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("error creating drive: %w", err)
	}

	return nil
}

// GetByID retrieves a drive with its company summary
func (r *driveRepository) GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	query := `
		SELECT d.id, d.company_id, d.batch, d.registration_deadline, d.test_date,
		       d.interview_date, d.location, d.mode, d.created_by, d.created_at,
		       d.updated_at, c.id, c.name
		FROM placement_drives d
		JOIN companies c ON d.company_id = c.id
		WHERE d.id = $1
	`

	var d models.PlacementDrive
	var c models.CompanySummary
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.CompanyID, &d.Batch, &d.RegistrationDeadline, &d.TestDate,
		&d.InterviewDate, &d.Location, &d.Mode, &d.CreatedBy, &d.CreatedAt,
		&d.UpdatedAt, &c.ID, &c.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriveNotFound
		}
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}

	d.Company = &c
	return &d, nil
}

// GetAll retrieves all drives with company summaries, soonest deadline first
func (r *driveRepository) GetAll(ctx context.Context) ([]models.PlacementDrive, error) {
	query := `
		SELECT d.id, d.company_id, d.batch, d.registration_deadline, d.test_date,
		       d.interview_date, d.location, d.mode, d.created_by, d.created_at,
		       d.updated_at, c.id, c.name
		FROM placement_drives d
		JOIN companies c ON d.company_id = c.id
		ORDER BY d.registration_deadline ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving drives: %w", err)
	}
	defer rows.Close()

	return collectDrives(rows)
}

// GetUpcoming retrieves drives whose registration deadline has not passed yet
func (r *driveRepository) GetUpcoming(ctx context.Context, limit int) ([]models.PlacementDrive, error) {
	query := `
		SELECT d.id, d.company_id, d.batch, d.registration_deadline, d.test_date,
		       d.interview_date, d.location, d.mode, d.created_by, d.created_at,
		       d.updated_at, c.id, c.name
		FROM placement_drives d
		JOIN companies c ON d.company_id = c.id
		WHERE d.registration_deadline >= NOW()
		ORDER BY d.registration_deadline ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving upcoming drives: %w", err)
	}
	defer rows.Close()

	return collectDrives(rows)
}

func collectDrives(rows pgx.Rows) ([]models.PlacementDrive, error) {
	var drives []models.PlacementDrive
	for rows.Next() {
		var d models.PlacementDrive
		var c models.CompanySummary
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.Batch, &d.RegistrationDeadline, &d.TestDate,
			&d.InterviewDate, &d.Location, &d.Mode, &d.CreatedBy, &d.CreatedAt,
			&d.UpdatedAt, &c.ID, &c.Name,
		); err != nil {
			return nil, err
		}
		d.Company = &c
		drives = append(drives, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drives, nil
}

// Update writes the mutable columns of an already-loaded drive
func (r *driveRepository) Update(ctx context.Context, drive *models.PlacementDrive) error {
	query := `
		UPDATE placement_drives
		SET company_id = $1, batch = $2, registration_deadline = $3, test_date = $4,
		    interview_date = $5, location = $6, mode = $7, updated_at = NOW()
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		drive.CompanyID, drive.Batch, drive.RegistrationDeadline, drive.TestDate,
		drive.InterviewDate, drive.Location, drive.Mode, drive.ID,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("error updating drive: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	return nil
}

// Delete deletes a drive by ID
func (r *driveRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM placement_drives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting drive: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	return nil
}

// Count returns the total number of drives
func (r *driveRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM placement_drives`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting drives: %w", err)
	}
	return count, nil
}

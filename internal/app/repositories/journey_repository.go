package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/db"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
	"github.com/campushire/placementhub/internal/pkg/dberrors"
)

// JourneyRepository handles database operations for interview journeys
type JourneyRepository interface {
	Create(ctx context.Context, journey *models.Journey) error
	GetByID(ctx context.Context, id int64) (*models.Journey, error)
	GetByDrive(ctx context.Context, driveID int64, approvedOnly bool) ([]models.Journey, error)
	GetRecentApproved(ctx context.Context, limit int) ([]models.Journey, error)
	Update(ctx context.Context, journey *models.Journey) error
	Delete(ctx context.Context, id int64) error
	CountPending(ctx context.Context) (int64, error)
}

type journeyRepository struct {
	db *pgxpool.Pool
}

// NewJourneyRepository creates a new journey repository
func NewJourneyRepository(db *pgxpool.Pool) JourneyRepository {
	return &journeyRepository{db: db}
}

const journeySelect = `
	SELECT j.id, j.drive_id, j.student_id, j.rounds_json, j.overall_experience,
	       j.tips_for_juniors, j.approved, j.approved_by, j.created_at, j.updated_at,
	       s.id, s.name, s.reg_no, s.email
	FROM journeys j
	JOIN students s ON j.student_id = s.id
`

func scanJourney(row pgx.Row) (*models.Journey, error) {
	var j models.Journey
	var student models.StudentSummary
	var rounds []byte

	err := row.Scan(
		&j.ID, &j.DriveID, &j.StudentID, &rounds, &j.OverallExperience,
		&j.TipsForJuniors, &j.Approved, &j.ApprovedBy, &j.CreatedAt, &j.UpdatedAt,
		&student.ID, &student.Name, &student.RegNo, &student.Email,
	)
	if err != nil {
		return nil, err
	}

	if len(rounds) > 0 {
		if err := json.Unmarshal(rounds, &j.Rounds); err != nil {
			return nil, fmt.Errorf("error decoding journey rounds: %w", err)
		}
	}
	j.Student = &student
	return &j, nil
}

func collectJourneys(rows pgx.Rows) ([]models.Journey, error) {
	var journeys []models.Journey
	for rows.Next() {
		j, err := scanJourney(rows)
		if err != nil {
			return nil, err
		}
		journeys = append(journeys, *j)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return journeys, nil
}

// Create inserts a new journey row. Approval fields are fixed by the database
// defaults, never by the caller.
func (r *journeyRepository) Create(ctx context.Context, journey *models.Journey) error {
	rounds, err := json.Marshal(journey.Rounds)
	if err != nil {
		return fmt.Errorf("error encoding journey rounds: %w", err)
	}

	sqlStr := `
		INSERT INTO journeys (drive_id, student_id, rounds_json, overall_experience, tips_for_juniors)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, approved, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, sqlStr,
		journey.DriveID, journey.StudentID, rounds,
		journey.OverallExperience, journey.TipsForJuniors,
	).Scan(&journey.ID, &journey.Approved, &journey.CreatedAt, &journey.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDriveNotFound
		}
		return fmt.Errorf("error creating journey: %w", err)
	}

	return nil
}

// GetByID retrieves a journey with its student summary
func (r *journeyRepository) GetByID(ctx context.Context, id int64) (*models.Journey, error) {
	j, err := scanJourney(r.db.QueryRow(ctx, journeySelect+` WHERE j.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJourneyNotFound
		}
		return nil, fmt.Errorf("error retrieving journey: %w", err)
	}

	return j, nil
}

// GetByDrive retrieves the journeys of a drive, newest first. With approvedOnly
// set, unapproved rows are filtered out.
func (r *journeyRepository) GetByDrive(ctx context.Context, driveID int64, approvedOnly bool) ([]models.Journey, error) {
	sqlStr := journeySelect + ` WHERE j.drive_id = $1`
	if approvedOnly {
		sqlStr += ` AND j.approved = TRUE`
	}
	sqlStr += ` ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, sqlStr, driveID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving drive journeys: %w", err)
	}
	defer rows.Close()

	return collectJourneys(rows)
}

// GetRecentApproved retrieves the newest approved journeys across all drives
func (r *journeyRepository) GetRecentApproved(ctx context.Context, limit int) ([]models.Journey, error) {
	sqlStr := journeySelect + ` WHERE j.approved = TRUE ORDER BY j.created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, sqlStr, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent journeys: %w", err)
	}
	defer rows.Close()

	return collectJourneys(rows)
}

// Update writes the mutable columns of an already-loaded journey
func (r *journeyRepository) Update(ctx context.Context, journey *models.Journey) error {
	rounds, err := json.Marshal(journey.Rounds)
	if err != nil {
		return fmt.Errorf("error encoding journey rounds: %w", err)
	}

	sqlStr := `
		UPDATE journeys
		SET rounds_json = $1, overall_experience = $2, tips_for_juniors = $3,
		    approved = $4, approved_by = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, sqlStr,
		rounds, journey.OverallExperience, journey.TipsForJuniors,
		journey.Approved, journey.ApprovedBy, journey.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating journey: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJourneyNotFound
	}

	return nil
}

// Delete removes a journey and its comments in one transaction
func (r *journeyRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE journey_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting journey comments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM journeys WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting journey: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrJourneyNotFound
		}

		return nil
	})
}

// CountPending counts journeys still waiting for approval
func (r *journeyRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM journeys WHERE approved = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending journeys: %w", err)
	}
	return count, nil
}

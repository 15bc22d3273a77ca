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

// QueryRepository handles database operations for drive queries
type QueryRepository interface {
	Create(ctx context.Context, query *models.Query) error
	GetByID(ctx context.Context, id int64) (*models.Query, error)
	GetByDrive(ctx context.Context, driveID int64, public bool) ([]models.Query, error)
	GetRecentPublic(ctx context.Context, limit int) ([]models.Query, error)
	Update(ctx context.Context, query *models.Query) error
	Delete(ctx context.Context, id int64) error
	CountPending(ctx context.Context) (int64, error)
}

type queryRepository struct {
	db *pgxpool.Pool
}

// NewQueryRepository creates a new query repository
func NewQueryRepository(db *pgxpool.Pool) QueryRepository {
	return &queryRepository{db: db}
}

const querySelect = `
	SELECT q.id, q.drive_id, q.user_id, q.content, q.answer, q.public, q.answered_by,
	       q.created_at, q.updated_at,
	       s.id, s.name, s.reg_no, s.email,
	       a.id, a.name, a.email
	FROM queries q
	JOIN students s ON q.user_id = s.id
	LEFT JOIN admins a ON q.answered_by = a.id
`

func scanQuery(row pgx.Row) (*models.Query, error) {
	var q models.Query
	var author models.StudentSummary
	var respID *int64
	var respName, respEmail *string

	err := row.Scan(
		&q.ID, &q.DriveID, &q.UserID, &q.Content, &q.Answer, &q.Public, &q.AnsweredBy,
		&q.CreatedAt, &q.UpdatedAt,
		&author.ID, &author.Name, &author.RegNo, &author.Email,
		&respID, &respName, &respEmail,
	)
	if err != nil {
		return nil, err
	}

	q.Author = &author
	if respID != nil {
		q.Responder = &models.AdminSummary{ID: *respID, Name: *respName, Email: *respEmail}
	}
	return &q, nil
}

func collectQueries(rows pgx.Rows) ([]models.Query, error) {
	var queries []models.Query
	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, err
		}
		queries = append(queries, *q)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return queries, nil
}

// Create inserts a new query row. Visibility and answer fields are fixed by
// the database defaults, never by the caller.
func (r *queryRepository) Create(ctx context.Context, query *models.Query) error {
	sqlStr := `
		INSERT INTO queries (drive_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, public, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, sqlStr, query.DriveID, query.UserID, query.Content).
		Scan(&query.ID, &query.Public, &query.CreatedAt, &query.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDriveNotFound
		}
		return fmt.Errorf("error creating query: %w", err)
	}

	return nil
}

// GetByID retrieves a query with author and responder summaries
func (r *queryRepository) GetByID(ctx context.Context, id int64) (*models.Query, error) {
	q, err := scanQuery(r.db.QueryRow(ctx, querySelect+` WHERE q.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQueryNotFound
		}
		return nil, fmt.Errorf("error retrieving query: %w", err)
	}

	return q, nil
}

// GetByDrive retrieves the queries of a drive with the given visibility,
// oldest first. public selects the published rows, !public the private ones.
func (r *queryRepository) GetByDrive(ctx context.Context, driveID int64, public bool) ([]models.Query, error) {
	sqlStr := querySelect + ` WHERE q.drive_id = $1 AND q.public = $2 ORDER BY q.created_at ASC`

	rows, err := r.db.Query(ctx, sqlStr, driveID, public)
	if err != nil {
		return nil, fmt.Errorf("error retrieving drive queries: %w", err)
	}
	defer rows.Close()

	return collectQueries(rows)
}

// GetRecentPublic retrieves the newest public queries across all drives
func (r *queryRepository) GetRecentPublic(ctx context.Context, limit int) ([]models.Query, error) {
	sqlStr := querySelect + ` WHERE q.public = TRUE ORDER BY q.created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, sqlStr, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent queries: %w", err)
	}
	defer rows.Close()

	return collectQueries(rows)
}

// Update writes the mutable columns of an already-loaded query
func (r *queryRepository) Update(ctx context.Context, query *models.Query) error {
	sqlStr := `
		UPDATE queries
		SET content = $1, answer = $2, public = $3, answered_by = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, sqlStr,
		query.Content, query.Answer, query.Public, query.AnsweredBy, query.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating query: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQueryNotFound
	}

	return nil
}

// Delete deletes a query by ID
func (r *queryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM queries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting query: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQueryNotFound
	}

	return nil
}

// CountPending counts queries that are still private and unanswered
func (r *queryRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM queries WHERE public = FALSE AND answer IS NULL`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending queries: %w", err)
	}
	return count, nil
}

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

// CommentRepository handles database operations for journey comments
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	GetByJourney(ctx context.Context, journeyID int64) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *pgxpool.Pool) CommentRepository {
	return &commentRepository{db: db}
}

// The author join is left outer: user_id may belong to a student or an
// admin, and only student authors carry a summary.
const commentSelect = `
	SELECT c.id, c.journey_id, c.user_id, c.content, c.moderated_by,
	       c.created_at, c.updated_at,
	       s.id, s.name, s.reg_no, s.email,
	       a.id, a.name, a.email
	FROM comments c
	LEFT JOIN students s ON c.user_id = s.id
	LEFT JOIN admins a ON c.moderated_by = a.id
`

func scanComment(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	var authorID *int64
	var authorName, authorRegNo, authorEmail *string
	var modID *int64
	var modName, modEmail *string

	err := row.Scan(
		&c.ID, &c.JourneyID, &c.UserID, &c.Content, &c.ModeratedBy,
		&c.CreatedAt, &c.UpdatedAt,
		&authorID, &authorName, &authorRegNo, &authorEmail,
		&modID, &modName, &modEmail,
	)
	if err != nil {
		return nil, err
	}

	if authorID != nil {
		c.Author = &models.StudentSummary{ID: *authorID, Name: *authorName, RegNo: *authorRegNo, Email: *authorEmail}
	}
	if modID != nil {
		c.Moderator = &models.AdminSummary{ID: *modID, Name: *modName, Email: *modEmail}
	}
	return &c, nil
}

// Create inserts a new comment row
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (journey_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, comment.JourneyID, comment.UserID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrJourneyNotFound
		}
		return fmt.Errorf("error creating comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment with author and moderator summaries
func (r *commentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, commentSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error retrieving comment: %w", err)
	}

	return c, nil
}

// GetByJourney retrieves the comments of a journey, oldest first
func (r *commentRepository) GetByJourney(ctx context.Context, journeyID int64) ([]models.Comment, error) {
	query := commentSelect + ` WHERE c.journey_id = $1 ORDER BY c.created_at ASC`

	rows, err := r.db.Query(ctx, query, journeyID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving journey comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// Update writes the mutable columns of an already-loaded comment
func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments
		SET content = $1, moderated_by = $2, updated_at = NOW()
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, comment.Content, comment.ModeratedBy, comment.ID)
	if err != nil {
		return fmt.Errorf("error updating comment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}

	return nil
}

// Delete deletes a comment by ID
func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}

	return nil
}

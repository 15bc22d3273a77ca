package models

import "time"

// Comment defines a comment on a journey based on the 'comments' table
type Comment struct {
	ID          int64     `json:"id" db:"id"`
	JourneyID   int64     `json:"journey_id" db:"journey_id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Content     string    `json:"content" db:"content"`
	ModeratedBy *int64    `json:"moderated_by,omitempty" db:"moderated_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	Author    *StudentSummary `json:"author,omitempty"`    // relation, no db tag
	Moderator *AdminSummary   `json:"moderator,omitempty"` // relation, no db tag
}

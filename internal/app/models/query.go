package models

import "time"

// Query defines a student question tied to a drive, based on the 'queries' table.
// Queries start private and unanswered; an admin answer may promote them to public.
type Query struct {
	ID         int64     `json:"id" db:"id"`
	DriveID    int64     `json:"drive_id" db:"drive_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Content    string    `json:"content" db:"content"`
	Answer     *string   `json:"answer,omitempty" db:"answer"`
	Public     bool      `json:"public" db:"public"`
	AnsweredBy *int64    `json:"answered_by,omitempty" db:"answered_by"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`

	Author    *StudentSummary `json:"author,omitempty"`    // relation, no db tag
	Responder *AdminSummary   `json:"responder,omitempty"` // relation, no db tag
}

package models

import "time"

// JourneyRound is one entry of the ordered rounds sequence stored as JSONB
type JourneyRound struct {
	Round       string `json:"round"`
	Description string `json:"description"`
}

// Journey defines a student's interview write-up based on the 'journeys' table.
// Journeys start unapproved; only an admin action makes them publicly visible.
type Journey struct {
	ID                int64          `json:"id" db:"id"`
	DriveID           int64          `json:"drive_id" db:"drive_id"`
	StudentID         int64          `json:"student_id" db:"student_id"`
	Rounds            []JourneyRound `json:"rounds_json" db:"rounds_json"`
	OverallExperience *string        `json:"overall_experience,omitempty" db:"overall_experience"`
	TipsForJuniors    *string        `json:"tips_for_juniors,omitempty" db:"tips_for_juniors"`
	Approved          bool           `json:"approved" db:"approved"`
	ApprovedBy        *int64         `json:"approved_by,omitempty" db:"approved_by"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at" db:"updated_at"`

	Student *StudentSummary `json:"student,omitempty"` // relation, no db tag
}

package models

import "time"

// Skill defines one entry of the skill catalog based on the 'skills' table
type Skill struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Category *string `json:"category,omitempty" db:"category"`
}

// StudentSkill is the join row carrying a student's claimed proficiency in a skill,
// with optional proof annotation
type StudentSkill struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"student_id" db:"student_id"`
	SkillID     int64     `json:"skill_id" db:"skill_id"`
	ProofURL    *string   `json:"proof_url,omitempty" db:"proof_url"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	Skill *Skill `json:"skill,omitempty"` // relation, no db tag
}

package dto

// AddSkillRequest is the body of POST /skills
type AddSkillRequest struct {
	Name     string  `json:"name" binding:"required" validate:"max=100"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=50"`
}

// CreateStudentSkillRequest is the body of POST /student-skills.
// The student id comes from the token, never from the body.
type CreateStudentSkillRequest struct {
	SkillID     int64   `json:"skill_id" binding:"required"`
	ProofURL    *string `json:"proof_url,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
}

// UpdateStudentSkillRequest is the body of PUT /student-skills/:id
type UpdateStudentSkillRequest struct {
	SkillID     *int64  `json:"skill_id,omitempty"`
	ProofURL    *string `json:"proof_url,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
}

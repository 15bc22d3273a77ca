package dto

// CreateDriveRequest is the body of POST /admin/drives.
// Dates use the YYYY-MM-DD wire format.
type CreateDriveRequest struct {
	CompanyID            int64   `json:"company_id" binding:"required"`
	Batch                *string `json:"batch,omitempty" validate:"omitempty,max=20"`
	RegistrationDeadline *string `json:"registration_deadline,omitempty"`
	TestDate             *string `json:"test_date,omitempty"`
	InterviewDate        *string `json:"interview_date,omitempty"`
	Location             *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Mode                 *string `json:"mode,omitempty" validate:"omitempty,oneof=online offline"`
}

// UpdateDriveRequest is the body of PUT /admin/drives/:driveId.
// Only provided fields are merged onto the stored row.
type UpdateDriveRequest struct {
	CompanyID            *int64  `json:"company_id,omitempty"`
	Batch                *string `json:"batch,omitempty" validate:"omitempty,max=20"`
	RegistrationDeadline *string `json:"registration_deadline,omitempty"`
	TestDate             *string `json:"test_date,omitempty"`
	InterviewDate        *string `json:"interview_date,omitempty"`
	Location             *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Mode                 *string `json:"mode,omitempty" validate:"omitempty,oneof=online offline"`
}

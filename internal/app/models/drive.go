package models

import "time"

// PlacementDrive defines one company's hiring cycle based on the 'placement_drives' table
type PlacementDrive struct {
	ID                   int64      `json:"id" db:"id"`
	CompanyID            int64      `json:"company_id" db:"company_id"`
	Batch                *string    `json:"batch,omitempty" db:"batch"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty" db:"registration_deadline"`
	TestDate             *time.Time `json:"test_date,omitempty" db:"test_date"`
	InterviewDate        *time.Time `json:"interview_date,omitempty" db:"interview_date"`
	Location             *string    `json:"location,omitempty" db:"location"`
	Mode                 DriveMode  `json:"mode" db:"mode"`
	CreatedBy            int64      `json:"created_by" db:"created_by"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" db:"updated_at"`

	Company *CompanySummary `json:"company,omitempty"` // relation, no db tag
}

// DriveDetail is a drive together with its public sub-resources, returned by the
// drive detail endpoint in a single read
type DriveDetail struct {
	PlacementDrive
	CompanyFull *Company  `json:"company_detail,omitempty"`
	Queries     []Query   `json:"queries"`
	Journeys    []Journey `json:"journeys"`
}

package models

import "time"

// Company defines the company model based on the 'companies' table
type Company struct {
	ID                  int64     `json:"id" db:"id"`
	Name                string    `json:"name" db:"name"`
	Website             *string   `json:"website,omitempty" db:"website"`
	ContactPerson       *string   `json:"contact_person,omitempty" db:"contact_person"`
	ContactEmail        *string   `json:"contact_email,omitempty" db:"contact_email"`
	EligibilityCriteria *string   `json:"eligibility_criteria,omitempty" db:"eligibility_criteria"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// CompanySummary is the company projection embedded in drive listings
type CompanySummary struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

package dto

// CreateCompanyRequest is the body of POST /companies/company
type CreateCompanyRequest struct {
	Name                string  `json:"name" binding:"required" validate:"max=100"`
	Website             *string `json:"website,omitempty" validate:"omitempty,max=255"`
	ContactPerson       *string `json:"contact_person,omitempty" validate:"omitempty,max=100"`
	ContactEmail        *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	EligibilityCriteria *string `json:"eligibility_criteria,omitempty"`
}

// UpdateCompanyRequest is the body of PUT /companies/company/:id
type UpdateCompanyRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Website             *string `json:"website,omitempty" validate:"omitempty,max=255"`
	ContactPerson       *string `json:"contact_person,omitempty" validate:"omitempty,max=100"`
	ContactEmail        *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	EligibilityCriteria *string `json:"eligibility_criteria,omitempty"`
}

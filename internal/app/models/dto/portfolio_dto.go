package dto

// UpdateProfileRequest is the body of PUT /portfolio/portfolio/me.
// The field set mirrors the mutable profile columns; anything else in the
// body (id, password, is_verified, timestamps) is ignored.
type UpdateProfileRequest struct {
	RegNo              *string  `json:"reg_no,omitempty" validate:"omitempty,max=20"`
	Name               *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Gender             *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	FathersName        *string  `json:"fathers_name,omitempty" validate:"omitempty,max=100"`
	DateOfBirth        *string  `json:"date_of_birth,omitempty"`
	ResidentialAddress *string  `json:"residential_address,omitempty"`
	Mobile             *string  `json:"mobile,omitempty" validate:"omitempty,max=20"`
	ParentsMobileNo    *string  `json:"parents_mobile_no,omitempty" validate:"omitempty,max=20"`
	AadharCardNo       *string  `json:"aadhar_card_no,omitempty" validate:"omitempty,max=20"`
	Department         *string  `json:"department,omitempty"`
	Year               *string  `json:"year,omitempty" validate:"omitempty,oneof=I II III IV"`
	Section            *string  `json:"section,omitempty"`
	CGPA               *float64 `json:"cgpa,omitempty" validate:"omitempty,gte=0,lte=10"`
	Bio                *string  `json:"bio,omitempty"`
	Portfolio          *string  `json:"portfolio,omitempty" validate:"omitempty,max=255"`
	GithubProfile      *string  `json:"github_profile,omitempty" validate:"omitempty,max=255"`
	LinkedinProfile    *string  `json:"linkedin_profile,omitempty" validate:"omitempty,max=255"`
	ProfilePicture     *string  `json:"profile_picture,omitempty" validate:"omitempty,max=255"`
}

// StudentFilter carries the admin roster filter parameters
type StudentFilter struct {
	CGPAMin    *float64
	CGPAMax    *float64
	Department string
	Year       string
	Skills     []string
}

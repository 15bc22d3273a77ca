package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID                 int64      `json:"id" db:"id"`
	RegNo              string     `json:"reg_no" db:"reg_no"`
	Name               string     `json:"name" db:"name"`
	Gender             *string    `json:"gender,omitempty" db:"gender"`
	FathersName        *string    `json:"fathers_name,omitempty" db:"fathers_name"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	ResidentialAddress *string    `json:"residential_address,omitempty" db:"residential_address"`
	Email              string     `json:"email" db:"email"`
	Mobile             *string    `json:"mobile,omitempty" db:"mobile"`
	ParentsMobileNo    *string    `json:"parents_mobile_no,omitempty" db:"parents_mobile_no"`
	AadharCardNo       *string    `json:"aadhar_card_no,omitempty" db:"aadhar_card_no"`
	Password           string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Department         *string    `json:"department,omitempty" db:"department"`
	Year               *string    `json:"year,omitempty" db:"year"`
	Section            *string    `json:"section,omitempty" db:"section"`
	CGPA               *float64   `json:"cgpa,omitempty" db:"cgpa"`
	Bio                *string    `json:"bio,omitempty" db:"bio"`
	Portfolio          *string    `json:"portfolio,omitempty" db:"portfolio"`
	GithubProfile      *string    `json:"github_profile,omitempty" db:"github_profile"`
	LinkedinProfile    *string    `json:"linkedin_profile,omitempty" db:"linkedin_profile"`
	ProfilePicture     *string    `json:"profile_picture,omitempty" db:"profile_picture"`
	IsVerified         bool       `json:"is_verified" db:"is_verified"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`

	Skills []StudentSkill `json:"skills,omitempty"` // relation, no db tag
}

// StudentSummary carries the subset of student fields embedded in other resources
type StudentSummary struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	RegNo string `json:"reg_no,omitempty" db:"reg_no"`
	Email string `json:"email,omitempty" db:"email"`
}

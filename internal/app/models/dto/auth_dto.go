package dto

// RegisterStudentRequest is the body of POST /auth/register
type RegisterStudentRequest struct {
	RegNo    string `json:"reg_no" binding:"required" validate:"max=20"`
	Name     string `json:"name" binding:"required" validate:"max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required" validate:"min=8"`
}

// RegisterAdminRequest is the body of POST /auth/admin/register
type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required" validate:"max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required" validate:"min=8"`
}

// LoginRequest is the body of both login endpoints
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ActorSummary is the actor projection returned alongside a fresh token
type ActorSummary struct {
	ID    int64  `json:"id"`
	RegNo string `json:"reg_no,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse carries the issued token and the actor summary.
// The token keeps the original "Bearer " prefix for client compatibility.
type LoginResponse struct {
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"`
	Student   *ActorSummary `json:"student,omitempty"`
	Admin     *ActorSummary `json:"admin,omitempty"`
}

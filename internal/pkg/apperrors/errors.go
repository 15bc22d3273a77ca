package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMissing       = errors.New("token not provided")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Entity errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrDriveNotFound        = errors.New("placement drive not found")
	ErrQueryNotFound        = errors.New("query not found")
	ErrJourneyNotFound      = errors.New("journey not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrSkillNotFound        = errors.New("skill not found")
	ErrStudentSkillNotFound = errors.New("student skill not found")

	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrRegNoAlreadyExists   = errors.New("registration number already exists")
	ErrCompanyAlreadyExists = errors.New("company with this name already exists")
	ErrSkillAlreadyExists   = errors.New("skill with this name already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// ErrInvalidCredentials deliberately maps to a generic not-found style
	// response so callers cannot tell whether the ID or the password was wrong.
	ErrInvalidCredentials = errors.New("ID or password not found")
)

// Account errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrProfessorNotFound = errors.New("professor not found")
	ErrEmailExists       = errors.New("email already exists")
	ErrIdentifierExists  = errors.New("ID already exists")
)

// Project errors
var (
	ErrProjectNotFound          = errors.New("project not found")
	ErrTeammateAlreadyAssigned  = errors.New("a teammate is already assigned to a project")
	ErrInvalidProjectStatus     = errors.New("invalid project status")
	ErrUnknownDepartment        = errors.New("unknown department name")
	ErrUnknownGraduationTerm    = errors.New("unknown graduation term")
	ErrProjectRegistrationFault = errors.New("project registration failed")
)

// Comment and bookmark errors
var (
	ErrCommentNotFound       = errors.New("comment not found")
	ErrBookmarkNotFound      = errors.New("bookmark not found")
	ErrBookmarkAlreadyExists = errors.New("bookmark already exists")
)

// Vocabulary errors
var (
	ErrVocabularyValueExists   = errors.New("value already exists")
	ErrVocabularyValueNotFound = errors.New("value not found")
)

// CustomError carries an underlying sentinel plus a caller-facing message.
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

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

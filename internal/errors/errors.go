// Package errors defines the structured API error responses shared by
// all HTTP handlers.
package errors

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response.
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError with the given parameters.
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details.
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined error types for common scenarios.
var (
	ErrInvalidParameter = New(http.StatusBadRequest, "INVALID_PARAMETER", "Invalid parameter value")
	ErrNotFound         = New(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrInternalServer   = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
)

// TeacherNotFound creates a not found error for an unknown teacher name.
func TeacherNotFound(name string) *APIError {
	return NewWithDetails(http.StatusNotFound, "TEACHER_NOT_FOUND", "Teacher not found", name)
}

// GradeNotFound creates a not found error for an unknown grade.
func GradeNotFound(grade string) *APIError {
	return NewWithDetails(http.StatusNotFound, "GRADE_NOT_FOUND", "Grade not found", grade)
}

// InvalidParameter creates a bad request error for a malformed parameter.
func InvalidParameter(name, message string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "INVALID_PARAMETER", message, name)
}

// DataLoadFailed creates an internal error for a failed dataset load.
// The source was unreadable or structurally invalid; no partial dataset
// is ever served in its place.
func DataLoadFailed(err error) *APIError {
	return NewWithDetails(http.StatusInternalServerError, "DATA_LOAD_FAILED",
		fmt.Sprintf("Failed to load activity data: %v", err), err.Error())
}

// ErrorResponse represents a standard error response envelope.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(err *APIError) *ErrorResponse {
	return &ErrorResponse{Success: false, Error: err}
}

// Render implements the render.Renderer interface.
func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.Error.Render(w, r)
}

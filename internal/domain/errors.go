package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain.
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Document pipeline errors
	CodeFetchFailed       ErrorCode = "FETCH_FAILED"
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	CodeEmptyContent      ErrorCode = "EMPTY_CONTENT"

	// LLM errors are absorbed by the quiz generator and never reach a
	// handler; the code exists for logging.
	CodeLLMServiceError ErrorCode = "LLM_SERVICE_ERROR"

	// Resource errors
	CodeCourseNotFound   ErrorCode = "COURSE_NOT_FOUND"
	CodeSkillNotFound    ErrorCode = "SKILL_NOT_FOUND"
	CodeAlreadyCompleted ErrorCode = "ALREADY_COMPLETED"
)

// DomainError represents a domain-specific error.
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON hides the wrapped cause from API responses.
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError.
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{Code: code, Message: message, Cause: cause}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

// NewFetchError reports that the uploaded document could not be retrieved.
// The URL goes into the log context, not the user-facing message.
func NewFetchError(url string, cause error) *DomainError {
	err := NewError(CodeFetchFailed, "Could not retrieve the uploaded file", cause)
	err.Context = map[string]interface{}{"url": url}
	return err
}

func NewUnsupportedFormatError(mimeType string) *DomainError {
	err := NewError(CodeUnsupportedFormat, "Unsupported document format", nil)
	err.Context = map[string]interface{}{"mime_type": mimeType}
	return err
}

func NewEmptyContentError() *DomainError {
	return NewError(CodeEmptyContent, "The document contains no extractable text", nil)
}

func NewLLMServiceError(cause error) *DomainError {
	return NewError(CodeLLMServiceError, "Failed to process with LLM service", cause)
}

func NewCourseNotFoundError(courseID string) *DomainError {
	return NewError(CodeCourseNotFound, fmt.Sprintf("Course not found: %s", courseID), nil)
}

func NewSkillNotFoundError(skillID string) *DomainError {
	return NewError(CodeSkillNotFound, fmt.Sprintf("Skill not found: %s", skillID), nil)
}

func NewAlreadyCompletedError(skillID string) *DomainError {
	return NewError(CodeAlreadyCompleted, fmt.Sprintf("Skill already completed today: %s", skillID), nil)
}

// ValidationError represents a single failed request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates request validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Error()
}

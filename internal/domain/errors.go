package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Catalog errors
	CodeCourseNotFound  ErrorCode = "COURSE_NOT_FOUND"
	CodeContentNotFound ErrorCode = "CONTENT_NOT_FOUND"
	CodeInvalidCatalog  ErrorCode = "INVALID_CATALOG"

	// Classroom errors
	CodeNoClassroom            ErrorCode = "NO_CLASSROOM"
	CodeNotAQuiz               ErrorCode = "NOT_A_QUIZ"
	CodeNotADocument           ErrorCode = "NOT_A_DOCUMENT"
	CodeAnswerAlreadySubmitted ErrorCode = "ANSWER_ALREADY_SUBMITTED"
	CodeSessionNotFound        ErrorCode = "SESSION_NOT_FOUND"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
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

// WithContext attaches a key/value pair that is surfaced as response details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
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

func NewCourseNotFoundError(courseID string) *DomainError {
	return NewError(CodeCourseNotFound, fmt.Sprintf("Course not found with ID: %s", courseID), nil).
		WithContext("course_id", courseID)
}

func NewContentNotFoundError(contentID string) *DomainError {
	return NewError(CodeContentNotFound, fmt.Sprintf("Content not found with ID: %s", contentID), nil).
		WithContext("content_id", contentID)
}

func NewInvalidCatalogError(message string, cause error) *DomainError {
	return NewError(CodeInvalidCatalog, message, cause)
}

func NewNoClassroomError() *DomainError {
	return NewError(CodeNoClassroom, "No course is open in this session", nil)
}

func NewNotAQuizError(contentID string) *DomainError {
	return NewError(CodeNotAQuiz, fmt.Sprintf("Content %s is not a quiz", contentID), nil).
		WithContext("content_id", contentID)
}

func NewNotADocumentError(contentID string) *DomainError {
	return NewError(CodeNotADocument, fmt.Sprintf("Content %s is not a document", contentID), nil).
		WithContext("content_id", contentID)
}

func NewAnswerAlreadySubmittedError(questionIndex int) *DomainError {
	return NewError(CodeAnswerAlreadySubmitted, fmt.Sprintf("Question %d was already answered in this attempt", questionIndex), nil).
		WithContext("question_index", questionIndex)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, "Session not found or expired", nil).
		WithContext("session_id", sessionID)
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Code    ErrorCode   `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field error of one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewValidationError(message string) ValidationError {
	return ValidationError{Code: CodeValidation, Message: message}
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Code: CodeMissingField, Field: field, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Code: CodeInvalidFormat, Field: field, Message: "field has an invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Code:    CodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("field must be between %d and %d", min, max),
		Value:   value,
	}
}

package errors

import (
	"fmt"
	"net/http"
)

// Stable machine-readable error codes for the conversion pipeline
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeUnrecognizedPayload = "UNRECOGNIZED_PAYLOAD"
	CodeMissingField        = "MISSING_FIELD"
	CodeSerialization       = "SERIALIZATION_ERROR"
	CodeSource              = "SOURCE_ERROR"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
)

// APIError represents a custom error type shared by the CLI and the HTTP
// conversion endpoint. Status is only used when the error is rendered as
// an HTTP response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details string `json:"details,omitempty"`
}

// Error returns the error message
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code, message string, status int, details ...string) *APIError {
	err := &APIError{
		Code:    code,
		Message: message,
		Status:  status,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

var (
	ErrInvalidInput = NewAPIError(CodeInvalidInput, "Invalid request data", http.StatusBadRequest)
	ErrInternal     = NewAPIError(CodeInternal, "Internal server error", http.StatusInternalServerError)
)

// NewUnrecognizedPayload reports a JSON payload whose top-level shape is
// neither a record array, {"items": [...]}, nor {"response": {"items": [...]}}.
func NewUnrecognizedPayload(observed string) *APIError {
	return NewAPIError(CodeUnrecognizedPayload, "Unsupported JSON payload shape", http.StatusBadRequest,
		fmt.Sprintf("top-level JSON value is %s", observed))
}

// NewMissingField reports a record whose required coordinate is absent or
// not numeric. index is the record's position in the input.
func NewMissingField(index int, field string) *APIError {
	return NewAPIError(CodeMissingField, "Record is missing a required field", http.StatusBadRequest,
		fmt.Sprintf("record %d: field %q is absent or not numeric", index, field))
}

func NewSerializationError(details string) *APIError {
	return NewAPIError(CodeSerialization, "Failed to serialize GPX document", http.StatusInternalServerError, details)
}

func NewSourceError(err error) *APIError {
	return NewAPIError(CodeSource, "Failed to load input data", http.StatusBadGateway, err.Error())
}

// HasCode reports whether err is an APIError carrying the given code.
func HasCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}

func Wrap(err error, code, message string, status int) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return NewAPIError(code, message, status, err.Error())
}

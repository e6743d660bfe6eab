package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ErrorResponse is the structured form of a failed command
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code          string   `json:"code"`
	Message       string   `json:"message"`
	Details       []string `json:"details,omitempty"`
	CorrelationID string   `json:"correlation_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates an error response with the given code and correlation ID
func NewErrorResponse(code ErrorCode, correlationID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:          string(code),
			Message:       GetErrorMessage(code),
			CorrelationID: correlationID,
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// FromError classifies err and builds its response. Validation and storage
// failures carry the underlying message as a detail; internal errors do not,
// so implementation details stay in the log.
func FromError(err error, correlationID string) *ErrorResponse {
	code := CodeFor(err)

	switch code {
	case ValidationGeneral, StorageCorruptSnapshot, StoragePersistenceFailed, SystemConfigurationError:
		return NewErrorResponse(code, correlationID, WithDetails(err.Error()))
	default:
		return NewErrorResponse(code, correlationID)
	}
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// IsClientError is true for rejections caused by the request itself
func (er *ErrorResponse) IsClientError() bool {
	return !er.IsServerError()
}

// IsServerError is true for storage, configuration and internal failures
func (er *ErrorResponse) IsServerError() bool {
	code := er.Error.Code
	return strings.HasPrefix(code, "STORAGE_") || strings.HasPrefix(code, "SYSTEM_")
}

// String renders the response as "[CODE] message", followed by any details.
func (er *ErrorResponse) String() string {
	s := fmt.Sprintf("[%s] %s", er.Error.Code, er.Error.Message)
	if len(er.Error.Details) > 0 {
		s += ": " + strings.Join(er.Error.Details, "; ")
	}
	return s
}

// Write prints the response on one line to w.
func (er *ErrorResponse) Write(w io.Writer) error {
	_, err := fmt.Fprintln(w, er.String())
	return err
}

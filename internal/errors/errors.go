package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error classes returned by the MVola clients. Callers match them with the Is* helpers
// below; a single error may carry several classes (an auth failure is also an api or
// transport failure).
var (
	ErrUsage      = new(ErrCodeUsage, "usage error")
	ErrValidation = new(ErrCodeValidation, "validation error")
	ErrTransport  = new(ErrCodeTransport, "transport error")
	ErrAPI        = new(ErrCodeAPI, "api error")
	ErrDecode     = new(ErrCodeDecode, "decode error")
	ErrAuth       = new(ErrCodeAuth, "authentication failed")
	ErrSystem     = new(ErrCodeSystemError, "system error")
)

const (
	ErrCodeUsage       = "usage_error"
	ErrCodeValidation  = "validation_error"
	ErrCodeTransport   = "transport_error"
	ErrCodeAPI         = "api_error"
	ErrCodeDecode      = "decode_error"
	ErrCodeAuth        = "auth_error"
	ErrCodeSystemError = "system_error"
)

// InternalError represents a classified client error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// New creates a new InternalError
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

// NewInternal creates an InternalError with the given code, used by packages that
// embed it into their own error types.
func NewInternal(code string, message string) *InternalError {
	return new(code, message)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsUsage reports whether the call was rejected before any network activity
// because required session state or input was missing.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsTransport checks if an error is a connection, DNS, TLS or timeout failure
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsAPI checks if the gateway answered with a non-success status or an unusable body
func IsAPI(err error) bool {
	return errors.Is(err, ErrAPI)
}

// IsDecode checks if a successful response could not be decoded
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsAuth checks if an error came out of the token endpoint
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}

// Code returns the most specific error code found in err, or ErrCodeSystemError.
// An auth failure reports auth_error whatever its underlying class.
func Code(err error) string {
	for _, e := range []*InternalError{ErrUsage, ErrAuth, ErrDecode, ErrAPI, ErrTransport, ErrValidation} {
		if errors.Is(err, e) {
			return e.Code
		}
	}
	return ErrCodeSystemError
}

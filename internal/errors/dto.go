package errors

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorResponse is the JSON shape used when an error is reported to a terminal
// or another process.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code          string `json:"code"`
	Display       string `json:"message"`
	Hint          string `json:"hint,omitempty"`
	InternalError string `json:"internal_error,omitempty"`
}

// NewErrorResponse flattens err into an ErrorResponse.
func NewErrorResponse(err error) ErrorResponse {
	detail := ErrorDetail{
		Code:          Code(err),
		InternalError: err.Error(),
	}

	var ie *InternalError
	if errors.As(err, &ie) {
		detail.Display = ie.DisplayError()
	} else {
		detail.Display = errors.UnwrapAll(err).Error()
	}

	if hints := errors.GetAllHints(err); len(hints) > 0 {
		detail.Hint = strings.Join(hints, "; ")
	}

	return ErrorResponse{
		Success: false,
		Error:   detail,
	}
}

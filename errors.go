package mvola

import (
	ierr "github.com/flexprice/mvola-go/internal/errors"
	"github.com/flexprice/mvola-go/internal/httpclient"
)

// APIError is the gateway response behind an API or decode failure
type APIError = httpclient.Error

var (
	ErrUsage      = ierr.ErrUsage
	ErrValidation = ierr.ErrValidation
	ErrTransport  = ierr.ErrTransport
	ErrAPI        = ierr.ErrAPI
	ErrDecode     = ierr.ErrDecode
	ErrAuth       = ierr.ErrAuth
)

// IsUsage reports a call rejected before anything was sent
func IsUsage(err error) bool { return ierr.IsUsage(err) }

// IsValidation reports a request that failed field validation. It implies IsUsage.
func IsValidation(err error) bool { return ierr.IsValidation(err) }

func IsTransport(err error) bool { return ierr.IsTransport(err) }

// IsAPI reports a non-success status or a body that did not decode
func IsAPI(err error) bool { return ierr.IsAPI(err) }

func IsDecode(err error) bool { return ierr.IsDecode(err) }

// IsAuth reports a failure while generating a token
func IsAuth(err error) bool { return ierr.IsAuth(err) }

// AsAPIError returns the status code and raw body behind err, if any
func AsAPIError(err error) (*APIError, bool) {
	return httpclient.IsHTTPError(err)
}

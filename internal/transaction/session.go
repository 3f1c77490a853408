package transaction

import (
	"github.com/flexprice/mvola-go/internal/types"
)

// Service is anything that can be handed a bearer token and session options
type Service interface {
	SetAuthorization(token string)
	SetOptions(options types.RequestOptions)
}

// Session is the state threaded into every transactional request.
// It is a value: operations work on a snapshot and never see a half-applied update.
type Session struct {
	Authorization types.Authorization
	Options       types.RequestOptions
}

// NewSession binds a bearer token to options
func NewSession(token string, options types.RequestOptions) Session {
	return Session{
		Authorization: types.NewBearerAuthorization(token),
		Options:       options,
	}
}

// DefaultSession is the state of a fresh client: no authorization, default options
func DefaultSession() Session {
	return Session{Options: types.DefaultRequestOptions()}
}

// WithAuthorization returns a copy of s using token
func (s Session) WithAuthorization(token string) Session {
	s.Authorization = types.NewBearerAuthorization(token)
	return s
}

// WithOptions returns a copy of s with options replacing the previous block entirely
func (s Session) WithOptions(options types.RequestOptions) Session {
	s.Options = options
	return s
}

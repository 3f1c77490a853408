package types

import (
	"strings"
	"time"
)

const (
	GrantTypeClientCredentials = "client_credentials"
	ScopeMerchantPay           = "EXT_INT_MVOLA_SCOPE"

	AuthSchemeBearer = "Bearer"
)

// AccessToken is the token endpoint response. The OAuth2 endpoint uses snake_case keys.
type AccessToken struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// ExpiresAt returns when the token stops being valid if it was issued at issued.
// Nothing in this module refreshes tokens, it is up to the caller.
func (t AccessToken) ExpiresAt(issued time.Time) time.Time {
	return issued.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// Authorization is a bearer credential presented on transactional calls
type Authorization struct {
	Scheme string
	Token  string
}

// NewBearerAuthorization wraps token without inspecting it
func NewBearerAuthorization(token string) Authorization {
	return Authorization{Scheme: AuthSchemeBearer, Token: token}
}

// IsZero reports whether there is no usable credential
func (a Authorization) IsZero() bool {
	return strings.TrimSpace(a.Token) == ""
}

// Value renders the Authorization header value
func (a Authorization) Value() string {
	scheme := a.Scheme
	if scheme == "" {
		scheme = AuthSchemeBearer
	}
	return scheme + " " + a.Token
}

// String hides the token so an Authorization can be logged by accident without leaking it
func (a Authorization) String() string {
	if a.IsZero() {
		return "<none>"
	}
	return a.Scheme + " <redacted>"
}

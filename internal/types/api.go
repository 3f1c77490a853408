package types

import (
	"net/url"
	"strings"
)

// APIVersion is the merchant pay contract version embedded in every transaction path.
const APIVersion = "1.0.0"

// DefaultVersion is the value of the Version header unless options say otherwise.
const DefaultVersion = "1.0"

const (
	TokenPath       = "/token"
	MerchantPayPath = "/mvola/mm/transactions/type/merchantpay/" + APIVersion + "/"
)

// Header names used by the gateway
const (
	HeaderAuthorization         = "Authorization"
	HeaderAccept                = "Accept"
	HeaderContentType           = "Content-Type"
	HeaderVersion               = "Version"
	HeaderCorrelationID         = "X-CorrelationID"
	HeaderUserLanguage          = "UserLanguage"
	HeaderPartnerName           = "PartnerName"
	HeaderCacheControl          = "Cache-Control"
	HeaderUserAccountIdentifier = "UserAccountIdentifier"
	HeaderCallbackURL           = "X-Callback-URL"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
	NoCache         = "no-cache"
)

// MerchantPayURL joins base with the merchant pay collection path and the
// escaped segments, e.g. MerchantPayURL(base, "status", id).
func MerchantPayURL(base string, segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return strings.TrimRight(base, "/") + MerchantPayPath + strings.Join(escaped, "/")
}

// TokenURL returns the token endpoint for base
func TokenURL(base string) string {
	return strings.TrimRight(base, "/") + TokenPath
}

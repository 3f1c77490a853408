package types

// RequestOptions is the per-session block threaded into transaction request headers.
// UserLanguage, PartnerName and CallbackURL are optional; an empty string means absent.
// Whether an absent value is acceptable depends on the endpoint.
type RequestOptions struct {
	Version               string `json:"version" mapstructure:"version"`
	CorrelationID         string `json:"correlation_id" mapstructure:"correlation_id"`
	UserLanguage          string `json:"user_language,omitempty" mapstructure:"user_language"`
	UserAccountIdentifier string `json:"user_account_identifier" mapstructure:"user_account_identifier"`
	PartnerName           string `json:"partner_name,omitempty" mapstructure:"partner_name"`
	CallbackURL           string `json:"callback_url,omitempty" mapstructure:"callback_url"`
}

// DefaultRequestOptions is the session state of a fresh transaction client
func DefaultRequestOptions() RequestOptions {
	return RequestOptions{Version: DefaultVersion}
}

// NewRequestOptions fills the mandatory fields and the contract version
func NewRequestOptions(correlationID, userAccountIdentifier string) RequestOptions {
	return RequestOptions{
		Version:               DefaultVersion,
		CorrelationID:         correlationID,
		UserAccountIdentifier: userAccountIdentifier,
	}
}

// HasCallbackURL reports whether X-Callback-URL should be sent
func (o RequestOptions) HasCallbackURL() bool {
	return o.CallbackURL != ""
}

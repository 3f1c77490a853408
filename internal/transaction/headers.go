package transaction

import (
	"strings"

	ierr "github.com/flexprice/mvola-go/internal/errors"
	"github.com/flexprice/mvola-go/internal/types"
	"github.com/samber/lo"
)

// endpoint describes which optional headers a merchant pay endpoint takes.
// Localized endpoints require both UserLanguage and PartnerName.
type endpoint struct {
	name      string
	accept    bool
	localized bool
	callback  bool
}

var (
	endpointSendPayment = endpoint{
		name:      "send_payment",
		accept:    true,
		localized: true,
		callback:  true,
	}
	endpointGetTransaction = endpoint{
		name:   "get_transaction",
		accept: true,
	}
	endpointGetTransactionStatus = endpoint{
		name:      "get_transaction_status",
		localized: true,
	}
)

type option struct {
	name  string
	value string
}

// required lists the options e cannot be sent without, in header order
func (e endpoint) required(o types.RequestOptions) []option {
	opts := []option{
		{name: "version", value: o.Version},
		{name: "correlation_id", value: o.CorrelationID},
		{name: "user_account_identifier", value: o.UserAccountIdentifier},
	}
	if e.localized {
		opts = append(opts,
			option{name: "user_language", value: o.UserLanguage},
			option{name: "partner_name", value: o.PartnerName},
		)
	}
	return opts
}

// headers composes the request headers for e from s. Missing authorization or a
// missing required option is a usage error, reported before anything is sent.
func (s Session) headers(e endpoint) (map[string]string, error) {
	if s.Authorization.IsZero() {
		return nil, ierr.NewErrorf("%s: authorization not set", e.name).
			WithHint("Call SetAuthorization with a token from GenerateToken first").
			Mark(ierr.ErrUsage)
	}

	missing := lo.FilterMap(e.required(s.Options), func(o option, _ int) (string, bool) {
		return o.name, strings.TrimSpace(o.value) == ""
	})
	if len(missing) > 0 {
		return nil, ierr.NewErrorf("%s: missing request options %s", e.name, strings.Join(missing, ", ")).
			WithHintf("Set %s with SetOptions before calling %s", strings.Join(missing, ", "), e.name).
			WithReportableDetails(map[string]any{
				"endpoint": e.name,
				"missing":  missing,
			}).
			Mark(ierr.ErrUsage)
	}

	headers := map[string]string{
		types.HeaderAuthorization:         s.Authorization.Value(),
		types.HeaderVersion:               s.Options.Version,
		types.HeaderCorrelationID:         s.Options.CorrelationID,
		types.HeaderCacheControl:          types.NoCache,
		types.HeaderUserAccountIdentifier: s.Options.UserAccountIdentifier,
	}
	if e.accept {
		headers[types.HeaderAccept] = types.ContentTypeJSON
	}
	if e.localized {
		headers = lo.Assign(headers, map[string]string{
			types.HeaderUserLanguage: s.Options.UserLanguage,
			types.HeaderPartnerName:  s.Options.PartnerName,
		})
	}
	if e.callback && s.Options.HasCallbackURL() {
		headers[types.HeaderCallbackURL] = s.Options.CallbackURL
	}
	return headers, nil
}

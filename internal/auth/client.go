package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"

	ierr "github.com/flexprice/mvola-go/internal/errors"
	"github.com/flexprice/mvola-go/internal/httpclient"
	"github.com/flexprice/mvola-go/internal/logger"
	"github.com/flexprice/mvola-go/internal/types"
)

// TokenGenerator exchanges consumer credentials for a bearer token
type TokenGenerator interface {
	GenerateToken(ctx context.Context, consumerKey, consumerSecret string) (*types.AccessToken, error)
}

var _ TokenGenerator = (*Client)(nil)

// Client talks to the gateway token endpoint
type Client struct {
	baseURL    string
	httpClient httpclient.Client
	logger     *logger.Logger
}

// NewClient creates a new auth client for baseURL
func NewClient(baseURL string, httpClient httpclient.Client, logger *logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.With("client", "auth"),
	}
}

// GenerateToken requests a client_credentials token. The request itself is
// authenticated with HTTP Basic using consumerKey/consumerSecret. Every failure is
// marked ErrAuth on top of its transport, api or decode class; nothing is retried.
func (c *Client) GenerateToken(ctx context.Context, consumerKey, consumerSecret string) (*types.AccessToken, error) {
	if consumerKey == "" || consumerSecret == "" {
		return nil, ierr.NewError("missing consumer credentials").
			WithHint("Both consumer key and consumer secret are required").
			Mark(ierr.ErrUsage)
	}

	form := url.Values{}
	form.Set("grant_type", types.GrantTypeClientCredentials)
	form.Set("scope", types.ScopeMerchantPay)

	endpoint := types.TokenURL(c.baseURL)
	req := &httpclient.Request{
		Method: http.MethodPost,
		URL:    endpoint,
		Headers: map[string]string{
			types.HeaderAuthorization: basicAuth(consumerKey, consumerSecret),
			types.HeaderAccept:        types.ContentTypeJSON,
			types.HeaderContentType:   types.ContentTypeForm,
			types.HeaderCacheControl:  types.NoCache,
		},
		Body: []byte(form.Encode()),
	}

	c.logger.Debugw("requesting access token", "url", endpoint)

	resp, err := c.httpClient.Send(ctx, req)
	if err != nil {
		c.logger.Errorw("token request failed", "url", endpoint, "error", err)
		return nil, ierr.WithError(err).
			WithHint("Could not obtain an access token, check the consumer key and secret").
			Mark(ierr.ErrAuth)
	}

	var token types.AccessToken
	if err := httpclient.DecodeJSON(resp, &token); err != nil {
		c.logger.Errorw("failed to decode token response", "status_code", resp.StatusCode, "error", err)
		decodeErr := ierr.WithError(httpclient.NewError(resp.StatusCode, resp.Body)).
			WithMessage(err.Error()).
			WithHint("Token endpoint returned an unexpected body").
			Mark(ierr.ErrDecode)
		return nil, ierr.WithError(decodeErr).Mark(ierr.ErrAuth)
	}

	c.logger.Infow("access token generated",
		"token_type", token.TokenType,
		"expires_in", token.ExpiresIn,
		"scope", token.Scope)

	return &token, nil
}

// basicAuth renders the Authorization header value for key/secret
func basicAuth(key, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(key+":"+secret))
}

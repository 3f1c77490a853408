// Package mvola is a client for the MVola merchant pay API.
//
// A Client pairs an auth client, which exchanges consumer credentials for a
// bearer token, with a transaction client that sends merchant pay requests:
//
//	client := mvola.New(mvola.SandboxURL)
//	token, err := client.Auth.GenerateToken(ctx, key, secret)
//	...
//	client.Transaction.SetAuthorization(token.AccessToken)
//	client.Transaction.SetOptions(mvola.NewRequestOptions(mvola.NewCorrelationID(), "msisdn;0343500003"))
//	status, err := client.Transaction.GetTransactionStatus(ctx, serverCorrelationID)
package mvola

import (
	"context"
	"time"

	"github.com/flexprice/mvola-go/internal/auth"
	"github.com/flexprice/mvola-go/internal/config"
	"github.com/flexprice/mvola-go/internal/httpclient"
	"github.com/flexprice/mvola-go/internal/logger"
	"github.com/flexprice/mvola-go/internal/transaction"
	"github.com/flexprice/mvola-go/internal/types"
)

const (
	SandboxURL    = types.SandboxURL
	ProductionURL = types.ProductionURL
)

// Client bundles the two MVola services. Both share one transport and logger.
type Client struct {
	Auth        *auth.Client
	Transaction *transaction.Client
}

type options struct {
	httpClient httpclient.Client
	logger     *logger.Logger
	timeout    time.Duration
}

// Option configures New
type Option func(*options)

// WithHTTPClient replaces the transport. WithTimeout is ignored when this is set.
func WithHTTPClient(c httpclient.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithLogger sets the logger; by default nothing is logged.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTimeout bounds every request made by the default transport
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// New creates a Client for baseURL, usually SandboxURL or ProductionURL.
// The transaction side starts with no authorization and default options.
func New(baseURL string, opts ...Option) *Client {
	o := options{timeout: httpclient.DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewNopLogger()
	}
	if o.httpClient == nil {
		o.httpClient = httpclient.NewClient(httpclient.ClientConfig{Timeout: o.timeout})
	}

	return &Client{
		Auth:        auth.NewClient(baseURL, o.httpClient, o.logger),
		Transaction: transaction.NewClient(baseURL, o.httpClient, o.logger),
	}
}

// NewFromConfig creates a Client for the configured gateway and timeout
func NewFromConfig(cfg *config.Configuration, log *logger.Logger) *Client {
	return New(cfg.GetBaseURL(),
		WithLogger(log),
		WithTimeout(cfg.HTTP.Timeout),
	)
}

// Authenticate generates a token and installs it on the transaction client.
func (c *Client) Authenticate(ctx context.Context, consumerKey, consumerSecret string) (*AccessToken, error) {
	token, err := c.Auth.GenerateToken(ctx, consumerKey, consumerSecret)
	if err != nil {
		return nil, err
	}
	c.Transaction.SetAuthorization(token.AccessToken)
	return token, nil
}

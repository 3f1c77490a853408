package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	ierr "github.com/flexprice/mvola-go/internal/errors"
	"github.com/flexprice/mvola-go/internal/httpclient"
	"github.com/flexprice/mvola-go/internal/logger"
	"github.com/flexprice/mvola-go/internal/types"
)

// MerchantPayClient defines the merchant pay operations
type MerchantPayClient interface {
	Service
	SendPayment(ctx context.Context, tx types.PaymentRequest) (*types.PaymentResponse, error)
	GetTransaction(ctx context.Context, id string) (*types.TransactionDetails, error)
	GetTransactionStatus(ctx context.Context, serverCorrelationID string) (*types.TransactionStatus, error)
}

var _ MerchantPayClient = (*Client)(nil)

// Client issues merchant pay requests using its current Session.
//
// SetAuthorization and SetOptions swap the session atomically; an operation
// snapshots it once, so its headers always come from a single session. Ordering
// between an update and a concurrent call is up to the caller. Use WithSession to
// give each caller its own fixed session instead.
type Client struct {
	baseURL    string
	httpClient httpclient.Client
	logger     *logger.Logger
	session    atomic.Pointer[Session]
}

// NewClient creates a transaction client for baseURL with DefaultSession
func NewClient(baseURL string, httpClient httpclient.Client, logger *logger.Logger) *Client {
	return newClient(baseURL, httpClient, logger.With("client", "transaction"), DefaultSession())
}

func newClient(baseURL string, httpClient httpclient.Client, logger *logger.Logger, session Session) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
	c.session.Store(&session)
	return c
}

// SetAuthorization replaces the authorization with a bearer credential for token.
// The token is not inspected.
func (c *Client) SetAuthorization(token string) {
	c.update(func(s Session) Session { return s.WithAuthorization(token) })
}

// SetOptions replaces the whole options block; nothing from the previous block survives.
func (c *Client) SetOptions(options types.RequestOptions) {
	c.update(func(s Session) Session { return s.WithOptions(options) })
}

// Session returns a snapshot of the current session
func (c *Client) Session() Session {
	return *c.session.Load()
}

// WithSession returns a client sharing transport and logger but bound to session.
// Changes made through either client are not visible to the other.
func (c *Client) WithSession(session Session) *Client {
	return newClient(c.baseURL, c.httpClient, c.logger, session)
}

func (c *Client) update(fn func(Session) Session) {
	for {
		current := c.session.Load()
		next := fn(*current)
		if c.session.CompareAndSwap(current, &next) {
			return
		}
	}
}

// makeRequest sends one request for e built from session and decodes the JSON
// response into response.
func (c *Client) makeRequest(
	ctx context.Context,
	session Session,
	e endpoint,
	method, url string,
	body interface{},
	response interface{},
) error {
	headers, err := session.headers(e)
	if err != nil {
		return err
	}

	var jsonBody []byte
	if body != nil {
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return ierr.WithError(err).
				WithHint("Request body could not be encoded").
				Mark(ierr.ErrUsage)
		}
		headers[types.HeaderContentType] = types.ContentTypeJSON
	}

	correlationID := session.Options.CorrelationID
	c.logger.Debugw("sending merchant pay request",
		"endpoint", e.name,
		"method", method,
		"url", url,
		"correlation_id", correlationID)

	resp, err := c.httpClient.Send(ctx, &httpclient.Request{
		Method:  method,
		URL:     url,
		Headers: headers,
		Body:    jsonBody,
	})
	if err != nil {
		return c.wrapSendError(err, e, correlationID)
	}

	if err := httpclient.DecodeJSON(resp, response); err != nil {
		c.logger.Errorw("failed to decode merchant pay response",
			"endpoint", e.name,
			"status_code", resp.StatusCode,
			"correlation_id", correlationID,
			"error", err)
		return ierr.WithError(httpclient.NewError(resp.StatusCode, resp.Body)).
			WithMessage(err.Error()).
			WithHintf("Unexpected response body from %s", e.name).
			WithReportableDetails(map[string]any{
				"endpoint":       e.name,
				"status_code":    resp.StatusCode,
				"correlation_id": correlationID,
			}).
			Mark(ierr.ErrDecode)
	}

	return nil
}

func (c *Client) wrapSendError(err error, e endpoint, correlationID string) error {
	if httpErr, ok := httpclient.IsHTTPError(err); ok {
		c.logger.Errorw("merchant pay API returned error",
			"endpoint", e.name,
			"status_code", httpErr.StatusCode,
			"correlation_id", correlationID,
			"response_body", string(httpErr.Response))
		return ierr.WithError(err).
			WithHintf("MVola API returned status %d", httpErr.StatusCode).
			WithReportableDetails(map[string]any{
				"endpoint":       e.name,
				"status_code":    httpErr.StatusCode,
				"correlation_id": correlationID,
			}).
			Mark(ierr.ErrAPI)
	}

	if ierr.IsUsage(err) {
		return err
	}

	c.logger.Errorw("merchant pay request failed",
		"endpoint", e.name,
		"correlation_id", correlationID,
		"error", err)
	return ierr.WithError(err).
		WithHint("Unable to connect to MVola").
		WithReportableDetails(map[string]any{
			"endpoint":       e.name,
			"correlation_id": correlationID,
		}).
		Mark(ierr.ErrTransport)
}

// SendPayment initiates a merchant pay transaction.
// UserLanguage and PartnerName must be set; X-Callback-URL is sent only when configured.
func (c *Client) SendPayment(ctx context.Context, tx types.PaymentRequest) (*types.PaymentResponse, error) {
	session := c.Session()

	if err := validatePayment(tx); err != nil {
		return nil, err
	}

	c.logger.Infow("sending payment to MVola",
		"amount", tx.Amount.String(),
		"currency", tx.Currency,
		"reference", tx.RequestingOrganisationTransactionReference,
		"correlation_id", session.Options.CorrelationID)

	var response types.PaymentResponse
	err := c.makeRequest(ctx, session, endpointSendPayment, http.MethodPost, types.MerchantPayURL(c.baseURL), tx, &response)
	if err != nil {
		return nil, err
	}

	c.logger.Infow("payment accepted by MVola",
		"status", response.Status,
		"server_correlation_id", response.ServerCorrelationID,
		"notification_method", response.NotificationMethod)
	return &response, nil
}

// GetTransaction fetches a transaction by its reference.
// It does not need UserLanguage or PartnerName.
func (c *Client) GetTransaction(ctx context.Context, id string) (*types.TransactionDetails, error) {
	if id == "" {
		return nil, ierr.NewError("transaction id is required").
			WithHint("Pass the transaction reference returned by MVola").
			Mark(ierr.ErrUsage)
	}

	var response types.TransactionDetails
	err := c.makeRequest(ctx, c.Session(), endpointGetTransaction, http.MethodGet, types.MerchantPayURL(c.baseURL, id), nil, &response)
	if err != nil {
		return nil, err
	}

	c.logger.Debugw("fetched transaction from MVola",
		"transaction_reference", response.TransactionReference,
		"status", response.TransactionStatus)
	return &response, nil
}

// GetTransactionStatus polls the status of a payment request.
// UserLanguage and PartnerName must be set.
func (c *Client) GetTransactionStatus(ctx context.Context, serverCorrelationID string) (*types.TransactionStatus, error) {
	if serverCorrelationID == "" {
		return nil, ierr.NewError("server correlation id is required").
			WithHint("Pass the serverCorrelationId returned by SendPayment").
			Mark(ierr.ErrUsage)
	}

	var response types.TransactionStatus
	err := c.makeRequest(ctx, c.Session(), endpointGetTransactionStatus, http.MethodGet,
		types.MerchantPayURL(c.baseURL, "status", serverCorrelationID), nil, &response)
	if err != nil {
		return nil, err
	}

	c.logger.Debugw("fetched transaction status from MVola",
		"server_correlation_id", response.ServerCorrelationID,
		"status", response.Status)
	return &response, nil
}

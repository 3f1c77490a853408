package mvola

import (
	"github.com/flexprice/mvola-go/internal/transaction"
	"github.com/flexprice/mvola-go/internal/types"
)

type (
	AccessToken        = types.AccessToken
	Authorization      = types.Authorization
	RequestOptions     = types.RequestOptions
	KeyValue           = types.KeyValue
	PaymentRequest     = types.PaymentRequest
	PaymentResponse    = types.PaymentResponse
	Fee                = types.Fee
	TransactionDetails = types.TransactionDetails
	TransactionStatus  = types.TransactionStatus
	Session            = transaction.Session
	Service            = transaction.Service
)

var (
	NewRequestOptions       = types.NewRequestOptions
	DefaultRequestOptions   = types.DefaultRequestOptions
	NewSession              = transaction.NewSession
	MSISDN                  = types.MSISDN
	KeyValues               = types.KeyValues
	NewTransactionReference = types.NewTransactionReference
	NewCorrelationID        = types.NewCorrelationID
	FormatRequestDate       = types.FormatRequestDate
)

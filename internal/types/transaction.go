package types

import (
	"github.com/shopspring/decimal"
)

// KeyValue is a labelled field used for party identifiers and metadata.
// Order within a slice is kept on the wire.
type KeyValue struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

const (
	KeyMSISDN      = "msisdn"
	KeyPartnerName = "partnerName"
	KeyFC          = "fc"
	KeyAmountFC    = "amountFc"
)

// MSISDN identifies a party by mobile subscriber number
func MSISDN(number string) KeyValue {
	return KeyValue{Key: KeyMSISDN, Value: number}
}

// KeyValues builds an ordered slice from alternating keys and values.
// A trailing key without a value gets an empty value.
func KeyValues(pairs ...string) []KeyValue {
	out := make([]KeyValue, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		kv := KeyValue{Key: pairs[i]}
		if i+1 < len(pairs) {
			kv.Value = pairs[i+1]
		}
		out = append(out, kv)
	}
	return out
}

// PaymentRequest initiates a merchant pay transaction.
// Amount goes on the wire as a JSON string ("1000").
type PaymentRequest struct {
	Amount                                     decimal.Decimal `json:"amount"`
	Currency                                   string          `json:"currency" validate:"required"`
	DescriptionText                            string          `json:"descriptionText"`
	RequestDate                                string          `json:"requestDate" validate:"required"`
	DebitParty                                 []KeyValue      `json:"debitParty" validate:"required,min=1,dive"`
	CreditParty                                []KeyValue      `json:"creditParty" validate:"required,min=1,dive"`
	Metadata                                   []KeyValue      `json:"metadata" validate:"dive"`
	RequestingOrganisationTransactionReference string          `json:"requestingOrganisationTransactionReference"`
	OriginalTransactionReference               string          `json:"originalTransactionReference"`
}

// PaymentResponse is the gateway acknowledgement of a payment request
type PaymentResponse struct {
	Status              string `json:"status" validate:"required"`
	ServerCorrelationID string `json:"serverCorrelationId" validate:"required"`
	NotificationMethod  string `json:"notificationMethod"`
}

// Fee charged on a transaction
type Fee struct {
	FeeAmount decimal.Decimal `json:"feeAmount"`
}

// TransactionDetails is a settled or pending transaction as stored by the gateway
type TransactionDetails struct {
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency"`
	TransactionReference string          `json:"transactionReference" validate:"required"`
	TransactionStatus    string          `json:"transactionStatus" validate:"required"`
	CreationDate         string          `json:"creationDate"`
	RequestDate          string          `json:"requestDate"`
	DebitParty           []KeyValue      `json:"debitParty"`
	CreditParty          []KeyValue      `json:"creditParty"`
	Metadata             []KeyValue      `json:"metadata"`
	Fees                 []Fee           `json:"fees"`
}

// TransactionStatus is the polling view of a payment request
type TransactionStatus struct {
	Status              string `json:"status" validate:"required"`
	ServerCorrelationID string `json:"serverCorrelationId" validate:"required"`
	NotificationMethod  string `json:"notificationMethod"`
	ObjectReference     string `json:"objectReference"`
}

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// IsFinal reports whether polling can stop
func (s TransactionStatus) IsFinal() bool {
	return s.Status == TransactionStatusCompleted || s.Status == TransactionStatusFailed
}

package types

import "github.com/google/uuid"

// NewTransactionReference returns a random reference. The same value is usually
// used for both requestingOrganisationTransactionReference and
// originalTransactionReference.
func NewTransactionReference() string {
	return uuid.NewString()
}

// NewCorrelationID returns a random X-CorrelationID value
func NewCorrelationID() string {
	return uuid.NewString()
}

package transaction

import (
	ierr "github.com/flexprice/mvola-go/internal/errors"
	"github.com/flexprice/mvola-go/internal/types"
	"github.com/flexprice/mvola-go/internal/validator"
)

func validatePayment(tx types.PaymentRequest) error {
	if err := validator.ValidateRequest(tx); err != nil {
		return ierr.WithError(err).Mark(ierr.ErrUsage)
	}
	if !tx.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHintf("Got amount %s", tx.Amount.String()).
			Mark(ierr.ErrUsage)
	}
	return nil
}

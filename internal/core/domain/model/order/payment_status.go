package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PaymentStatus tracks what the payments collaborator reported for an order.
//
// Payment status is deliberately independent of the order lifecycle: an order
// may be Confirmed while payment is still Pending (cash-on-delivery flows
// settle at the doorstep). This core records payment status, it never
// enforces it.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusPending means no settlement has been reported yet.
	PaymentStatusPending

	// PaymentStatusPaid means the payments collaborator confirmed settlement.
	PaymentStatusPaid

	// PaymentStatusFailed means the last settlement attempt failed.
	PaymentStatusFailed

	// PaymentStatusRefunded means a completed payment was returned.
	PaymentStatusRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown:  "Unknown",
		PaymentStatusPending:  "Pending",
		PaymentStatusPaid:     "Paid",
		PaymentStatusFailed:   "Failed",
		PaymentStatusRefunded: "Refunded",
	}
}

// PaymentStatusFromString parses a payment status from its string form.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s && status != PaymentStatusUnknown {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the payment status is one of the defined values.
func (s PaymentStatus) Validate() error {
	if s == PaymentStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

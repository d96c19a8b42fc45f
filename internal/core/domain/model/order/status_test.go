package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusProcessing,
		order.StatusShipped,
		order.StatusDelivered,
		order.StatusCancelled,
		order.StatusReturned,
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.StatusPending:    {order.StatusConfirmed, order.StatusCancelled},
		order.StatusConfirmed:  {order.StatusProcessing, order.StatusCancelled},
		order.StatusProcessing: {order.StatusShipped, order.StatusCancelled},
		order.StatusShipped:    {order.StatusDelivered, order.StatusCancelled, order.StatusReturned},
		order.StatusDelivered:  {order.StatusReturned},
		order.StatusCancelled:  {},
		order.StatusReturned:   {},
	}

	// Closure: every (from, to) pair outside the table must fail and every
	// pair inside it must succeed.
	for _, from := range allStatuses() {
		legal := make(map[order.Status]bool)
		for _, to := range allowed[from] {
			legal[to] = true
		}

		for _, to := range allStatuses() {
			next, err := from.TransitionTo(to)
			if legal[to] {
				require.NoError(t, err, "%s -> %s should be legal", from, to)
				assert.Equal(t, to, next)
				continue
			}

			require.Error(t, err, "%s -> %s should be rejected", from, to)
			assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)

			var transitionErr *errs.InvalidStatusTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, from.String(), transitionErr.From)
			assert.Equal(t, to.String(), transitionErr.To)
		}
	}
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := order.StatusPending.TransitionTo(order.StatusUnknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.True(t, order.StatusReturned.IsTerminal())
	assert.False(t, order.StatusDelivered.IsTerminal())
	assert.False(t, order.StatusPending.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	for _, s := range allStatuses() {
		parsed, err := order.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.StatusFromString("Teleported")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.StatusFromString("Unknown")
	require.Error(t, err)
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.StatusPending.Validate())
	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestPaymentStatusFromString(t *testing.T) {
	valid := []order.PaymentStatus{
		order.PaymentStatusPending,
		order.PaymentStatusPaid,
		order.PaymentStatusFailed,
		order.PaymentStatusRefunded,
	}
	for _, s := range valid {
		parsed, err := order.PaymentStatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.PaymentStatusFromString("Bartered")
	require.Error(t, err)
}

func TestPaymentStatus_Validate(t *testing.T) {
	require.NoError(t, order.PaymentStatusPaid.Validate())
	require.Error(t, order.PaymentStatusUnknown.Validate())
	require.Error(t, order.PaymentStatus(42).Validate())
}

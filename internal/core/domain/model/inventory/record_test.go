package inventory_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, quantity, reserved int) *inventory.Record {
	t.Helper()
	r, err := inventory.RestoreRecord(kernel.NewUUID(), kernel.NewUUID(), quantity, reserved)
	require.NoError(t, err)
	return r
}

func TestRestoreRecord(t *testing.T) {
	t.Run("valid counters", func(t *testing.T) {
		r := mustRecord(t, 10, 3)
		assert.Equal(t, 10, r.Quantity())
		assert.Equal(t, 3, r.ReservedQuantity())
		assert.Equal(t, 7, r.Available())
	})

	t.Run("reserved above quantity is rejected", func(t *testing.T) {
		_, err := inventory.RestoreRecord(kernel.NewUUID(), kernel.NewUUID(), 5, 6)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative counters are rejected", func(t *testing.T) {
		_, err := inventory.RestoreRecord(kernel.NewUUID(), kernel.NewUUID(), -1, 0)
		require.Error(t, err)
		_, err = inventory.RestoreRecord(kernel.NewUUID(), kernel.NewUUID(), 1, -1)
		require.Error(t, err)
	})
}

func TestRecord_Reserve(t *testing.T) {
	t.Run("holds within availability", func(t *testing.T) {
		r := mustRecord(t, 10, 0)
		require.NoError(t, r.Reserve(3))
		assert.Equal(t, 10, r.Quantity())
		assert.Equal(t, 3, r.ReservedQuantity())
	})

	t.Run("fails beyond availability", func(t *testing.T) {
		r := mustRecord(t, 10, 8)
		err := r.Reserve(3)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientInventory)
		assert.Equal(t, 8, r.ReservedQuantity())
	})

	t.Run("rejects non-positive qty", func(t *testing.T) {
		r := mustRecord(t, 10, 0)
		require.Error(t, r.Reserve(0))
	})
}

func TestRecord_Release(t *testing.T) {
	t.Run("drops the hold", func(t *testing.T) {
		r := mustRecord(t, 10, 3)
		require.NoError(t, r.Release(3))
		assert.Equal(t, 10, r.Quantity())
		assert.Equal(t, 0, r.ReservedQuantity())
	})

	t.Run("double release is rejected", func(t *testing.T) {
		r := mustRecord(t, 10, 3)
		require.NoError(t, r.Release(3))
		require.Error(t, r.Release(3))
		assert.Equal(t, 0, r.ReservedQuantity())
	})
}

func TestRecord_Commit(t *testing.T) {
	t.Run("converts hold into deduction", func(t *testing.T) {
		r := mustRecord(t, 10, 3)
		require.NoError(t, r.Commit(3))
		assert.Equal(t, 7, r.Quantity())
		assert.Equal(t, 0, r.ReservedQuantity())
	})

	t.Run("commit beyond reservation fails", func(t *testing.T) {
		r := mustRecord(t, 10, 2)
		require.Error(t, r.Commit(3))
		assert.Equal(t, 10, r.Quantity())
	})
}

// Reservation conservation: any interleaving of the three operations keeps
// 0 <= reserved <= quantity.
func TestRecord_ReservationConservation(t *testing.T) {
	r := mustRecord(t, 10, 0)

	check := func() {
		assert.GreaterOrEqual(t, r.ReservedQuantity(), 0)
		assert.LessOrEqual(t, r.ReservedQuantity(), r.Quantity())
	}

	require.NoError(t, r.Reserve(4))
	check()
	require.NoError(t, r.Reserve(6))
	check()
	require.Error(t, r.Reserve(1)) // everything is held
	check()
	require.NoError(t, r.Release(6))
	check()
	require.NoError(t, r.Commit(4))
	check()
	assert.Equal(t, 6, r.Quantity())
	assert.Equal(t, 0, r.ReservedQuantity())
	require.Error(t, r.Release(1)) // nothing left to release
	check()
}

func TestRecord_AddStock(t *testing.T) {
	r := mustRecord(t, 5, 5)
	require.NoError(t, r.AddStock(5))
	assert.Equal(t, 10, r.Quantity())
	assert.Equal(t, 5, r.Available())

	require.Error(t, r.AddStock(0))
}

package cart_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCartItem(t *testing.T, quantity int) *cart.Item {
	t.Helper()
	item, err := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), quantity, 99.5, time.Now())
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		item := mustCartItem(t, 3)
		assert.Equal(t, 3, item.Quantity())
		assert.InDelta(t, 99.5, item.UnitPrice(), 0.001)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), 0, 10, time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), 1, -0.01, time.Now())
		require.Error(t, err)
	})
}

func TestItem_SetQuantity(t *testing.T) {
	item := mustCartItem(t, 3)

	require.NoError(t, item.SetQuantity(7))
	assert.Equal(t, 7, item.Quantity())

	require.Error(t, item.SetQuantity(0))
	assert.Equal(t, 7, item.Quantity())
}

func TestItem_Merge(t *testing.T) {
	item := mustCartItem(t, 3)

	require.NoError(t, item.Merge(2))
	assert.Equal(t, 5, item.Quantity())

	require.Error(t, item.Merge(-1))
	assert.Equal(t, 5, item.Quantity())
}

func TestItem_MatchesLine(t *testing.T) {
	productID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	item, err := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), productID,
		warehouseID, 1, 10, time.Now())
	require.NoError(t, err)

	assert.True(t, item.MatchesLine(productID, warehouseID))
	assert.False(t, item.MatchesLine(productID, kernel.NewUUID()))
	assert.False(t, item.MatchesLine(kernel.NewUUID(), warehouseID))
}

func TestItem_Validate(t *testing.T) {
	var item *cart.Item
	assert.Equal(t, cart.ErrItemIsNotConstructed, item.Validate())

	zero := &cart.Item{}
	assert.Equal(t, cart.ErrItemIsNotConstructed, zero.Validate())
}

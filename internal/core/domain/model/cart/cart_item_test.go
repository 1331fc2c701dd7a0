package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrikart/internal/core/domain/model/cart"
	"agrikart/internal/core/domain/model/kernel"
)

func TestNewCartItem(t *testing.T) {
	t.Run("creates valid line", func(t *testing.T) {
		buyerID := kernel.NewUUID()
		produceID := kernel.NewUUID()

		item, err := cart.NewCartItem(buyerID, produceID, 3)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.BuyerID().IsEqual(buyerID))
		assert.True(t, item.ProduceID().IsEqual(produceID))
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := cart.NewCartItem(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.Error(t, err)
	})

	t.Run("rejects unconstructed identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := cart.NewCartItem(zero, kernel.NewUUID(), 1)
		require.Error(t, err)

		_, err = cart.NewCartItem(kernel.NewUUID(), zero, 1)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item cart.CartItem
		require.Error(t, item.Validate())
	})
}

func TestCartItem_AddQuantity(t *testing.T) {
	item, err := cart.NewCartItem(kernel.NewUUID(), kernel.NewUUID(), 2)
	require.NoError(t, err)

	t.Run("increases quantity", func(t *testing.T) {
		increased, err := item.AddQuantity(3)

		require.NoError(t, err)
		assert.Equal(t, 5, increased.Quantity())
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("rejects result below one", func(t *testing.T) {
		_, err := item.AddQuantity(-2)
		require.Error(t, err)
	})
}

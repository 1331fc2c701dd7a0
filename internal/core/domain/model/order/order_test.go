package order_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/order"
)

func newTestItem(t *testing.T, quantity int) order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Tomatoes", decimal.NewFromFloat(24.50), quantity)
	require.NoError(t, err)

	return item
}

func newTestCoordinate(t *testing.T, lat, lon float64) *kernel.Coordinate {
	t.Helper()

	coordinate, err := kernel.NewCoordinate(lat, lon)
	require.NoError(t, err)

	return &coordinate
}

func TestNewItem(t *testing.T) {
	t.Run("creates valid item", func(t *testing.T) {
		item := newTestItem(t, 3)

		require.NoError(t, item.Validate())
		assert.Equal(t, "Tomatoes", item.Name())
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.LineTotal().Equal(decimal.NewFromFloat(73.50)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Tomatoes", decimal.NewFromInt(5), 0)
		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", decimal.NewFromInt(5), 1)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item
		require.Error(t, item.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		items := []order.Item{newTestItem(t, 2), newTestItem(t, 1)}

		o, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			items,
			newTestCoordinate(t, 12.97, 77.59),
			newTestCoordinate(t, 12.90, 77.50),
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Items(), 2)
		assert.NotNil(t, o.DeliveryCoordinate())
		assert.NotNil(t, o.PickupCoordinate())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("allows missing coordinates", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), []order.Item{newTestItem(t, 1)}, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, o.DeliveryCoordinate())
		assert.Nil(t, o.PickupCoordinate())
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("rejects unconstructed item", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), []order.Item{{}}, nil, nil)

		require.Error(t, err)
	})

	t.Run("rejects unconstructed coordinate", func(t *testing.T) {
		var zero kernel.Coordinate
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), []order.Item{newTestItem(t, 1)}, &zero, nil)

		require.Error(t, err)
	})

	t.Run("items are copied defensively", func(t *testing.T) {
		items := []order.Item{newTestItem(t, 1)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, nil, nil)
		require.NoError(t, err)

		items[0] = order.Item{}

		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("preserves status and creation time", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			[]order.Item{newTestItem(t, 1)},
			order.InTransit,
			createdAt,
			nil,
			nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			[]order.Item{newTestItem(t, 1)},
			order.Unknown,
			time.Now(),
			nil,
			nil,
		)

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), []order.Item{newTestItem(t, 1)}, nil, nil)
		require.NoError(t, err)
		return o
	}

	t.Run("moves between any valid statuses", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())

		// back-office corrections may rewind the lifecycle
		require.NoError(t, o.ChangeStatus(order.Pending))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects invalid status and keeps current one", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Status(42))

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("confirm shortcut", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("fails on unconstructed order", func(t *testing.T) {
		var o order.Order

		err := o.ChangeStatus(order.Confirmed)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsAssignable(t *testing.T) {
	pickup := newTestCoordinate(t, 12.90, 77.50)

	t.Run("pending order with pickup coordinate", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), []order.Item{newTestItem(t, 1)}, nil, pickup)
		require.NoError(t, err)

		assert.True(t, o.IsAssignable())
	})

	t.Run("pending order without pickup coordinate", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), []order.Item{newTestItem(t, 1)}, nil, nil)
		require.NoError(t, err)

		assert.False(t, o.IsAssignable())
	})

	t.Run("non-pending order", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), []order.Item{newTestItem(t, 1)}, nil, pickup)
		require.NoError(t, err)
		require.NoError(t, o.ChangeStatus(order.Confirmed))

		assert.False(t, o.IsAssignable())
	})
}

func TestOrder_TotalPrice(t *testing.T) {
	itemA, err := order.NewItem(kernel.NewUUID(), "Tomatoes", decimal.NewFromFloat(24.50), 2)
	require.NoError(t, err)
	itemB, err := order.NewItem(kernel.NewUUID(), "Spinach", decimal.NewFromFloat(12.25), 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.Item{itemA, itemB}, nil, nil)
	require.NoError(t, err)

	assert.True(t, o.TotalPrice().Equal(decimal.NewFromFloat(61.25)))
}

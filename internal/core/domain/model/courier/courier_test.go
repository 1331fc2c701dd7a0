package courier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrikart/internal/core/domain/model/courier"
	"agrikart/internal/core/domain/model/kernel"
)

func newTestCourier(t *testing.T, lat, lon float64) *courier.Courier {
	t.Helper()

	coordinate, err := kernel.NewCoordinate(lat, lon)
	require.NoError(t, err)

	c, err := courier.NewCourier(
		kernel.NewUUID(), "Ravi", "+911234567890", "12 Market Road", coordinate)
	require.NoError(t, err)

	return c
}

func TestNewCourier(t *testing.T) {
	t.Run("creates valid courier", func(t *testing.T) {
		c := newTestCourier(t, 12.97, 77.59)

		require.NoError(t, c.Validate())
		assert.Equal(t, "Ravi", c.Name())
		assert.Equal(t, "+911234567890", c.Phone())
		assert.Equal(t, "12 Market Road", c.Address())
		assert.InDelta(t, 12.97, c.Coordinate().Latitude(), 1e-9)
	})

	t.Run("allows empty address", func(t *testing.T) {
		coordinate, err := kernel.NewCoordinate(0, 0)
		require.NoError(t, err)

		c, err := courier.NewCourier(kernel.NewUUID(), "Ravi", "+911234567890", "", coordinate)

		require.NoError(t, err)
		assert.Empty(t, c.Address())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		coordinate, err := kernel.NewCoordinate(0, 0)
		require.NoError(t, err)

		_, err = courier.NewCourier(kernel.NewUUID(), "", "+911234567890", "", coordinate)

		require.Error(t, err)
		assert.ErrorIs(t, err, courier.ErrNameIsRequired)
	})

	t.Run("rejects missing phone", func(t *testing.T) {
		coordinate, err := kernel.NewCoordinate(0, 0)
		require.NoError(t, err)

		_, err = courier.NewCourier(kernel.NewUUID(), "Ravi", "", "", coordinate)

		require.Error(t, err)
		assert.ErrorIs(t, err, courier.ErrPhoneIsRequired)
	})

	t.Run("rejects unconstructed coordinate", func(t *testing.T) {
		var zero kernel.Coordinate

		_, err := courier.NewCourier(kernel.NewUUID(), "Ravi", "+911234567890", "", zero)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c courier.Courier
		assert.Equal(t, courier.ErrCourierIsNotConstructed, c.Validate())
	})
}

func TestCourier_DistanceToKm(t *testing.T) {
	c := newTestCourier(t, 12.00, 77.00)

	farm, err := kernel.NewCoordinate(12.05, 77.00)
	require.NoError(t, err)

	distance, err := c.DistanceToKm(farm)

	require.NoError(t, err)
	assert.InDelta(t, 5.5, distance, 0.1)
}

func TestNewAssignment(t *testing.T) {
	t.Run("creates valid assignment", func(t *testing.T) {
		courierID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		assignment, err := courier.NewAssignment(courierID, orderID, 7.25)

		require.NoError(t, err)
		require.NoError(t, assignment.Validate())
		assert.True(t, assignment.CourierID().IsEqual(courierID))
		assert.True(t, assignment.OrderID().IsEqual(orderID))
		assert.InDelta(t, 7.25, assignment.DistanceKm(), 1e-9)
		assert.False(t, assignment.AssignedAt().IsZero())
	})

	t.Run("rejects negative distance", func(t *testing.T) {
		_, err := courier.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), -0.1)

		require.Error(t, err)
	})

	t.Run("rejects unconstructed identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := courier.NewAssignment(zero, kernel.NewUUID(), 1)
		require.Error(t, err)

		_, err = courier.NewAssignment(kernel.NewUUID(), zero, 1)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var assignment courier.Assignment
		require.Error(t, assignment.Validate())
	})
}

package order_test

import (
	"testing"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingEvent(t *testing.T) {
	eventID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	t.Run("should create event without location", func(t *testing.T) {
		e, err := order.NewTrackingEvent(eventID, orderID, driverID, order.PickedUpMessage, nil)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(eventID))
		assert.True(t, e.OrderID().IsEqual(orderID))
		assert.True(t, e.DriverID().IsEqual(driverID))
		assert.Equal(t, order.PickedUpMessage, e.StatusMessage())
		assert.Nil(t, e.Location())
		assert.False(t, e.CreatedAt().IsZero())
	})

	t.Run("should create event with location snapshot", func(t *testing.T) {
		loc, err := kernel.NewLocation(12.9716, 77.5946)
		require.NoError(t, err)

		e, err := order.NewTrackingEvent(eventID, orderID, driverID, "en route", &loc)

		require.NoError(t, err)
		require.NotNil(t, e.Location())
		assert.True(t, e.Location().IsEqual(loc))
	})

	t.Run("should fail with empty message", func(t *testing.T) {
		e, err := order.NewTrackingEvent(eventID, orderID, driverID, "", nil)

		require.Error(t, err)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "statusMessage")
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		e, err := order.NewTrackingEvent(eventID, invalidID, driverID, "msg", nil)

		require.Error(t, err)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "orderId")
	})

	t.Run("should fail with zero-value location", func(t *testing.T) {
		var invalidLoc kernel.Location

		e, err := order.NewTrackingEvent(eventID, orderID, driverID, "msg", &invalidLoc)

		require.Error(t, err)
		assert.Nil(t, e)
	})
}

func TestRestoreTrackingEvent(t *testing.T) {
	t.Run("should restore with persisted timestamp", func(t *testing.T) {
		createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

		e, err := order.RestoreTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.PickedUpMessage, nil, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, createdAt, e.CreatedAt())
	})
}

func TestTrackingEvent_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var e order.TrackingEvent

		assert.Equal(t, order.ErrTrackingEventIsNotConstructed, e.Validate())
	})
}

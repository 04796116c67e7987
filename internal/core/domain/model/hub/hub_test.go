package hub_test

import (
	"testing"

	"laundromart/internal/core/domain/model/hub"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHub(t *testing.T) {
	location, err := kernel.NewLocation(12.9716, 77.5946)
	require.NoError(t, err)

	t.Run("should create valid hub", func(t *testing.T) {
		id := kernel.NewUUID()

		h, err := hub.NewHub(id, "Koramangala Hub", "80 Feet Road", "+9180000000",
			location, []order.ServiceType{order.WashFold, order.Ironing})

		require.NoError(t, err)
		require.NoError(t, h.Validate())
		assert.True(t, h.ID().IsEqual(id))
		assert.Equal(t, "Koramangala Hub", h.Name())
		assert.True(t, h.Offers(order.WashFold))
		assert.True(t, h.Offers(order.Ironing))
		assert.False(t, h.Offers(order.DryCleaning))
	})

	t.Run("should fail without services", func(t *testing.T) {
		h, err := hub.NewHub(kernel.NewUUID(), "Hub", "Addr", "", location, nil)

		require.Error(t, err)
		assert.Nil(t, h)
		assert.Contains(t, err.Error(), "services")
	})

	t.Run("should fail with invalid service", func(t *testing.T) {
		h, err := hub.NewHub(kernel.NewUUID(), "Hub", "Addr", "", location,
			[]order.ServiceType{order.ServiceTypeUnknown})

		require.Error(t, err)
		assert.Nil(t, h)
	})

	t.Run("should fail with empty name or address", func(t *testing.T) {
		_, err := hub.NewHub(kernel.NewUUID(), "", "Addr", "", location, []order.ServiceType{order.WashFold})
		require.Error(t, err)

		_, err = hub.NewHub(kernel.NewUUID(), "Hub", "", "", location, []order.ServiceType{order.WashFold})
		require.Error(t, err)
	})

	t.Run("services accessor returns a copy", func(t *testing.T) {
		h, err := hub.NewHub(kernel.NewUUID(), "Hub", "Addr", "", location,
			[]order.ServiceType{order.WashFold})
		require.NoError(t, err)

		services := h.Services()
		services[0] = order.DryCleaning

		assert.True(t, h.Offers(order.WashFold))
		assert.False(t, h.Offers(order.DryCleaning))
	})
}

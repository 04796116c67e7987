package kernel_test

import (
	"testing"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create valid location", func(t *testing.T) {
		loc, err := kernel.NewLocation(12.9716, 77.5946)

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.InDelta(t, 12.9716, loc.Latitude(), 0.000001)
		assert.InDelta(t, 77.5946, loc.Longitude(), 0.000001)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		boundaries := []struct {
			lat float64
			lon float64
		}{
			{kernel.LatitudeMin, kernel.LongitudeMin},
			{kernel.LatitudeMax, kernel.LongitudeMax},
			{0, 0},
		}

		for _, b := range boundaries {
			loc, err := kernel.NewLocation(b.lat, b.lon)

			require.NoError(t, err)
			require.NoError(t, loc.Validate())
		}
	})

	t.Run("should reject out-of-range latitude", func(t *testing.T) {
		_, err := kernel.NewLocation(91, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should reject out-of-range longitude", func(t *testing.T) {
		_, err := kernel.NewLocation(0, -180.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("should join multiple range errors", func(t *testing.T) {
		_, err := kernel.NewLocation(-100, 300)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestLocation_IsEqual(t *testing.T) {
	loc1, _ := kernel.NewLocation(10, 20)
	loc2, _ := kernel.NewLocation(10, 20)
	loc3, _ := kernel.NewLocation(10, 21)

	assert.True(t, loc1.IsEqual(loc2))
	assert.False(t, loc1.IsEqual(loc3))
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var loc kernel.Location

		err := loc.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "location must be created")
	})
}

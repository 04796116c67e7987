package profile_test

import (
	"testing"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/profile"
	"laundromart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("should round-trip valid roles", func(t *testing.T) {
		for _, role := range []profile.Role{profile.Customer, profile.Driver, profile.Admin} {
			parsed, err := profile.RoleFromString(role.String())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := profile.RoleFromString("superuser")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, profile.Customer.Validate())
	require.NoError(t, profile.Driver.Validate())
	require.NoError(t, profile.Admin.Validate())
	require.Error(t, profile.RoleUnknown.Validate())
	require.Error(t, profile.Role(42).Validate())
}

func TestNewProfile(t *testing.T) {
	t.Run("should create valid profile", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := profile.NewProfile(id, profile.Driver, "Ravi Kumar", "ravi@example.com", "+91900000000")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, profile.Driver, p.Role())
		assert.Equal(t, "Ravi Kumar", p.FullName())
		assert.Equal(t, "ravi@example.com", p.Email())
		assert.True(t, p.IsDriver())
		assert.False(t, p.IsAdmin())
		assert.False(t, p.IsCustomer())
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		p, err := profile.NewProfile(kernel.NewUUID(), profile.RoleUnknown, "", "a@b.c", "")

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		p, err := profile.NewProfile(kernel.NewUUID(), profile.Customer, "", "", "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("zero value profile is invalid", func(t *testing.T) {
		var p profile.Profile

		assert.Equal(t, profile.ErrProfileIsNotConstructed, p.Validate())
	})
}

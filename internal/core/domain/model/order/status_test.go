package order_test

import (
	"fmt"
	"testing"

	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allValidStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.Approved,
		order.Assigned,
		order.Picked,
		order.InLaundry,
		order.Ready,
		order.OutForDelivery,
		order.Delivered,
		order.Cancelled,
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Approved))
		assert.Equal(t, 3, int(order.Assigned))
		assert.Equal(t, 4, int(order.Picked))
		assert.Equal(t, 5, int(order.InLaundry))
		assert.Equal(t, 6, int(order.Ready))
		assert.Equal(t, 7, int(order.OutForDelivery))
		assert.Equal(t, 8, int(order.Delivered))
		assert.Equal(t, 9, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(10),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return snake_case names", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "pending"},
			{order.Approved, "approved"},
			{order.Assigned, "assigned"},
			{order.Picked, "picked"},
			{order.InLaundry, "in_laundry"},
			{order.Ready, "ready"},
			{order.OutForDelivery, "out_for_delivery"},
			{order.Delivered, "delivered"},
			{order.Cancelled, "cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip all valid statuses", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the unknown placeholder", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, status := range []order.Status{
		order.Pending, order.Approved, order.Assigned,
		order.Picked, order.InLaundry, order.Ready, order.OutForDelivery,
	} {
		assert.False(t, status.IsTerminal(), "%s must not be terminal", status)
	}
}

func TestStatus_Approve(t *testing.T) {
	t.Run("pending approves to approved", func(t *testing.T) {
		next, err := order.Pending.Approve()

		require.NoError(t, err)
		assert.Equal(t, order.Approved, next)
	})

	t.Run("every other status refuses approve", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			if status == order.Pending {
				continue
			}

			_, err := status.Approve()

			require.Error(t, err, "approve from %s must fail", status)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestStatus_Reject(t *testing.T) {
	t.Run("pending rejects to cancelled", func(t *testing.T) {
		next, err := order.Pending.Reject()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("every other status refuses reject", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			if status == order.Pending {
				continue
			}

			_, err := status.Reject()

			require.Error(t, err, "reject from %s must fail", status)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("approved assigns to assigned", func(t *testing.T) {
		next, err := order.Approved.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)
	})

	t.Run("every other status refuses assign", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			if status == order.Approved {
				continue
			}

			_, err := status.Assign()

			require.Error(t, err, "assign from %s must fail", status)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("forward chain is exactly one step each", func(t *testing.T) {
		chain := []order.Status{
			order.Assigned,
			order.Picked,
			order.InLaundry,
			order.Ready,
			order.OutForDelivery,
			order.Delivered,
		}

		for i := 0; i < len(chain)-1; i++ {
			next, err := chain[i].Next()

			require.NoError(t, err)
			assert.Equal(t, chain[i+1], next)
		}
	})

	t.Run("statuses outside the chain refuse advance", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Unknown, order.Pending, order.Approved, order.Delivered, order.Cancelled,
		} {
			_, err := status.Next()

			require.Error(t, err, "advance from %s must fail", status)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})

	t.Run("terminal statuses have no successor", func(t *testing.T) {
		_, err := order.Delivered.Next()
		require.Error(t, err)

		_, err = order.Cancelled.Next()
		require.Error(t, err)
	})
}

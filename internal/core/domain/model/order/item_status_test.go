package order_test

import (
	"fmt"
	"testing"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.ItemStatus{
			order.ItemPrepress,
			order.ItemPress,
			order.ItemBindery,
			order.ItemHold,
			order.ItemShipping,
			order.ItemCompleted,
			order.ItemCancelled,
		}

		for _, status := range validStatuses {
			require.NoError(t, status.Validate(), "status %s", status)
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.ItemStatus{order.ItemUnknown, order.ItemStatus(-1), order.ItemStatus(8)} {
			err := status.Validate()
			require.Error(t, err, "status value %d", int(status))
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestItemStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.ItemStatus
		expected string
	}{
		{order.ItemPrepress, "Prepress"},
		{order.ItemPress, "Press"},
		{order.ItemBindery, "Bindery"},
		{order.ItemHold, "Hold"},
		{order.ItemShipping, "Shipping"},
		{order.ItemCompleted, "Completed"},
		{order.ItemCancelled, "Cancelled"},
		{order.ItemUnknown, "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestItemStatusFromString(t *testing.T) {
	t.Run("should parse every valid name", func(t *testing.T) {
		names := map[string]order.ItemStatus{
			"Prepress":  order.ItemPrepress,
			"Press":     order.ItemPress,
			"Bindery":   order.ItemBindery,
			"Hold":      order.ItemHold,
			"Shipping":  order.ItemShipping,
			"Completed": order.ItemCompleted,
			"Cancelled": order.ItemCancelled,
		}

		for name, expected := range names {
			status, err := order.ItemStatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ItemStatusFromString("Folding")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestItemStatus_TransitionTo(t *testing.T) {
	t.Run("should allow movement among open states in any direction", func(t *testing.T) {
		openStatuses := []order.ItemStatus{
			order.ItemPrepress,
			order.ItemPress,
			order.ItemBindery,
			order.ItemHold,
			order.ItemShipping,
		}

		for _, from := range openStatuses {
			for _, to := range openStatuses {
				next, err := from.TransitionTo(to)
				require.NoError(t, err, "from %s to %s", from, to)
				assert.Equal(t, to, next)
			}
		}
	})

	t.Run("hold is reachable from and back to any open state", func(t *testing.T) {
		next, err := order.ItemPress.TransitionTo(order.ItemHold)
		require.NoError(t, err)
		assert.Equal(t, order.ItemHold, next)

		next, err = order.ItemHold.TransitionTo(order.ItemBindery)
		require.NoError(t, err)
		assert.Equal(t, order.ItemBindery, next)
	})

	t.Run("should reject transitions out of terminal states", func(t *testing.T) {
		for _, from := range []order.ItemStatus{order.ItemCompleted, order.ItemCancelled} {
			_, err := from.TransitionTo(order.ItemPrepress)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)

			var transitionErr *errs.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, "orderItem", transitionErr.EntityName)
		}
	})

	t.Run("should reject invalid targets", func(t *testing.T) {
		_, err := order.ItemPrepress.TransitionTo(order.ItemUnknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

package estimate_test

import (
	"fmt"
	"testing"

	"printshop/internal/core/domain/model/estimate"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(estimate.Unknown))
	assert.Equal(t, 1, int(estimate.Draft))
	assert.Equal(t, 2, int(estimate.Pending))
	assert.Equal(t, 3, int(estimate.Approved))
	assert.Equal(t, 4, int(estimate.Cancelled))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []estimate.Status{
			estimate.Draft, estimate.Pending, estimate.Approved, estimate.Cancelled,
		} {
			require.NoError(t, status.Validate(), "status %s", status)
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []estimate.Status{
			estimate.Unknown, estimate.Status(-1), estimate.Status(5),
		} {
			err := status.Validate()
			require.Error(t, err, "status value %d", int(status))
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   estimate.Status
		expected string
	}{
		{estimate.Draft, "Draft"},
		{estimate.Pending, "Pending"},
		{estimate.Approved, "Approved"},
		{estimate.Cancelled, "Cancelled"},
		{estimate.Unknown, "Unknown"},
		{estimate.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	names := map[string]estimate.Status{
		"Draft":     estimate.Draft,
		"Pending":   estimate.Pending,
		"Approved":  estimate.Approved,
		"Cancelled": estimate.Cancelled,
	}

	for name, expected := range names {
		status, err := estimate.StatusFromString(name)
		require.NoError(t, err)
		assert.Equal(t, expected, status)
	}

	_, err := estimate.StatusFromString("Open")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Approve(t *testing.T) {
	t.Run("should approve from Draft and Pending", func(t *testing.T) {
		for _, from := range []estimate.Status{estimate.Draft, estimate.Pending} {
			status, err := from.Approve()
			require.NoError(t, err)
			assert.Equal(t, estimate.Approved, status)
		}
	})

	t.Run("should reject approval from terminal states", func(t *testing.T) {
		for _, from := range []estimate.Status{estimate.Approved, estimate.Cancelled} {
			_, err := from.Approve()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from Draft and Pending", func(t *testing.T) {
		for _, from := range []estimate.Status{estimate.Draft, estimate.Pending} {
			status, err := from.Cancel()
			require.NoError(t, err)
			assert.Equal(t, estimate.Cancelled, status)
		}
	})

	t.Run("should reject cancelling a decided estimate", func(t *testing.T) {
		for _, from := range []estimate.Status{estimate.Approved, estimate.Cancelled} {
			_, err := from.Cancel()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow movement among open states", func(t *testing.T) {
		status, err := estimate.Draft.TransitionTo(estimate.Pending, "estimate")
		require.NoError(t, err)
		assert.Equal(t, estimate.Pending, status)

		status, err = estimate.Pending.TransitionTo(estimate.Draft, "estimate")
		require.NoError(t, err)
		assert.Equal(t, estimate.Draft, status)
	})

	t.Run("should reject transitions out of terminal states", func(t *testing.T) {
		_, err := estimate.Approved.TransitionTo(estimate.Draft, "estimate")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)

		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "estimate", transitionErr.EntityName)
		assert.Equal(t, "Approved", transitionErr.From)
		assert.Equal(t, "Draft", transitionErr.To)
	})

	t.Run("should carry the reporting entity name", func(t *testing.T) {
		_, err := estimate.Cancelled.TransitionTo(estimate.Pending, "estimateItem")
		require.Error(t, err)

		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "estimateItem", transitionErr.EntityName)
	})
}

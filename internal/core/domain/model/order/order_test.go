package order_test

import (
	"testing"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/production"
	"printshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "PO-3001", nil, false)
	require.NoError(t, err)
	return o
}

func newTestItem(t *testing.T, orderID kernel.UUID) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), orderID, "Posters", 200,
		decimal.RequireFromString("30.00"),
		decimal.RequireFromString("80.00"),
		decimal.RequireFromString("5.00"))
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Pending status", func(t *testing.T) {
		id := kernel.NewUUID()
		officeID := kernel.NewUUID()
		contactID := kernel.NewUUID()
		inHands := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

		o, err := order.NewOrder(id, officeID, contactID, "PO-3001", &inHands, true)
		require.NoError(t, err)

		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.OfficeID().IsEqual(officeID))
		assert.True(t, o.ContactID().IsEqual(contactID))
		assert.Equal(t, "PO-3001", o.PONumber())
		assert.Equal(t, &inHands, o.InHandsDate())
		assert.True(t, o.WalkIn())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.EstimateID())
		assert.Empty(t, o.Items())
		assert.Equal(t, 0, o.Version())
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), "PO", nil, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should validate constructed order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Validate())

		var zero order.Order
		require.Error(t, zero.Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	estimateID := kernel.NewUUID()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &estimateID,
		"PO-3001", nil, false, order.Shipping, nil, nil, 5)
	require.NoError(t, err)

	assert.Equal(t, order.Shipping, o.Status())
	assert.Equal(t, 5, o.Version())
	require.NotNil(t, o.EstimateID())
	assert.True(t, o.EstimateID().IsEqual(estimateID))
}

func TestOrder_LinkEstimate(t *testing.T) {
	t.Run("should link once", func(t *testing.T) {
		o := newTestOrder(t)
		estimateID := kernel.NewUUID()
		require.NoError(t, o.LinkEstimate(estimateID))
		require.NotNil(t, o.EstimateID())
		assert.True(t, o.EstimateID().IsEqual(estimateID))
	})

	t.Run("should reject relinking", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.LinkEstimate(kernel.NewUUID()))
		err := o.LinkEstimate(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should add item belonging to the order", func(t *testing.T) {
		o := newTestOrder(t)
		item := newTestItem(t, o.ID())
		require.NoError(t, o.AddItem(item))
		require.Len(t, o.Items(), 1)

		found, err := o.Item(item.ID())
		require.NoError(t, err)
		assert.Same(t, item, found)
	})

	t.Run("should reject foreign item", func(t *testing.T) {
		o := newTestOrder(t)
		foreign := newTestItem(t, kernel.NewUUID())
		err := o.AddItem(foreign)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report missing item", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.Item(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should move through the financial workflow", func(t *testing.T) {
		o := newTestOrder(t)
		for _, target := range []order.Status{
			order.PaymentReceived, order.Shipping, order.Invoicing,
			order.Invoiced, order.Completed,
		} {
			require.NoError(t, o.ChangeStatus(target))
			assert.Equal(t, target, o.Status())
		}
	})

	t.Run("should reject leaving a terminal status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))
		err := o.ChangeStatus(order.Pending)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_MarkInvoiced(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.MarkInvoiced())
	assert.Equal(t, order.Invoiced, o.Status())
}

func TestOrder_AttachShippingInfo(t *testing.T) {
	o := newTestOrder(t)
	info := production.ShippingInfo{
		ID:      kernel.NewUUID(),
		Carrier: "UPS",
		Address: "1 Main St",
		Cost:    decimal.RequireFromString("12.00"),
	}
	require.NoError(t, o.AttachShippingInfo(info))
	require.NotNil(t, o.ShippingInfo())
	assert.Equal(t, "UPS", o.ShippingInfo().Carrier)

	err := o.AttachShippingInfo(info)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderItemInputs() []commands.OrderItemInput {
	return []commands.OrderItemInput{
		{
			Description:    "Business cards",
			Quantity:       500,
			Cost:           decimal.RequireFromString("40.00"),
			Amount:         decimal.RequireFromString("100.00"),
			ShippingAmount: decimal.RequireFromString("10.00"),
		},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	officeID := kernel.NewUUID()
	contactID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, officeID, contactID, "PO-2001", nil, validOrderItemInputs())
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, officeID, cmd.OfficeID())
	assert.Equal(t, contactID, cmd.ContactID())
	assert.Equal(t, "PO-2001", cmd.PONumber())
	assert.Nil(t, cmd.InHandsDate())
	assert.Len(t, cmd.Items(), 1)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), kernel.NewUUID(), "PO-2001", nil, validOrderItemInputs())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "PO-2001", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_ItemWithoutDescription(t *testing.T) {
	items := validOrderItemInputs()
	items[0].Description = ""
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "PO-2001", nil, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_NonPositiveQuantity(t *testing.T) {
	items := validOrderItemInputs()
	items[0].Quantity = 0
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "PO-2001", nil, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_NegativeAmountsAllowed(t *testing.T) {
	items := validOrderItemInputs()
	items[0].Amount = decimal.RequireFromString("-25.00") // credit line
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "PO-2001", nil, items)
	require.NoError(t, err)
}

package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrMarkOrderInvoicedCommandIsNotConstructed = errors.New(
		"MarkOrderInvoicedCommand must be created via NewMarkOrderInvoicedCommand constructor",
	)
)

// MarkOrderInvoicedCommand represents a request to mark an order as invoiced
// after its invoice has been issued to the customer.
type MarkOrderInvoicedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderInvoicedCommand creates a command to mark an order invoiced.
func NewMarkOrderInvoicedCommand(orderID kernel.UUID) (MarkOrderInvoicedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderInvoicedCommand{}, err
	}

	return MarkOrderInvoicedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderInvoicedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderInvoicedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark invoiced.
func (c MarkOrderInvoicedCommand) OrderID() kernel.UUID {
	return c.orderID
}

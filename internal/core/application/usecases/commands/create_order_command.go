package commands

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItemInput carries the fields of one line item on a directly created
// order. Monetary values are exact decimals; negatives (credits) are permitted.
type OrderItemInput struct {
	Description    string
	Quantity       int
	Cost           decimal.Decimal
	Amount         decimal.Decimal
	ShippingAmount decimal.Decimal
	Ink            string
	Size           string
	Notes          string
}

// CreateOrderCommand represents a request to create an order without an
// estimate stage, the walk-in flow for jobs quoted on the spot.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	officeID    kernel.UUID
	contactID   kernel.UUID
	poNumber    string
	inHandsDate *time.Time
	items       []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a walk-in order.
// Validates identifiers and requires at least one item with a description
// and positive quantity.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	officeID kernel.UUID,
	contactID kernel.UUID,
	poNumber string,
	inHandsDate *time.Time,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		poNumber:    poNumber,
		inHandsDate: inHandsDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOfficeID(officeID),
		cmd.setContactID(contactID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OfficeID returns the identifier of the owning office.
func (c CreateOrderCommand) OfficeID() kernel.UUID {
	return c.officeID
}

// ContactID returns the identifier of the customer contact person.
func (c CreateOrderCommand) ContactID() kernel.UUID {
	return c.contactID
}

// PONumber returns the customer purchase-order number.
func (c CreateOrderCommand) PONumber() string {
	return c.poNumber
}

// InHandsDate returns the in-hands date, or nil when open.
func (c CreateOrderCommand) InHandsDate() *time.Time {
	return c.inHandsDate
}

// Items returns the line-item inputs.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setOfficeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.officeID = id
	return nil
}

func (c *CreateOrderCommand) setContactID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.contactID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if item.Description == "" {
			return errs.NewValueIsRequiredError("item description")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("item quantity")
		}
	}

	c.items = items
	return nil
}

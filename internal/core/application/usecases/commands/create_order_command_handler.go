package commands

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for walk-in order
// creation. Orders created here have no originating estimate.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, officeID, contactID, "PO-2001", nil, items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the order aggregate in Pending status with its items positioned
// in input sequence and persists it atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ord, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OfficeID(),
		cmd.ContactID(),
		cmd.PONumber(),
		cmd.InHandsDate(),
		true,
	)
	if err != nil {
		return err
	}

	for i, input := range cmd.Items() {
		item, err := order.NewItem(
			kernel.NewUUID(),
			ord.ID(),
			input.Description,
			input.Quantity,
			input.Cost,
			input.Amount,
			input.ShippingAmount,
		)
		if err != nil {
			return err
		}
		item.SetSpecs(input.Ink, input.Size, input.Notes)
		item.SetPosition(i + 1)

		if err = ord.AddItem(item); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

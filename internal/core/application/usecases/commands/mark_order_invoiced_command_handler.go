package commands

import (
	"context"
)

// MarkOrderInvoicedCommandHandler handles the business logic for marking an
// order invoiced on behalf of the external invoicing collaborator.
type MarkOrderInvoicedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderInvoicedCommandHandler creates a handler for the invoiced
// transition. Requires an OrderUoWFactory for transactional persistence.
func NewMarkOrderInvoicedCommandHandler(uowFactory OrderUoWFactory) MarkOrderInvoicedCommandHandler {
	return MarkOrderInvoicedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoiced command.
// Loads the order, moves it to Invoiced and persists the new status
// atomically. Fails when the order is already in a terminal status.
func (h *MarkOrderInvoicedCommandHandler) Handle(ctx context.Context, cmd MarkOrderInvoicedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.MarkInvoiced(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"printshop/internal/pkg/errs"
)

// ReorderOrderItemsCommandHandler handles the business logic for rewriting
// item display positions after a drag-and-drop reorder on the board.
type ReorderOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReorderOrderItemsCommandHandler creates a handler for item reordering.
// Requires an OrderUoWFactory for transactional persistence.
func NewReorderOrderItemsCommandHandler(uowFactory OrderUoWFactory) ReorderOrderItemsCommandHandler {
	return ReorderOrderItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reorder command.
// The command's item sequence must be a permutation of the order's items;
// positions are rewritten to 1..N in that sequence and persisted atomically.
func (h *ReorderOrderItemsCommandHandler) Handle(ctx context.Context, cmd ReorderOrderItemsCommand) error {
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

	if len(cmd.ItemIDs()) != len(ord.Items()) {
		return errs.NewValueIsInvalidError("itemIDs do not cover the order's items")
	}

	for i, itemID := range cmd.ItemIDs() {
		item, err := ord.Item(itemID)
		if err != nil {
			return err
		}
		item.SetPosition(i + 1)
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var (
	ErrReorderOrderItemsCommandIsNotConstructed = errors.New(
		"ReorderOrderItemsCommand must be created via NewReorderOrderItemsCommand constructor",
	)
)

// ReorderOrderItemsCommand represents a request to rewrite the display
// ordering of an order's items. The item list is the full new sequence;
// positions are assigned from its order.
type ReorderOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewReorderOrderItemsCommand creates a command to reorder an order's items.
// Requires a non-empty item sequence without duplicates.
func NewReorderOrderItemsCommand(
	orderID kernel.UUID,
	itemIDs []kernel.UUID,
) (ReorderOrderItemsCommand, error) {
	cmd := ReorderOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
	); err != nil {
		return ReorderOrderItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrReorderOrderItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose items are reordered.
func (c ReorderOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemIDs returns the item identifiers in their new display sequence.
func (c ReorderOrderItemsCommand) ItemIDs() []kernel.UUID {
	return c.itemIDs
}

func (c *ReorderOrderItemsCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ReorderOrderItemsCommand) setItemIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("itemIDs")
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidError("itemIDs contain duplicates")
		}
		seen[id] = struct{}{}
	}

	c.itemIDs = ids
	return nil
}

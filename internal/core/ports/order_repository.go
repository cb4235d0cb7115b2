package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the full graph: header, line items, and each item's
// nested production records.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its items and nested
	// records. For items carrying a migrated typesetting record, the
	// existing typesetting row is re-parented from its estimate item to the
	// new order item in the same operation.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order's header (status and
	// descriptive fields). Implementations must apply an optimistic version
	// check and return a VersionIsInvalidError when the stored version no
	// longer matches the aggregate's loaded version.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateItem persists changes to a single line item (status, position,
	// finished quantity) under the same optimistic version check.
	UpdateItem(ctx context.Context, item *order.Item) error

	// Get retrieves the complete order graph by its unique identifier, with
	// items ordered by position. Returns an ObjectNotFoundError when no
	// order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetItem retrieves a single line item with its nested records.
	// Returns an ObjectNotFoundError when no item exists.
	GetItem(ctx context.Context, id kernel.UUID) (*order.Item, error)
}

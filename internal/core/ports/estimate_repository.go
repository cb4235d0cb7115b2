package ports

import (
	"context"

	"printshop/internal/core/domain/model/estimate"
	"printshop/internal/core/domain/model/kernel"
)

// EstimateRepository defines the persistence contract for estimate aggregates.
// Implementations persist the full graph: header, line items, and each item's
// nested production records.
type EstimateRepository interface {
	// Add persists a new estimate aggregate with all of its items and
	// nested records.
	Add(ctx context.Context, aggregate *estimate.Estimate) error

	// Update persists changes to an existing estimate: header fields, the
	// order link, and current item statuses. Implementations must apply an
	// optimistic version check and return a VersionIsInvalidError when the
	// stored version no longer matches the aggregate's loaded version.
	Update(ctx context.Context, aggregate *estimate.Estimate) error

	// Get retrieves the complete estimate graph by its unique identifier,
	// with items in their original order. Returns an ObjectNotFoundError
	// when no estimate exists.
	Get(ctx context.Context, id kernel.UUID) (*estimate.Estimate, error)

	// GetByItem retrieves the complete estimate graph owning the given line
	// item. Returns an ObjectNotFoundError when no item exists.
	GetByItem(ctx context.Context, itemID kernel.UUID) (*estimate.Estimate, error)
}

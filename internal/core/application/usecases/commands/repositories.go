// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"printshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EstimateRepoFactory provides access to the estimate repository within a transaction.
	EstimateRepoFactory interface {
		EstimateRepository() ports.EstimateRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EstimateUoW manages transactions for estimate-only operations.
	// Used when commands only modify estimate aggregates.
	EstimateUoW interface {
		TxManager
		EstimateRepoFactory
	}

	// EstimateUoWFactory creates new estimate unit of work instances.
	EstimateUoWFactory interface {
		Create() EstimateUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across both estimate and order aggregates.
	// Used by the conversion, which clones the estimate graph into a new
	// order graph and marks the estimate approved in one atomic unit.
	UoW interface {
		TxManager
		EstimateRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

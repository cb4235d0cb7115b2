package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/guard"
)

var (
	ErrOrderBoardQueryIsNotConstructed = errors.New(
		"OrderBoardQuery must be created via NewOrderBoardQuery constructor",
	)
)

// OrderBoardQuery retrieves all open orders for the dashboard board view.
// Returns one card per order, grouped by status column, with financial totals
// recomputed from the current line items.
//
// Example:
//
//	query := NewOrderBoardQuery()
//	handler := NewOrderBoardQueryHandler(db)
//
//	cards, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order board: %w", err)
//	}
//
//	for _, card := range cards {
//	    fmt.Printf("%s [%s] %s due %v\n",
//	        card.PONumber, card.Status, card.Totals.TotalAmount, card.InHandsDate)
//	}
type OrderBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewOrderBoardQuery creates a query to load the order board.
// This is a parameterless query covering every non-terminal order.
func NewOrderBoardQuery() OrderBoardQuery {
	return OrderBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrOrderBoardQueryIsNotConstructed if validation fails.
func (q OrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrOrderBoardQueryIsNotConstructed)
}

// OrderBoardCard represents one order card on the dashboard board.
// ColumnPosition is the card's 1-based position within its status column.
// Totals are never read from stored columns; they are recomputed from the
// order's line items at query time.
type OrderBoardCard struct {
	ID             kernel.UUID
	PONumber       string
	Status         string
	WalkIn         bool
	EstimateLinked bool
	InHandsDate    *time.Time
	ColumnPosition int
	ItemCount      int
	Totals         services.Totals
}

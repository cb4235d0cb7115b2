package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/guard"
)

var (
	ErrOrderItemBoardQueryIsNotConstructed = errors.New(
		"OrderItemBoardQuery must be created via NewOrderItemBoardQuery constructor",
	)
)

// OrderItemBoardQuery retrieves one order's line items for the production
// board view, with each item's ordinal within the parent collection and the
// order's recomputed totals.
type OrderItemBoardQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrderItemBoardQuery creates a query to load an order's item board.
func NewOrderItemBoardQuery(orderID kernel.UUID) (OrderItemBoardQuery, error) {
	if err := orderID.Validate(); err != nil {
		return OrderItemBoardQuery{}, err
	}

	return OrderItemBoardQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrOrderItemBoardQueryIsNotConstructed if validation fails.
func (q OrderItemBoardQuery) Validate() error {
	return q.guard.Validate(ErrOrderItemBoardQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose items are loaded.
func (q OrderItemBoardQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemBoardCard represents one line item card on the production board.
// Ordinal and SiblingCount render the "item 3 of 7" indicator; a just-moved
// card (persisted position 0) surfaces first and gets Ordinal 1.
type OrderItemBoardCard struct {
	ID               kernel.UUID
	Description      string
	Status           string
	Ordinal          int
	SiblingCount     int
	Quantity         int
	FinishedQuantity int
}

// OrderItemBoardResponse is the assembled item board for a single order:
// the cards in display sequence plus totals recomputed from the same rows.
type OrderItemBoardResponse struct {
	OrderID kernel.UUID
	Items   []OrderItemBoardCard
	Totals  services.Totals
}

package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItemBoardQueryHandler loads one order's item board from the database.
type OrderItemBoardQueryHandler struct {
	db *gorm.DB
}

// NewOrderItemBoardQueryHandler creates a handler for item board queries.
// Requires a GORM database connection for query execution.
func NewOrderItemBoardQueryHandler(db *gorm.DB) OrderItemBoardQueryHandler {
	return OrderItemBoardQueryHandler{db: db}
}

// Handle executes the query and assembles the item cards in display sequence:
// persisted position ascending, so a just-moved card (position 0) surfaces
// first. Ordinals are renumbered 1..N over that sequence and totals are
// recomputed from the same rows. Returns an ObjectNotFoundError when the
// order does not exist.
func (h OrderItemBoardQueryHandler) Handle(
	ctx context.Context,
	query OrderItemBoardQuery,
) (OrderItemBoardResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderItemBoardResponse{}, err
	}

	var exists bool
	err := h.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, query.OrderID().Bytes()).
		Scan(&exists).Error
	if err != nil {
		return OrderItemBoardResponse{}, err
	}
	if !exists {
		return OrderItemBoardResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			status,
			quantity,
			finished_qty,
			cost,
			amount,
			shipping_amount
		FROM order_items
		WHERE order_id = ?
		ORDER BY position ASC, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderItemBoardResponse{}, err
	}
	defer rows.Close()

	response := OrderItemBoardResponse{
		OrderID: query.OrderID(),
		Items:   make([]OrderItemBoardCard, 0),
	}
	lines := make([]boardLine, 0)

	for rows.Next() {
		var (
			id                         uuid.UUID
			description                string
			status                     int
			quantity, finishedQty      int
			cost, amount, shippingAmnt string
		)

		if err = rows.Scan(&id, &description, &status, &quantity, &finishedQty,
			&cost, &amount, &shippingAmnt); err != nil {
			return OrderItemBoardResponse{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return OrderItemBoardResponse{}, idErr
		}

		line, lineErr := parseBoardLine(cost, amount, shippingAmnt)
		if lineErr != nil {
			return OrderItemBoardResponse{}, lineErr
		}
		lines = append(lines, line)

		response.Items = append(response.Items, OrderItemBoardCard{
			ID:               itemID,
			Description:      description,
			Status:           order.ItemStatus(status).String(),
			Ordinal:          len(response.Items) + 1,
			Quantity:         quantity,
			FinishedQuantity: finishedQty,
		})
	}

	if err = rows.Err(); err != nil {
		return OrderItemBoardResponse{}, err
	}

	for i := range response.Items {
		response.Items[i].SiblingCount = len(response.Items)
	}
	response.Totals = services.AggregateTotals(lines)

	return response, nil
}

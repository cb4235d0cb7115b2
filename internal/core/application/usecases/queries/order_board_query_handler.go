package queries

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// boardLine adapts one scanned item row to the aggregator's priced-line view.
type boardLine struct {
	cost           decimal.Decimal
	amount         decimal.Decimal
	shippingAmount decimal.Decimal
}

func (l boardLine) Cost() decimal.Decimal           { return l.cost }
func (l boardLine) Amount() decimal.Decimal         { return l.amount }
func (l boardLine) ShippingAmount() decimal.Decimal { return l.shippingAmount }

// OrderBoardQueryHandler loads the order board from the database.
// Terminal orders (Completed, Cancelled) are excluded from the board.
//
// Example:
//
//	handler := NewOrderBoardQueryHandler(db)
//	query := NewOrderBoardQuery()
//
//	cards, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to load order board: %v", err)
//	    return err
//	}
type OrderBoardQueryHandler struct {
	db *gorm.DB
}

// NewOrderBoardQueryHandler creates a handler for order board queries.
// Requires a GORM database connection for query execution.
func NewOrderBoardQueryHandler(db *gorm.DB) OrderBoardQueryHandler {
	return OrderBoardQueryHandler{db: db}
}

// Handle executes the query and assembles the board cards.
// Cards are grouped by status column; within a column they are ordered by
// in-hands date (open dates last) and PO number, and numbered 1..N. Totals
// are recomputed from the live item rows, never read from stored columns.
func (h OrderBoardQueryHandler) Handle(
	ctx context.Context,
	query OrderBoardQuery,
) ([]OrderBoardCard, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines, err := h.loadLines(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]OrderBoardCard, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			po_number,
			status,
			walk_in,
			estimate_id IS NOT NULL,
			in_hands_date
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY status, in_hands_date ASC NULLS LAST, po_number
	`, order.Completed, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		currentStatus  int
		columnPosition int
	)

	for rows.Next() {
		var (
			id             uuid.UUID
			poNumber       string
			status         int
			walkIn         bool
			estimateLinked bool
			inHandsDate    *time.Time
		)

		if err = rows.Scan(&id, &poNumber, &status, &walkIn, &estimateLinked, &inHandsDate); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		if status != currentStatus {
			currentStatus = status
			columnPosition = 0
		}
		columnPosition++

		orderLines := lines[id]
		cards = append(cards, OrderBoardCard{
			ID:             orderID,
			PONumber:       poNumber,
			Status:         order.Status(status).String(),
			WalkIn:         walkIn,
			EstimateLinked: estimateLinked,
			InHandsDate:    inHandsDate,
			ColumnPosition: columnPosition,
			ItemCount:      len(orderLines),
			Totals:         services.AggregateTotals(orderLines),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// loadLines fetches the priced item rows for all non-terminal orders,
// keyed by order identifier.
func (h OrderBoardQueryHandler) loadLines(ctx context.Context) (map[uuid.UUID][]boardLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			cost,
			amount,
			shipping_amount
		FROM order_items
		WHERE order_id IN (SELECT id FROM orders WHERE status NOT IN (?, ?))
	`, order.Completed, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[uuid.UUID][]boardLine)

	for rows.Next() {
		var (
			orderID                    uuid.UUID
			cost, amount, shippingAmnt string
		)

		if err = rows.Scan(&orderID, &cost, &amount, &shippingAmnt); err != nil {
			return nil, err
		}

		line, lineErr := parseBoardLine(cost, amount, shippingAmnt)
		if lineErr != nil {
			return nil, lineErr
		}

		lines[orderID] = append(lines[orderID], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func parseBoardLine(cost, amount, shippingAmount string) (boardLine, error) {
	var (
		line boardLine
		err  error
	)

	if line.cost, err = decimal.NewFromString(cost); err != nil {
		return boardLine{}, err
	}
	if line.amount, err = decimal.NewFromString(amount); err != nil {
		return boardLine{}, err
	}
	if line.shippingAmount, err = decimal.NewFromString(shippingAmount); err != nil {
		return boardLine{}, err
	}

	return line, nil
}

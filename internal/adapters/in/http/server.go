package http

import (
	"net/http"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createEstimateHandler    commands.CreateEstimateCommandHandler
	convertEstimateHandler   commands.ConvertEstimateCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	markOrderInvoicedHandler commands.MarkOrderInvoicedCommandHandler
	reorderOrderItemsHandler commands.ReorderOrderItemsCommandHandler
	changeStatusHandler      commands.ChangeStatusCommandHandler

	// Query handlers
	orderBoardHandler     queries.OrderBoardQueryHandler
	orderItemBoardHandler queries.OrderItemBoardQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createEstimateHandler commands.CreateEstimateCommandHandler,
	convertEstimateHandler commands.ConvertEstimateCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	markOrderInvoicedHandler commands.MarkOrderInvoicedCommandHandler,
	reorderOrderItemsHandler commands.ReorderOrderItemsCommandHandler,
	changeStatusHandler commands.ChangeStatusCommandHandler,
	orderBoardHandler queries.OrderBoardQueryHandler,
	orderItemBoardHandler queries.OrderItemBoardQueryHandler,
) *Server {
	return &Server{
		createEstimateHandler:    createEstimateHandler,
		convertEstimateHandler:   convertEstimateHandler,
		createOrderHandler:       createOrderHandler,
		markOrderInvoicedHandler: markOrderInvoicedHandler,
		reorderOrderItemsHandler: reorderOrderItemsHandler,
		changeStatusHandler:      changeStatusHandler,
		orderBoardHandler:        orderBoardHandler,
		orderItemBoardHandler:    orderItemBoardHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/estimates", s.CreateEstimate)
	api.POST("/estimates/:id/convert", s.ConvertEstimate)
	api.PATCH("/estimates/:id/status", s.changeStatus(commands.EntityEstimate))
	api.PATCH("/estimate-items/:id/status", s.changeStatus(commands.EntityEstimateItem))

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/invoiced", s.MarkOrderInvoiced)
	api.PUT("/orders/:id/items/order", s.ReorderOrderItems)
	api.PATCH("/orders/:id/status", s.changeStatus(commands.EntityOrder))
	api.PATCH("/order-items/:id/status", s.changeStatus(commands.EntityOrderItem))

	api.GET("/boards/orders", s.GetOrderBoard)
	api.GET("/boards/orders/:id/items", s.GetOrderItemBoard)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ItemPayload is one line item on an estimate or order creation request.
type ItemPayload struct {
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	Cost           decimal.Decimal `json:"cost"`
	Amount         decimal.Decimal `json:"amount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	Ink            string          `json:"ink,omitempty"`
	Size           string          `json:"size,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// CreateEstimateRequest is the body of POST /api/v1/estimates.
type CreateEstimateRequest struct {
	OfficeID    string        `json:"officeId"`
	ContactID   string        `json:"contactId"`
	CreatorID   string        `json:"creatorId"`
	PONumber    string        `json:"poNumber"`
	DateIn      time.Time     `json:"dateIn"`
	InHandsDate *time.Time    `json:"inHandsDate,omitempty"`
	Items       []ItemPayload `json:"items"`
}

// CreatedResponse carries the identifier of a newly created aggregate.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateEstimate handles POST /api/v1/estimates - creates a Draft estimate.
func (s *Server) CreateEstimate(ctx echo.Context) error {
	var request CreateEstimateRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	officeID, err := kernel.UUIDFromString(request.OfficeID)
	if err != nil {
		return badRequest(ctx, "Invalid office identifier: "+err.Error())
	}
	contactID, err := kernel.UUIDFromString(request.ContactID)
	if err != nil {
		return badRequest(ctx, "Invalid contact identifier: "+err.Error())
	}
	creatorID, err := kernel.UUIDFromString(request.CreatorID)
	if err != nil {
		return badRequest(ctx, "Invalid creator identifier: "+err.Error())
	}

	estimateID := kernel.NewUUID()
	cmd, err := commands.NewCreateEstimateCommand(
		estimateID,
		officeID,
		contactID,
		creatorID,
		request.PONumber,
		request.DateIn,
		request.InHandsDate,
		estimateItemInputs(request.Items),
	)
	if err != nil {
		return badRequest(ctx, "Invalid estimate data: "+err.Error())
	}

	if handleErr := s.createEstimateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: estimateID.String()})
}

// ConvertEstimateRequest is the body of POST /api/v1/estimates/:id/convert.
type ConvertEstimateRequest struct {
	OfficeID string `json:"officeId"`
}

// ConvertEstimateResponse reports the order produced by a conversion.
type ConvertEstimateResponse struct {
	OrderID    string         `json:"orderId"`
	EstimateID string         `json:"estimateId"`
	ItemIDs    []string       `json:"itemIds"`
	Totals     TotalsResponse `json:"totals"`
}

// ConvertEstimate handles POST /api/v1/estimates/:id/convert - converts a
// pending estimate into a production order.
func (s *Server) ConvertEstimate(ctx echo.Context) error {
	estimateID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid estimate identifier: "+err.Error())
	}

	var request ConvertEstimateRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	officeID, err := kernel.UUIDFromString(request.OfficeID)
	if err != nil {
		return badRequest(ctx, "Invalid office identifier: "+err.Error())
	}

	cmd, err := commands.NewConvertEstimateCommand(estimateID, officeID)
	if err != nil {
		return badRequest(ctx, "Invalid conversion data: "+err.Error())
	}

	result, handleErr := s.convertEstimateHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	itemIDs := make([]string, len(result.ItemIDs))
	for i, itemID := range result.ItemIDs {
		itemIDs[i] = itemID.String()
	}

	return ctx.JSON(http.StatusCreated, ConvertEstimateResponse{
		OrderID:    result.OrderID.String(),
		EstimateID: result.EstimateID.String(),
		ItemIDs:    itemIDs,
		Totals:     totalsResponse(result.Totals),
	})
}

// CreateOrderRequest is the body of POST /api/v1/orders (walk-in orders).
type CreateOrderRequest struct {
	OfficeID    string        `json:"officeId"`
	ContactID   string        `json:"contactId"`
	PONumber    string        `json:"poNumber"`
	InHandsDate *time.Time    `json:"inHandsDate,omitempty"`
	Items       []ItemPayload `json:"items"`
}

// CreateOrder handles POST /api/v1/orders - creates a walk-in order that
// skips the estimate stage.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	officeID, err := kernel.UUIDFromString(request.OfficeID)
	if err != nil {
		return badRequest(ctx, "Invalid office identifier: "+err.Error())
	}
	contactID, err := kernel.UUIDFromString(request.ContactID)
	if err != nil {
		return badRequest(ctx, "Invalid contact identifier: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		officeID,
		contactID,
		request.PONumber,
		request.InHandsDate,
		orderItemInputs(request.Items),
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// MarkOrderInvoiced handles POST /api/v1/orders/:id/invoiced - records that
// the invoice for an order has been issued.
func (s *Server) MarkOrderInvoiced(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier: "+err.Error())
	}

	cmd, err := commands.NewMarkOrderInvoicedCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.markOrderInvoicedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReorderOrderItemsRequest is the body of PUT /api/v1/orders/:id/items/order.
// ItemIDs is the complete set of the order's item identifiers in the desired
// display sequence.
type ReorderOrderItemsRequest struct {
	ItemIDs []string `json:"itemIds"`
}

// ReorderOrderItems handles PUT /api/v1/orders/:id/items/order - rewrites the
// display sequence of an order's items.
func (s *Server) ReorderOrderItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier: "+err.Error())
	}

	var request ReorderOrderItemsRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemIDs := make([]kernel.UUID, len(request.ItemIDs))
	for i, raw := range request.ItemIDs {
		itemIDs[i], err = kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid item identifier: "+err.Error())
		}
	}

	cmd, err := commands.NewReorderOrderItemsCommand(orderID, itemIDs)
	if err != nil {
		return badRequest(ctx, "Invalid reorder data: "+err.Error())
	}

	if handleErr := s.reorderOrderItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeStatusRequest is the body of the PATCH .../:id/status endpoints.
type ChangeStatusRequest struct {
	Status            string `json:"status"`
	Notify            bool   `json:"notify,omitempty"`
	RecipientOverride string `json:"recipientOverride,omitempty"`
}

// ChangeStatusResponse reports the applied transition.
type ChangeStatusResponse struct {
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Status     string `json:"status"`
}

// changeStatus builds the handler for one of the four status endpoints.
// The entity type is fixed by the route; only the identifier and the target
// status come from the request.
func (s *Server) changeStatus(entityType commands.EntityType) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		entityID, err := kernel.UUIDFromString(ctx.Param("id"))
		if err != nil {
			return badRequest(ctx, "Invalid identifier: "+err.Error())
		}

		var request ChangeStatusRequest
		if err = ctx.Bind(&request); err != nil {
			return badRequest(ctx, "Invalid request body")
		}

		cmd, err := commands.NewChangeStatusCommand(
			entityType,
			entityID,
			request.Status,
			request.Notify,
			request.RecipientOverride,
		)
		if err != nil {
			return badRequest(ctx, "Invalid status change: "+err.Error())
		}

		result, handleErr := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
		if handleErr != nil {
			return respondError(ctx, handleErr)
		}

		return ctx.JSON(http.StatusOK, ChangeStatusResponse{
			EntityType: result.EntityType.String(),
			EntityID:   result.EntityID,
			Status:     result.NewStatus,
		})
	}
}

// OrderBoardCardResponse is one order card on the dashboard board.
type OrderBoardCardResponse struct {
	ID             string         `json:"id"`
	PONumber       string         `json:"poNumber"`
	Status         string         `json:"status"`
	WalkIn         bool           `json:"walkIn"`
	EstimateLinked bool           `json:"estimateLinked"`
	InHandsDate    *time.Time     `json:"inHandsDate,omitempty"`
	ColumnPosition int            `json:"columnPosition"`
	ItemCount      int            `json:"itemCount"`
	Totals         TotalsResponse `json:"totals"`
}

// GetOrderBoard handles GET /api/v1/boards/orders - loads the order board.
func (s *Server) GetOrderBoard(ctx echo.Context) error {
	query := queries.NewOrderBoardQuery()

	cards, err := s.orderBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderBoardCardResponse, len(cards))
	for i, card := range cards {
		response[i] = OrderBoardCardResponse{
			ID:             card.ID.String(),
			PONumber:       card.PONumber,
			Status:         card.Status,
			WalkIn:         card.WalkIn,
			EstimateLinked: card.EstimateLinked,
			InHandsDate:    card.InHandsDate,
			ColumnPosition: card.ColumnPosition,
			ItemCount:      card.ItemCount,
			Totals:         totalsResponse(card.Totals),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderItemBoardCardResponse is one item card on an order's item board.
type OrderItemBoardCardResponse struct {
	ID               string `json:"id"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	Ordinal          int    `json:"ordinal"`
	SiblingCount     int    `json:"siblingCount"`
	Quantity         int    `json:"quantity"`
	FinishedQuantity int    `json:"finishedQuantity"`
}

// OrderItemBoardResponse is the body of GET /api/v1/boards/orders/:id/items.
type OrderItemBoardResponse struct {
	OrderID string                       `json:"orderId"`
	Items   []OrderItemBoardCardResponse `json:"items"`
	Totals  TotalsResponse               `json:"totals"`
}

// GetOrderItemBoard handles GET /api/v1/boards/orders/:id/items - loads one
// order's item board in display sequence.
func (s *Server) GetOrderItemBoard(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier: "+err.Error())
	}

	query, err := queries.NewOrderItemBoardQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	board, handleErr := s.orderItemBoardHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	items := make([]OrderItemBoardCardResponse, len(board.Items))
	for i, item := range board.Items {
		items[i] = OrderItemBoardCardResponse{
			ID:               item.ID.String(),
			Description:      item.Description,
			Status:           item.Status,
			Ordinal:          item.Ordinal,
			SiblingCount:     item.SiblingCount,
			Quantity:         item.Quantity,
			FinishedQuantity: item.FinishedQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, OrderItemBoardResponse{
		OrderID: board.OrderID.String(),
		Items:   items,
		Totals:  totalsResponse(board.Totals),
	})
}

func estimateItemInputs(items []ItemPayload) []commands.EstimateItemInput {
	inputs := make([]commands.EstimateItemInput, len(items))
	for i, item := range items {
		inputs[i] = commands.EstimateItemInput{
			Description:    item.Description,
			Quantity:       item.Quantity,
			Cost:           item.Cost,
			Amount:         item.Amount,
			ShippingAmount: item.ShippingAmount,
			Ink:            item.Ink,
			Size:           item.Size,
			Notes:          item.Notes,
		}
	}
	return inputs
}

func orderItemInputs(items []ItemPayload) []commands.OrderItemInput {
	inputs := make([]commands.OrderItemInput, len(items))
	for i, item := range items {
		inputs[i] = commands.OrderItemInput{
			Description:    item.Description,
			Quantity:       item.Quantity,
			Cost:           item.Cost,
			Amount:         item.Amount,
			ShippingAmount: item.ShippingAmount,
			Ink:            item.Ink,
			Size:           item.Size,
			Notes:          item.Notes,
		}
	}
	return inputs
}

package commands

import (
	"context"

	"printshop/internal/core/domain/model/estimate"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/errs"
)

// ConvertEstimateResponse is the assembled view of the order produced by a
// conversion: the new order's identity plus financial totals recomputed from
// the cloned line items.
type ConvertEstimateResponse struct {
	OrderID    kernel.UUID
	EstimateID kernel.UUID
	ItemIDs    []kernel.UUID
	Totals     services.Totals
}

// ConvertEstimateCommandHandler executes the estimate-to-order conversion as
// one atomic unit of work:
//
//  1. Load the full estimate graph (NotFound when absent)
//  2. Reject estimates that already link to an order (conflict)
//  3. Clone the graph into a new order via the GraphCloner
//  4. Persist the order graph, re-parenting typesetting rows
//  5. Mark the estimate and all of its items Approved
//  6. Link the estimate to the new order
//  7. Commit; compute totals for the returned view
//
// Any failure rolls the whole transaction back: no partial order graph is
// ever visible to readers.
type ConvertEstimateCommandHandler struct {
	uowFactory UoWFactory
	cloner     services.GraphCloner
}

// NewConvertEstimateCommandHandler creates a handler for estimate conversion.
// Requires a UoWFactory spanning both estimate and order repositories.
func NewConvertEstimateCommandHandler(uowFactory UoWFactory) ConvertEstimateCommandHandler {
	return ConvertEstimateCommandHandler{
		uowFactory: uowFactory,
		cloner:     services.NewGraphCloner(),
	}
}

// Handle processes the conversion command and returns the assembled order
// view. Converting an already-converted estimate returns a ConflictError;
// the operation is not retried automatically.
func (h *ConvertEstimateCommandHandler) Handle(
	ctx context.Context,
	cmd ConvertEstimateCommand,
) (ConvertEstimateResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ConvertEstimateResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConvertEstimateResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	est, err := uow.EstimateRepository().Get(ctx, cmd.EstimateID())
	if err != nil {
		return ConvertEstimateResponse{}, err
	}

	if est.IsConverted() {
		return ConvertEstimateResponse{}, errs.NewConflictErrorWithCause(
			"estimateId", cmd.EstimateID().String(), estimate.ErrAlreadyConverted)
	}

	newOrder, err := h.cloner.CloneEstimate(est, cmd.OfficeID())
	if err != nil {
		return ConvertEstimateResponse{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return ConvertEstimateResponse{}, err
	}

	if err = est.Approve(); err != nil {
		return ConvertEstimateResponse{}, err
	}

	if err = est.LinkOrder(newOrder.ID()); err != nil {
		return ConvertEstimateResponse{}, err
	}

	if err = uow.EstimateRepository().Update(ctx, est); err != nil {
		return ConvertEstimateResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConvertEstimateResponse{}, err
	}

	items := newOrder.Items()
	itemIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID())
	}

	return ConvertEstimateResponse{
		OrderID:    newOrder.ID(),
		EstimateID: est.ID(),
		ItemIDs:    itemIDs,
		Totals:     services.AggregateTotals(items),
	}, nil
}

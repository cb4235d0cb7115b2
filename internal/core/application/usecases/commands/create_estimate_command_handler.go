package commands

import (
	"context"

	"printshop/internal/core/domain/model/estimate"
	"printshop/internal/core/domain/model/kernel"
)

// CreateEstimateCommandHandler handles the business logic for estimate creation.
// Creates new estimates in Draft status with their line items.
//
// Example:
//
//	handler := NewCreateEstimateCommandHandler(uowFactory)
//	cmd, _ := NewCreateEstimateCommand(estimateID, officeID, contactID, creatorID,
//	    "PO-1001", dateIn, nil, items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("estimate creation failed: %w", err)
//	}
type CreateEstimateCommandHandler struct {
	uowFactory EstimateUoWFactory
}

// NewCreateEstimateCommandHandler creates a handler for estimate creation operations.
// Requires an EstimateUoWFactory for transactional persistence.
func NewCreateEstimateCommandHandler(uowFactory EstimateUoWFactory) CreateEstimateCommandHandler {
	return CreateEstimateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the estimate creation command.
// Builds the estimate aggregate with its items and persists it atomically.
func (h *CreateEstimateCommandHandler) Handle(ctx context.Context, cmd CreateEstimateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	est, err := estimate.NewEstimate(
		cmd.EstimateID(),
		cmd.OfficeID(),
		cmd.ContactID(),
		cmd.CreatorID(),
		cmd.PONumber(),
		cmd.DateIn(),
		cmd.InHandsDate(),
	)
	if err != nil {
		return err
	}

	for _, input := range cmd.Items() {
		item, err := estimate.NewItem(
			kernel.NewUUID(),
			est.ID(),
			input.Description,
			input.Quantity,
			input.Cost,
			input.Amount,
			input.ShippingAmount,
		)
		if err != nil {
			return err
		}
		item.SetSpecs(input.Ink, input.Size, input.Notes)

		if err = est.AddItem(item); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EstimateRepository().Add(ctx, est); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

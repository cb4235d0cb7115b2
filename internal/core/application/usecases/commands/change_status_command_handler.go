package commands

import (
	"context"
	"fmt"

	"printshop/internal/core/domain/model/estimate"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
)

// ChangeStatusResponse reports the committed result of a status change.
type ChangeStatusResponse struct {
	EntityType EntityType
	EntityID   string
	NewStatus  string
}

// ChangeStatusCommandHandler validates and applies finite-state transitions
// for estimates, estimate items, orders, and order items. Each change runs in
// its own transaction with an optimistic version check on the touched row, so
// two concurrent drags of the same card cannot silently overwrite each other:
// the loser of the race gets a version error and the client retries against
// the fresh state (last valid transition wins).
//
// When the command requests notification, a StatusNotification is enqueued
// only after the transaction commits. Dispatch is asynchronous and
// fire-and-forget: notification failures are logged by the dispatch job and
// never surface to the caller.
type ChangeStatusCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.NotificationQueue
}

// NewChangeStatusCommandHandler creates a handler for status transitions.
func NewChangeStatusCommandHandler(uowFactory UoWFactory, queue ports.NotificationQueue) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle routes the status change to the entity's own state machine, persists
// the result, and emits the post-commit notification when requested.
func (h *ChangeStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeStatusCommand,
) (ChangeStatusResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeStatusResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeStatusResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		response     ChangeStatusResponse
		notification *ports.StatusNotification
		err          error
	)

	switch cmd.EntityType() {
	case EntityOrder:
		response, notification, err = h.changeOrderStatus(ctx, uow, cmd)
	case EntityOrderItem:
		response, notification, err = h.changeOrderItemStatus(ctx, uow, cmd)
	case EntityEstimate:
		response, err = h.changeEstimateStatus(ctx, uow, cmd)
	case EntityEstimateItem:
		response, err = h.changeEstimateItemStatus(ctx, uow, cmd)
	default:
		err = cmd.EntityType().Validate()
	}
	if err != nil {
		return ChangeStatusResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeStatusResponse{}, err
	}

	// Enqueue strictly after the commit: a notification must never be sent
	// for a transition that rolled back, and a failed send must never roll
	// back a committed transition.
	if cmd.Notify() && notification != nil {
		h.queue.Enqueue(*notification)
	}

	return response, nil
}

func (h *ChangeStatusCommandHandler) changeOrderStatus(
	ctx context.Context,
	uow UoW,
	cmd ChangeStatusCommand,
) (ChangeStatusResponse, *ports.StatusNotification, error) {
	target, err := order.StatusFromString(cmd.TargetStatus())
	if err != nil {
		return ChangeStatusResponse{}, nil, err
	}

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.EntityID())
	if err != nil {
		return ChangeStatusResponse{}, nil, err
	}

	if err = o.ChangeStatus(target); err != nil {
		return ChangeStatusResponse{}, nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return ChangeStatusResponse{}, nil, err
	}

	notification := &ports.StatusNotification{
		RecipientEmail: cmd.RecipientOverride(),
		Subject:        fmt.Sprintf("Order %s is now %s", o.PONumber(), target),
		OrderNumber:    o.PONumber(),
		Status:         target.String(),
	}
	if info := o.ShippingInfo(); info != nil {
		notification.ShippingMethod = info.Carrier
		if len(info.TrackingNumbers) > 0 {
			notification.TrackingNumber = info.TrackingNumbers[0]
		}
	}

	return ChangeStatusResponse{
		EntityType: EntityOrder,
		EntityID:   o.ID().String(),
		NewStatus:  target.String(),
	}, notification, nil
}

func (h *ChangeStatusCommandHandler) changeOrderItemStatus(
	ctx context.Context,
	uow UoW,
	cmd ChangeStatusCommand,
) (ChangeStatusResponse, *ports.StatusNotification, error) {
	target, err := order.ItemStatusFromString(cmd.TargetStatus())
	if err != nil {
		return ChangeStatusResponse{}, nil, err
	}

	repo := uow.OrderRepository()
	item, err := repo.GetItem(ctx, cmd.EntityID())
	if err != nil {
		return ChangeStatusResponse{}, nil, err
	}

	if err = item.ChangeStatus(target); err != nil {
		return ChangeStatusResponse{}, nil, err
	}

	// A card dragged into a new column surfaces first there until the next
	// reorder normalizes positions.
	item.SetPosition(0)

	if err = repo.UpdateItem(ctx, item); err != nil {
		return ChangeStatusResponse{}, nil, err
	}

	parent, err := repo.Get(ctx, item.OrderID())
	if err != nil {
		return ChangeStatusResponse{}, nil, err
	}

	notification := &ports.StatusNotification{
		RecipientEmail: cmd.RecipientOverride(),
		Subject:        fmt.Sprintf("Order %s: %s is now %s", parent.PONumber(), item.Description(), target),
		OrderNumber:    parent.PONumber(),
		Status:         target.String(),
		Description:    item.Description(),
	}
	if info := item.ShippingInfo(); info != nil {
		notification.ShippingMethod = info.Carrier
		if len(info.TrackingNumbers) > 0 {
			notification.TrackingNumber = info.TrackingNumbers[0]
		}
	}

	return ChangeStatusResponse{
		EntityType: EntityOrderItem,
		EntityID:   item.ID().String(),
		NewStatus:  target.String(),
	}, notification, nil
}

func (h *ChangeStatusCommandHandler) changeEstimateStatus(
	ctx context.Context,
	uow UoW,
	cmd ChangeStatusCommand,
) (ChangeStatusResponse, error) {
	target, err := estimate.StatusFromString(cmd.TargetStatus())
	if err != nil {
		return ChangeStatusResponse{}, err
	}

	repo := uow.EstimateRepository()
	est, err := repo.Get(ctx, cmd.EntityID())
	if err != nil {
		return ChangeStatusResponse{}, err
	}

	if err = est.ChangeStatus(target); err != nil {
		return ChangeStatusResponse{}, err
	}

	if err = repo.Update(ctx, est); err != nil {
		return ChangeStatusResponse{}, err
	}

	return ChangeStatusResponse{
		EntityType: EntityEstimate,
		EntityID:   est.ID().String(),
		NewStatus:  target.String(),
	}, nil
}

func (h *ChangeStatusCommandHandler) changeEstimateItemStatus(
	ctx context.Context,
	uow UoW,
	cmd ChangeStatusCommand,
) (ChangeStatusResponse, error) {
	target, err := estimate.StatusFromString(cmd.TargetStatus())
	if err != nil {
		return ChangeStatusResponse{}, err
	}

	repo := uow.EstimateRepository()
	est, err := repo.GetByItem(ctx, cmd.EntityID())
	if err != nil {
		return ChangeStatusResponse{}, err
	}

	item, err := est.Item(cmd.EntityID())
	if err != nil {
		return ChangeStatusResponse{}, err
	}

	if err = item.ChangeStatus(target); err != nil {
		return ChangeStatusResponse{}, err
	}

	if err = repo.Update(ctx, est); err != nil {
		return ChangeStatusResponse{}, err
	}

	return ChangeStatusResponse{
		EntityType: EntityEstimateItem,
		EntityID:   item.ID().String(),
		NewStatus:  target.String(),
	}, nil
}

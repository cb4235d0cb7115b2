package order

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/production"
	"printshop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a binding production order. It is the aggregate root over
// its line items.
//
// Order follows these invariants:
//   - Must have valid identifiers for itself, its office, and its contact
//   - Every item traces to exactly this order
//   - May link back to at most one originating estimate (nil for orders
//     created directly)
//   - Status transitions follow the order lifecycle; orders are never
//     deleted, only cancelled
type Order struct {
	id        kernel.UUID
	officeID  kernel.UUID
	contactID kernel.UUID

	// estimateID links back to the originating estimate. Nil for orders
	// created directly rather than by conversion.
	estimateID *kernel.UUID

	poNumber    string
	inHandsDate *time.Time
	walkIn      bool

	status       Status
	shippingInfo *production.ShippingInfo
	items        []*Item

	// version supports optimistic concurrency in the persistence layer.
	version int

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no items. The estimate
// link is nil; conversion sets it via LinkEstimate.
func NewOrder(
	id kernel.UUID,
	officeID kernel.UUID,
	contactID kernel.UUID,
	poNumber string,
	inHandsDate *time.Time,
	walkIn bool,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOfficeID(officeID),
		o.setContactID(contactID),
	); err != nil {
		return nil, err
	}

	o.poNumber = poNumber
	o.inHandsDate = inHandsDate
	o.walkIn = walkIn
	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status,
// items, estimate link, and version. Used by repository implementations only.
func RestoreOrder(
	id kernel.UUID,
	officeID kernel.UUID,
	contactID kernel.UUID,
	estimateID *kernel.UUID,
	poNumber string,
	inHandsDate *time.Time,
	walkIn bool,
	status Status,
	shippingInfo *production.ShippingInfo,
	items []*Item,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, officeID, contactID, poNumber, inHandsDate, walkIn)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
		if !item.OrderID().IsEqual(id) {
			return nil, errs.NewValueIsInvalidError("item does not belong to order")
		}
	}

	o.estimateID = estimateID
	o.status = status
	o.shippingInfo = shippingInfo
	o.items = items
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OfficeID returns the identifier of the office that owns the order.
func (o *Order) OfficeID() kernel.UUID {
	return o.officeID
}

// ContactID returns the identifier of the customer contact person.
func (o *Order) ContactID() kernel.UUID {
	return o.contactID
}

// EstimateID returns the identifier of the originating estimate, or nil for
// orders created directly.
func (o *Order) EstimateID() *kernel.UUID {
	return o.estimateID
}

// PONumber returns the customer purchase-order number.
func (o *Order) PONumber() string {
	return o.poNumber
}

// InHandsDate returns the date the finished job must be in the customer's
// hands, or nil when open.
func (o *Order) InHandsDate() *time.Time {
	return o.inHandsDate
}

// WalkIn reports whether this order came from a walk-in customer.
func (o *Order) WalkIn() bool {
	return o.walkIn
}

// Status returns the order's current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ShippingInfo returns the order-level shipping configuration, or nil.
func (o *Order) ShippingInfo() *production.ShippingInfo {
	return o.shippingInfo
}

// Items returns the order's line items in their stored order.
func (o *Order) Items() []*Item {
	return o.items
}

// Item returns the line item with the given identifier, or an
// ObjectNotFoundError when the order has no such item.
func (o *Order) Item(id kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItem", id.String())
}

// Version returns the optimistic concurrency version loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// LinkEstimate records the back-reference to the estimate this order was
// converted from. Rejects relinking.
func (o *Order) LinkEstimate(estimateID kernel.UUID) error {
	if err := estimateID.Validate(); err != nil {
		return err
	}

	if o.estimateID != nil {
		return errs.NewConflictError("estimateId", o.estimateID.String())
	}

	o.estimateID = &estimateID
	return nil
}

// AttachShippingInfo sets the order-level shipping configuration.
// Rejects a second attachment.
func (o *Order) AttachShippingInfo(s production.ShippingInfo) error {
	if o.shippingInfo != nil {
		return errs.NewConflictError("shippingInfo", o.shippingInfo.ID.String())
	}
	o.shippingInfo = &s
	return nil
}

// AddItem appends a line item to the order.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if !item.OrderID().IsEqual(o.id) {
		return errs.NewValueIsInvalidError("item does not belong to order")
	}

	o.items = append(o.items, item)
	return nil
}

// ChangeStatus moves the order to the target status under the lifecycle's
// transition rules.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkInvoiced records that an invoice has been created against this order.
// Called on behalf of the external invoicing collaborator.
func (o *Order) MarkInvoiced() error {
	return o.ChangeStatus(Invoiced)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOfficeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.officeID = id
	return nil
}

func (o *Order) setContactID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.contactID = id
	return nil
}

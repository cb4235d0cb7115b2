package estimate

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/production"
	"printshop/internal/pkg/errs"
)

var (
	// ErrEstimateIsNotConstructed is returned when an Estimate instance was not
	// created through the NewEstimate or RestoreEstimate factory functions.
	ErrEstimateIsNotConstructed = errors.New("Estimate must be created via NewEstimate or RestoreEstimate")

	// ErrAlreadyConverted is returned when an operation requires an estimate
	// that has not yet been converted, but the estimate already links to an
	// order. Conversion happens at most once and is not reversible.
	ErrAlreadyConverted = errors.New("estimate has already been converted to an order")
)

// Estimate is a pre-production quote that may be converted into a binding
// order. It is the aggregate root over its line items.
//
// Estimate follows these invariants:
//   - Must have valid identifiers for itself, its office, contact, and creator
//   - Every item traces to exactly this estimate
//   - Converts to at most one order; once converted it is effectively frozen:
//     items cannot be added and the workflow is terminal (Approved)
//   - Status transitions follow the Draft/Pending/Approved/Cancelled workflow
type Estimate struct {
	id        kernel.UUID
	officeID  kernel.UUID
	contactID kernel.UUID
	creatorID kernel.UUID

	poNumber    string
	dateIn      time.Time
	inHandsDate *time.Time

	status       Status
	shippingInfo *production.ShippingInfo
	items        []*Item

	// orderID links to the order this estimate was converted into, nil before
	// conversion. The relationship is 1:1 and permanent.
	orderID *kernel.UUID

	// version supports optimistic concurrency in the persistence layer.
	version int

	isConstructed bool
}

// NewEstimate creates a new Estimate in Draft status with no items.
func NewEstimate(
	id kernel.UUID,
	officeID kernel.UUID,
	contactID kernel.UUID,
	creatorID kernel.UUID,
	poNumber string,
	dateIn time.Time,
	inHandsDate *time.Time,
) (*Estimate, error) {
	est := &Estimate{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		est.setID(id),
		est.setOfficeID(officeID),
		est.setContactID(contactID),
		est.setCreatorID(creatorID),
	); err != nil {
		return nil, err
	}

	est.poNumber = poNumber
	est.dateIn = dateIn
	est.inHandsDate = inHandsDate
	return est, nil
}

// RestoreEstimate reconstructs an estimate from persistence with its stored
// status, items, order link, and version. Used by repository implementations only.
func RestoreEstimate(
	id kernel.UUID,
	officeID kernel.UUID,
	contactID kernel.UUID,
	creatorID kernel.UUID,
	poNumber string,
	dateIn time.Time,
	inHandsDate *time.Time,
	status Status,
	shippingInfo *production.ShippingInfo,
	items []*Item,
	orderID *kernel.UUID,
	version int,
) (*Estimate, error) {
	est, err := NewEstimate(id, officeID, contactID, creatorID, poNumber, dateIn, inHandsDate)
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
		if !item.EstimateID().IsEqual(id) {
			return nil, errs.NewValueIsInvalidError("item does not belong to estimate")
		}
	}

	est.status = status
	est.shippingInfo = shippingInfo
	est.items = items
	est.orderID = orderID
	est.version = version
	return est, nil
}

// Validate ensures the Estimate instance was properly constructed.
func (e *Estimate) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEstimateIsNotConstructed
	}
	return nil
}

// IsEqual compares two estimates by their unique identifiers.
func (e *Estimate) IsEqual(other *Estimate) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the estimate's unique identifier.
func (e *Estimate) ID() kernel.UUID {
	return e.id
}

// OfficeID returns the identifier of the office that owns the estimate.
func (e *Estimate) OfficeID() kernel.UUID {
	return e.officeID
}

// ContactID returns the identifier of the customer contact person.
func (e *Estimate) ContactID() kernel.UUID {
	return e.contactID
}

// CreatorID returns the identifier of the user who created the estimate.
func (e *Estimate) CreatorID() kernel.UUID {
	return e.creatorID
}

// PONumber returns the customer purchase-order number.
func (e *Estimate) PONumber() string {
	return e.poNumber
}

// DateIn returns the date the job came in.
func (e *Estimate) DateIn() time.Time {
	return e.dateIn
}

// InHandsDate returns the date the finished job must be in the customer's
// hands, or nil when open.
func (e *Estimate) InHandsDate() *time.Time {
	return e.inHandsDate
}

// Status returns the estimate's current workflow status.
func (e *Estimate) Status() Status {
	return e.status
}

// ShippingInfo returns the estimate-level shipping configuration, or nil.
func (e *Estimate) ShippingInfo() *production.ShippingInfo {
	return e.shippingInfo
}

// Items returns the estimate's line items in their original order.
func (e *Estimate) Items() []*Item {
	return e.items
}

// Item returns the line item with the given identifier, or an
// ObjectNotFoundError when the estimate has no such item.
func (e *Estimate) Item(id kernel.UUID) (*Item, error) {
	for _, item := range e.items {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("estimateItem", id.String())
}

// OrderID returns the identifier of the order this estimate was converted
// into, or nil before conversion.
func (e *Estimate) OrderID() *kernel.UUID {
	return e.orderID
}

// IsConverted reports whether the estimate has been converted to an order.
func (e *Estimate) IsConverted() bool {
	return e.orderID != nil
}

// Version returns the optimistic concurrency version loaded from storage.
func (e *Estimate) Version() int {
	return e.version
}

// AttachShippingInfo sets the estimate-level shipping configuration.
// Rejects a second attachment and any change after conversion.
func (e *Estimate) AttachShippingInfo(s production.ShippingInfo) error {
	if e.IsConverted() {
		return ErrAlreadyConverted
	}
	if e.shippingInfo != nil {
		return errs.NewConflictError("shippingInfo", e.shippingInfo.ID.String())
	}
	e.shippingInfo = &s
	return nil
}

// AddItem appends a line item to the estimate. Converted estimates are
// frozen and reject new items.
func (e *Estimate) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if e.IsConverted() {
		return ErrAlreadyConverted
	}

	if !item.EstimateID().IsEqual(e.id) {
		return errs.NewValueIsInvalidError("item does not belong to estimate")
	}

	e.items = append(e.items, item)
	return nil
}

// ChangeStatus moves the estimate to the target status under the workflow's
// transition rules. Approving through ChangeStatus cascades to the items the
// same way Approve does.
func (e *Estimate) ChangeStatus(target Status) error {
	if target == Approved {
		return e.Approve()
	}

	newStatus, err := e.status.TransitionTo(target, "estimate")
	if err != nil {
		return err
	}

	e.status = newStatus
	return nil
}

// Approve marks the estimate Approved and cascades Approved to every line
// item in the same operation, as required when the estimate is converted to
// an order. Items already in a terminal state cause the whole approval to
// fail, leaving the aggregate unchanged only at the persistence level; the
// caller's unit of work must not commit a partial approval.
func (e *Estimate) Approve() error {
	newStatus, err := e.status.Approve()
	if err != nil {
		return err
	}

	for _, item := range e.items {
		if err = item.approve(); err != nil {
			return err
		}
	}

	e.status = newStatus
	return nil
}

// Cancel marks the estimate Cancelled. Allowed from Draft and Pending.
func (e *Estimate) Cancel() error {
	newStatus, err := e.status.Cancel()
	if err != nil {
		return err
	}

	e.status = newStatus
	return nil
}

// LinkOrder records the 1:1 link to the order produced by conversion.
// Returns ErrAlreadyConverted when a link already exists: an estimate
// converts at most once.
func (e *Estimate) LinkOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if e.orderID != nil {
		return ErrAlreadyConverted
	}

	e.orderID = &orderID
	return nil
}

func (e *Estimate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Estimate) setOfficeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.officeID = id
	return nil
}

func (e *Estimate) setContactID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.contactID = id
	return nil
}

func (e *Estimate) setCreatorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.creatorID = id
	return nil
}

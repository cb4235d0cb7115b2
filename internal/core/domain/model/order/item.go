package order

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/production"
	"printshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a single priced line within an order. New items start in Prepress
// with a finished quantity of zero. When an item is produced by conversion
// from an estimate, its descriptive and financial fields are exact copies of
// the source estimate item; its nested records are fresh-identity clones,
// except typesetting which migrates with its original identity.
type Item struct {
	id      kernel.UUID
	orderID kernel.UUID

	description    string
	quantity       int
	finishedQty    int
	cost           decimal.Decimal
	amount         decimal.Decimal
	shippingAmount decimal.Decimal
	ink            string
	size           string
	notes          string

	status ItemStatus

	// position orders the item within its parent's item collection.
	// Position 0 marks a just-moved item that surfaces first in its status
	// column until the next reorder normalizes positions to 1..N.
	position int

	typesetting       *production.Typesetting
	processingOptions []production.ProcessingOption
	stockReservations []production.StockReservation
	artwork           []production.Artwork
	shippingInfo      *production.ShippingInfo

	// version supports optimistic concurrency in the persistence layer.
	version int

	isConstructed bool
}

// NewItem creates a new order line item in Prepress status with zero
// finished quantity.
func NewItem(
	id kernel.UUID,
	orderID kernel.UUID,
	description string,
	quantity int,
	cost decimal.Decimal,
	amount decimal.Decimal,
	shippingAmount decimal.Decimal,
) (*Item, error) {
	item := &Item{
		status:        ItemPrepress,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setDescription(description),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.cost = cost
	item.amount = amount
	item.shippingAmount = shippingAmount
	return item, nil
}

// RestoreItem reconstructs an item from persistence with its stored status,
// position, nested records, and version. Used by repository implementations only.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	description string,
	quantity int,
	finishedQty int,
	cost decimal.Decimal,
	amount decimal.Decimal,
	shippingAmount decimal.Decimal,
	ink string,
	size string,
	notes string,
	status ItemStatus,
	position int,
	typesetting *production.Typesetting,
	processingOptions []production.ProcessingOption,
	stockReservations []production.StockReservation,
	artwork []production.Artwork,
	shippingInfo *production.ShippingInfo,
	version int,
) (*Item, error) {
	item, err := NewItem(id, orderID, description, quantity, cost, amount, shippingAmount)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if finishedQty < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("finishedQty",
			fmt.Errorf("%d is negative", finishedQty))
	}

	item.finishedQty = finishedQty
	item.ink = ink
	item.size = size
	item.notes = notes
	item.status = status
	item.position = position
	item.typesetting = typesetting
	item.processingOptions = processingOptions
	item.stockReservations = stockReservations
	item.artwork = artwork
	item.shippingInfo = shippingInfo
	item.version = version
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the parent order's identifier.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// Description returns the free-text description of the printed piece.
func (i *Item) Description() string {
	return i.description
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// FinishedQty returns the quantity produced so far.
func (i *Item) FinishedQty() int {
	return i.finishedQty
}

// Cost returns the line cost. Zero when not priced.
func (i *Item) Cost() decimal.Decimal {
	return i.cost
}

// Amount returns the line amount (price charged). Zero when not priced.
func (i *Item) Amount() decimal.Decimal {
	return i.amount
}

// ShippingAmount returns the shipping charge for the line. Zero when none.
func (i *Item) ShippingAmount() decimal.Decimal {
	return i.shippingAmount
}

// Ink returns the free-text ink specification.
func (i *Item) Ink() string {
	return i.ink
}

// Size returns the free-text size specification.
func (i *Item) Size() string {
	return i.size
}

// Notes returns free-text notes for the line.
func (i *Item) Notes() string {
	return i.notes
}

// Status returns the item's current production status.
func (i *Item) Status() ItemStatus {
	return i.status
}

// Position returns the item's ordering position within the parent order.
func (i *Item) Position() int {
	return i.position
}

// Typesetting returns the attached typesetting record, or nil.
func (i *Item) Typesetting() *production.Typesetting {
	return i.typesetting
}

// ProcessingOptions returns the attached processing options.
func (i *Item) ProcessingOptions() []production.ProcessingOption {
	return i.processingOptions
}

// StockReservations returns the attached paper-stock reservations.
func (i *Item) StockReservations() []production.StockReservation {
	return i.stockReservations
}

// Artwork returns the attached artwork records.
func (i *Item) Artwork() []production.Artwork {
	return i.artwork
}

// ShippingInfo returns the per-item shipping configuration, or nil.
func (i *Item) ShippingInfo() *production.ShippingInfo {
	return i.shippingInfo
}

// Version returns the optimistic concurrency version loaded from storage.
func (i *Item) Version() int {
	return i.version
}

// SetSpecs sets the free-text ink, size, and notes attributes.
func (i *Item) SetSpecs(ink, size, notes string) {
	i.ink = ink
	i.size = size
	i.notes = notes
}

// SetPosition sets the item's ordering position within the parent order.
func (i *Item) SetPosition(position int) {
	i.position = position
}

// RecordFinished adds produced quantity to the finished count. The finished
// count never exceeds the ordered quantity.
func (i *Item) RecordFinished(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	if i.finishedQty+qty > i.quantity {
		return errs.NewValueIsOutOfRangeError("finishedQty", i.finishedQty+qty, 0, i.quantity)
	}

	i.finishedQty += qty
	return nil
}

// ChangeStatus moves the item to the target production status, enforcing the
// item lifecycle's transition rules.
func (i *Item) ChangeStatus(target ItemStatus) error {
	newStatus, err := i.status.TransitionTo(target)
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

// AttachTypesetting attaches the 1:1 typesetting record.
// Rejects a second attachment.
func (i *Item) AttachTypesetting(t production.Typesetting) error {
	if i.typesetting != nil {
		return errs.NewConflictError("typesetting", i.typesetting.ID.String())
	}
	i.typesetting = &t
	return nil
}

// AddProcessingOption attaches a bindery/finishing instruction.
func (i *Item) AddProcessingOption(p production.ProcessingOption) {
	i.processingOptions = append(i.processingOptions, p)
}

// AddStockReservation attaches a paper-stock reservation.
func (i *Item) AddStockReservation(s production.StockReservation) {
	i.stockReservations = append(i.stockReservations, s)
}

// AddArtwork attaches an artwork record.
func (i *Item) AddArtwork(a production.Artwork) {
	i.artwork = append(i.artwork, a)
}

// AttachShippingInfo sets the per-item shipping configuration.
// Rejects a second attachment.
func (i *Item) AttachShippingInfo(s production.ShippingInfo) error {
	if i.shippingInfo != nil {
		return errs.NewConflictError("shippingInfo", i.shippingInfo.ID.String())
	}
	i.shippingInfo = &s
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.orderID = id
	return nil
}

func (i *Item) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

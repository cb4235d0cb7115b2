package estimate

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

// Item is a single priced line within an estimate. It carries the descriptive
// and financial fields that will be cloned into an order item on conversion,
// plus the nested production records (typesetting, processing options, stock
// reservations, artwork, shipping).
//
// Item follows these invariants:
//   - Must have a valid unique identifier and parent estimate identifier
//   - Description must not be empty
//   - Quantity must be positive
//   - Status mirrors the parent estimate's workflow
//   - At most one typesetting record and one shipping configuration
type Item struct {
	id         kernel.UUID
	estimateID kernel.UUID

	description    string
	quantity       int
	cost           decimal.Decimal
	amount         decimal.Decimal
	shippingAmount decimal.Decimal
	ink            string
	size           string
	notes          string

	status Status

	typesetting       *production.Typesetting
	processingOptions []production.ProcessingOption
	stockReservations []production.StockReservation
	artwork           []production.Artwork
	shippingInfo      *production.ShippingInfo

	isConstructed bool
}

// NewItem creates a new estimate line item in Draft status.
// Monetary values are exact decimals; negative amounts (credits and
// discounts) are permitted.
func NewItem(
	id kernel.UUID,
	estimateID kernel.UUID,
	description string,
	quantity int,
	cost decimal.Decimal,
	amount decimal.Decimal,
	shippingAmount decimal.Decimal,
) (*Item, error) {
	item := &Item{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setEstimateID(estimateID),
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

// RestoreItem reconstructs an item from persistence with its stored status
// and nested records. Used by repository implementations only.
func RestoreItem(
	id kernel.UUID,
	estimateID kernel.UUID,
	description string,
	quantity int,
	cost decimal.Decimal,
	amount decimal.Decimal,
	shippingAmount decimal.Decimal,
	ink string,
	size string,
	notes string,
	status Status,
	typesetting *production.Typesetting,
	processingOptions []production.ProcessingOption,
	stockReservations []production.StockReservation,
	artwork []production.Artwork,
	shippingInfo *production.ShippingInfo,
) (*Item, error) {
	item, err := NewItem(id, estimateID, description, quantity, cost, amount, shippingAmount)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	item.ink = ink
	item.size = size
	item.notes = notes
	item.status = status
	item.typesetting = typesetting
	item.processingOptions = processingOptions
	item.stockReservations = stockReservations
	item.artwork = artwork
	item.shippingInfo = shippingInfo
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

// EstimateID returns the parent estimate's identifier.
func (i *Item) EstimateID() kernel.UUID {
	return i.estimateID
}

// Description returns the free-text description of the printed piece.
func (i *Item) Description() string {
	return i.description
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
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

// Status returns the item's current workflow status.
func (i *Item) Status() Status {
	return i.status
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

// SetSpecs sets the free-text ink, size, and notes attributes.
func (i *Item) SetSpecs(ink, size, notes string) {
	i.ink = ink
	i.size = size
	i.notes = notes
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

// ChangeStatus moves the item to the target status, enforcing the estimate
// workflow's transition rules.
func (i *Item) ChangeStatus(target Status) error {
	newStatus, err := i.status.TransitionTo(target, "estimateItem")
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

// approve marks the item Approved as part of the parent estimate's approval
// cascade. Unlike ChangeStatus it follows the estimate Approve rules.
func (i *Item) approve() error {
	newStatus, err := i.status.Approve()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setEstimateID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.estimateID = id
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

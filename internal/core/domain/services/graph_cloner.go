package services

import (
	"printshop/internal/core/domain/model/estimate"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// GraphCloner is a domain service that turns an estimate's full entity graph
// into a new order graph: order header, line items, and each item's nested
// production records.
//
// Cloning rules:
//   - The order, its items, and every cloned nested record get fresh
//     identities; nothing is shared by reference between the two trees
//   - Typesetting is the one exception: the record migrates, keeping its
//     identity, because it is a 1:1 relationship that follows the job
//   - Descriptive and financial fields are copied unchanged, so immediately
//     after cloning the item sums of the order equal those of the estimate
//   - New items start in Prepress with zero finished quantity; the order
//     starts Pending
//
// The cloner works purely in memory; the conversion command persists the
// resulting graph inside a single unit of work so partial graphs are never
// visible to readers.
type GraphCloner struct{}

// NewGraphCloner creates a new GraphCloner instance.
func NewGraphCloner() GraphCloner {
	return GraphCloner{}
}

// CloneEstimate builds a new order graph from the estimate. The target
// office may differ from the estimate's own office (walk-in conversion), so
// it is supplied by the caller; an office mismatch marks the order walk-in.
// The estimate itself is not modified.
//
// The caller is responsible for the conversion preconditions: the estimate
// exists and has not been converted before.
func (c GraphCloner) CloneEstimate(est *estimate.Estimate, officeID kernel.UUID) (*order.Order, error) {
	if err := est.Validate(); err != nil {
		return nil, err
	}

	if err := officeID.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		officeID,
		est.ContactID(),
		est.PONumber(),
		est.InHandsDate(),
		!officeID.IsEqual(est.OfficeID()),
	)
	if err != nil {
		return nil, err
	}

	if err = newOrder.LinkEstimate(est.ID()); err != nil {
		return nil, err
	}

	if info := est.ShippingInfo(); info != nil {
		if err = newOrder.AttachShippingInfo(info.Clone()); err != nil {
			return nil, err
		}
	}

	for position, src := range est.Items() {
		item, itemErr := c.cloneItem(src, newOrder.ID(), position+1)
		if itemErr != nil {
			return nil, itemErr
		}

		if err = newOrder.AddItem(item); err != nil {
			return nil, err
		}
	}

	return newOrder, nil
}

// cloneItem copies one estimate line into a new order line, duplicating
// nested records and migrating the typesetting record.
func (c GraphCloner) cloneItem(src *estimate.Item, orderID kernel.UUID, position int) (*order.Item, error) {
	item, err := order.NewItem(
		kernel.NewUUID(),
		orderID,
		src.Description(),
		src.Quantity(),
		src.Cost(),
		src.Amount(),
		src.ShippingAmount(),
	)
	if err != nil {
		return nil, err
	}

	item.SetSpecs(src.Ink(), src.Size(), src.Notes())
	item.SetPosition(position)

	// The item's shipping gets its own rows so it can diverge from the
	// estimate's after conversion.
	if info := src.ShippingInfo(); info != nil {
		if err = item.AttachShippingInfo(info.Clone()); err != nil {
			return nil, err
		}
	}

	for _, artwork := range src.Artwork() {
		item.AddArtwork(artwork.Clone())
	}

	// Re-parent, not copy: the same typesetting record moves to the order item.
	if typesetting := src.Typesetting(); typesetting != nil {
		if err = item.AttachTypesetting(*typesetting); err != nil {
			return nil, err
		}
	}

	for _, option := range src.ProcessingOptions() {
		item.AddProcessingOption(option.Clone())
	}

	for _, reservation := range src.StockReservations() {
		item.AddStockReservation(reservation.Clone())
	}

	return item, nil
}

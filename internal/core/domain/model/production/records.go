package production

import (
	"time"

	"printshop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Typesetting is a pre-press design and proofing record. A line item has at
// most one typesetting record, and the relationship is 1:1 for the lifetime of
// the job: during estimate-to-order conversion the record migrates to the new
// order item instead of being duplicated.
type Typesetting struct {
	ID          kernel.UUID
	Description string
	Designer    string
	ProofCount  int
	CompletedAt *time.Time
}

// ProcessingOption is a bindery or finishing instruction (cutting, folding,
// stitching, drilling, and similar) attached to a line item.
type ProcessingOption struct {
	ID        kernel.UUID
	Operation string
	Notes     string
}

// Clone returns a copy of the processing option with a fresh identity.
func (p ProcessingOption) Clone() ProcessingOption {
	clone := p
	clone.ID = kernel.NewUUID()
	return clone
}

// StockReservation is a paper-stock allocation for a line item.
type StockReservation struct {
	ID          kernel.UUID
	StockCode   string
	Description string
	Quantity    int
}

// Clone returns a copy of the stock reservation with a fresh identity.
func (s StockReservation) Clone() StockReservation {
	clone := s
	clone.ID = kernel.NewUUID()
	return clone
}

// Artwork is a customer-supplied or in-house artwork attachment for a line
// item. Only the file reference is held here; upload handling lives outside
// this core.
type Artwork struct {
	ID         kernel.UUID
	FileName   string
	FilePath   string
	UploadedAt time.Time
}

// Clone returns a copy of the artwork record with a fresh identity.
// The underlying file reference is shared; the record is not.
func (a Artwork) Clone() Artwork {
	clone := a
	clone.ID = kernel.NewUUID()
	return clone
}

// ShippingInfo describes how a line item (or a whole estimate or order) ships:
// carrier method, destination, cost, date, and tracking numbers. A pickup
// configuration replaces carrier shipment when the customer collects the job.
type ShippingInfo struct {
	ID              kernel.UUID
	Carrier         string
	Address         string
	Cost            decimal.Decimal
	ShipDate        *time.Time
	TrackingNumbers []string
	Pickup          *ShippingPickup
}

// Clone returns a deep copy of the shipping configuration with fresh
// identities for both the shipping info and any pickup record. Cloned order
// items never share shipping rows with their source estimate items, since the
// order item's shipping may diverge afterwards.
func (s ShippingInfo) Clone() ShippingInfo {
	clone := s
	clone.ID = kernel.NewUUID()

	if s.TrackingNumbers != nil {
		clone.TrackingNumbers = make([]string, len(s.TrackingNumbers))
		copy(clone.TrackingNumbers, s.TrackingNumbers)
	}

	if s.Pickup != nil {
		pickup := s.Pickup.Clone()
		clone.Pickup = &pickup
	}

	return clone
}

// ShippingPickup holds customer pickup details used instead of a carrier
// shipment.
type ShippingPickup struct {
	ID           kernel.UUID
	ContactName  string
	ContactPhone string
	Date         *time.Time
	TimeOfDay    string
}

// Clone returns a copy of the pickup record with a fresh identity.
func (p ShippingPickup) Clone() ShippingPickup {
	clone := p
	clone.ID = kernel.NewUUID()
	return clone
}

// Package productionrepo persists the nested production records shared by
// estimate and order line items: typesetting, processing options, stock
// reservations, artwork, and shipping configurations. Both the estimate and
// order repositories write to the same tables; ownership is expressed through
// nullable parent columns, which is what lets a typesetting row migrate from
// an estimate item to an order item during conversion without losing its
// identity.
package productionrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/production"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Owner column names for the nullable parent references on record tables.
const (
	OwnerEstimate     = "estimate_id"
	OwnerOrder        = "order_id"
	OwnerEstimateItem = "estimate_item_id"
	OwnerOrderItem    = "order_item_id"
)

// TypesettingDTO represents the database structure for typesetting records.
// Exactly one of EstimateItemID and OrderItemID is set; conversion flips the
// row from the former to the latter in place.
type TypesettingDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EstimateItemID *uuid.UUID `gorm:"type:uuid;index"`
	OrderItemID    *uuid.UUID `gorm:"type:uuid;index"`
	Description    string
	Designer       string
	ProofCount     int
	CompletedAt    *time.Time
}

// TableName specifies the database table name for typesetting records.
func (TypesettingDTO) TableName() string {
	return "typesettings"
}

// ProcessingOptionDTO represents the database structure for bindery and
// finishing instructions.
type ProcessingOptionDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EstimateItemID *uuid.UUID `gorm:"type:uuid;index"`
	OrderItemID    *uuid.UUID `gorm:"type:uuid;index"`
	Operation      string
	Notes          string
}

// TableName specifies the database table name for processing options.
func (ProcessingOptionDTO) TableName() string {
	return "processing_options"
}

// StockReservationDTO represents the database structure for paper-stock
// allocations.
type StockReservationDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EstimateItemID *uuid.UUID `gorm:"type:uuid;index"`
	OrderItemID    *uuid.UUID `gorm:"type:uuid;index"`
	StockCode      string
	Description    string
	Quantity       int
}

// TableName specifies the database table name for stock reservations.
func (StockReservationDTO) TableName() string {
	return "stock_reservations"
}

// ArtworkDTO represents the database structure for artwork attachments.
type ArtworkDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EstimateItemID *uuid.UUID `gorm:"type:uuid;index"`
	OrderItemID    *uuid.UUID `gorm:"type:uuid;index"`
	FileName       string
	FilePath       string
	UploadedAt     time.Time
}

// TableName specifies the database table name for artwork attachments.
func (ArtworkDTO) TableName() string {
	return "artworks"
}

// ShippingInfoDTO represents the database structure for shipping
// configurations. A row is owned by exactly one of the four parents: an
// estimate, an order, an estimate item, or an order item.
type ShippingInfoDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EstimateID      *uuid.UUID `gorm:"type:uuid;index"`
	OrderID         *uuid.UUID `gorm:"type:uuid;index"`
	EstimateItemID  *uuid.UUID `gorm:"type:uuid;index"`
	OrderItemID     *uuid.UUID `gorm:"type:uuid;index"`
	Carrier         string
	Address         string
	Cost            decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShipDate        *time.Time
	TrackingNumbers pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for shipping configurations.
func (ShippingInfoDTO) TableName() string {
	return "shipping_infos"
}

// ShippingPickupDTO represents the database structure for customer pickup
// details attached to a shipping configuration.
type ShippingPickupDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShippingInfoID uuid.UUID `gorm:"type:uuid;index"`
	ContactName    string
	ContactPhone   string
	Date           *time.Time
	TimeOfDay      string
}

// TableName specifies the database table name for pickup records.
func (ShippingPickupDTO) TableName() string {
	return "shipping_pickups"
}

func typesettingFromDomain(t production.Typesetting) TypesettingDTO {
	return TypesettingDTO{
		ID:          t.ID.Bytes(),
		Description: t.Description,
		Designer:    t.Designer,
		ProofCount:  t.ProofCount,
		CompletedAt: t.CompletedAt,
	}
}

func typesettingToDomain(dto TypesettingDTO) (production.Typesetting, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return production.Typesetting{}, err
	}

	return production.Typesetting{
		ID:          id,
		Description: dto.Description,
		Designer:    dto.Designer,
		ProofCount:  dto.ProofCount,
		CompletedAt: dto.CompletedAt,
	}, nil
}

func processingOptionFromDomain(p production.ProcessingOption) ProcessingOptionDTO {
	return ProcessingOptionDTO{
		ID:        p.ID.Bytes(),
		Operation: p.Operation,
		Notes:     p.Notes,
	}
}

func processingOptionToDomain(dto ProcessingOptionDTO) (production.ProcessingOption, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return production.ProcessingOption{}, err
	}

	return production.ProcessingOption{
		ID:        id,
		Operation: dto.Operation,
		Notes:     dto.Notes,
	}, nil
}

func stockReservationFromDomain(s production.StockReservation) StockReservationDTO {
	return StockReservationDTO{
		ID:          s.ID.Bytes(),
		StockCode:   s.StockCode,
		Description: s.Description,
		Quantity:    s.Quantity,
	}
}

func stockReservationToDomain(dto StockReservationDTO) (production.StockReservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return production.StockReservation{}, err
	}

	return production.StockReservation{
		ID:          id,
		StockCode:   dto.StockCode,
		Description: dto.Description,
		Quantity:    dto.Quantity,
	}, nil
}

func artworkFromDomain(a production.Artwork) ArtworkDTO {
	return ArtworkDTO{
		ID:         a.ID.Bytes(),
		FileName:   a.FileName,
		FilePath:   a.FilePath,
		UploadedAt: a.UploadedAt,
	}
}

func artworkToDomain(dto ArtworkDTO) (production.Artwork, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return production.Artwork{}, err
	}

	return production.Artwork{
		ID:         id,
		FileName:   dto.FileName,
		FilePath:   dto.FilePath,
		UploadedAt: dto.UploadedAt,
	}, nil
}

func shippingInfoFromDomain(s production.ShippingInfo) ShippingInfoDTO {
	return ShippingInfoDTO{
		ID:              s.ID.Bytes(),
		Carrier:         s.Carrier,
		Address:         s.Address,
		Cost:            s.Cost,
		ShipDate:        s.ShipDate,
		TrackingNumbers: pq.StringArray(s.TrackingNumbers),
	}
}

func shippingInfoToDomain(dto ShippingInfoDTO, pickup *ShippingPickupDTO) (production.ShippingInfo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return production.ShippingInfo{}, err
	}

	info := production.ShippingInfo{
		ID:              id,
		Carrier:         dto.Carrier,
		Address:         dto.Address,
		Cost:            dto.Cost,
		ShipDate:        dto.ShipDate,
		TrackingNumbers: []string(dto.TrackingNumbers),
	}

	if pickup != nil {
		pickupID, pickupErr := kernel.UUIDFromBytes(pickup.ID[:])
		if pickupErr != nil {
			return production.ShippingInfo{}, pickupErr
		}

		info.Pickup = &production.ShippingPickup{
			ID:           pickupID,
			ContactName:  pickup.ContactName,
			ContactPhone: pickup.ContactPhone,
			Date:         pickup.Date,
			TimeOfDay:    pickup.TimeOfDay,
		}
	}

	return info, nil
}

func pickupFromDomain(p production.ShippingPickup, shippingInfoID uuid.UUID) ShippingPickupDTO {
	return ShippingPickupDTO{
		ID:             p.ID.Bytes(),
		ShippingInfoID: shippingInfoID,
		ContactName:    p.ContactName,
		ContactPhone:   p.ContactPhone,
		Date:           p.Date,
		TimeOfDay:      p.TimeOfDay,
	}
}

// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/production"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and estimate linkage.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OfficeID    uuid.UUID  `gorm:"type:uuid;index"`
	ContactID   uuid.UUID  `gorm:"type:uuid"`
	EstimateID  *uuid.UUID `gorm:"type:uuid;index"`
	PONumber    string     `gorm:"column:po_number"`
	InHandsDate *time.Time
	WalkIn      bool
	Status      int `gorm:"index"`
	Version     int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line items.
// The position column drives board ordering; position 0 marks a just-moved item
// that surfaces first in its status column.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Description    string
	Quantity       int
	FinishedQty    int
	Cost           decimal.Decimal `gorm:"type:numeric(12,2)"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShippingAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	Ink            string
	Size           string
	Notes          string
	Status         int `gorm:"index"`
	Position       int
	Version        int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its header database
// representation. Items and nested records are persisted separately.
func fromDomain(o *order.Order) OrderDTO {
	var estimateID *uuid.UUID
	if id := o.EstimateID(); id != nil {
		raw := id.Bytes()
		estimateID = &raw
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		OfficeID:    o.OfficeID().Bytes(),
		ContactID:   o.ContactID().Bytes(),
		EstimateID:  estimateID,
		PONumber:    o.PONumber(),
		InHandsDate: o.InHandsDate(),
		WalkIn:      o.WalkIn(),
		Status:      int(o.Status()),
		Version:     o.Version(),
	}
}

// itemFromDomain converts an order line item to its database representation.
func itemFromDomain(item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:             item.ID().Bytes(),
		OrderID:        item.OrderID().Bytes(),
		Description:    item.Description(),
		Quantity:       item.Quantity(),
		FinishedQty:    item.FinishedQty(),
		Cost:           item.Cost(),
		Amount:         item.Amount(),
		ShippingAmount: item.ShippingAmount(),
		Ink:            item.Ink(),
		Size:           item.Size(),
		Notes:          item.Notes(),
		Status:         int(item.Status()),
		Position:       item.Position(),
		Version:        item.Version(),
	}
}

// toDomain converts database DTOs to an order domain aggregate.
// Reconstructs the complete aggregate including status, estimate linkage, and
// version using RestoreOrder. Nested production records must already be
// attached to the supplied items.
func toDomain(dto OrderDTO, shipping *production.ShippingInfo, items []*order.Item) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	officeID, err := kernel.UUIDFromBytes(dto.OfficeID[:])
	if err != nil {
		return nil, err
	}

	contactID, err := kernel.UUIDFromBytes(dto.ContactID[:])
	if err != nil {
		return nil, err
	}

	var estimateID *kernel.UUID
	if dto.EstimateID != nil {
		eID, estimateErr := kernel.UUIDFromBytes((*dto.EstimateID)[:])
		if estimateErr != nil {
			return nil, estimateErr
		}

		estimateID = &eID
	}

	return order.RestoreOrder(
		id,
		officeID,
		contactID,
		estimateID,
		dto.PONumber,
		dto.InHandsDate,
		dto.WalkIn,
		order.Status(dto.Status),
		shipping,
		items,
		dto.Version,
	)
}

// itemToDomain converts a database DTO to an order line item without its
// nested production records; the repository attaches those afterwards.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id,
		orderID,
		dto.Description,
		dto.Quantity,
		dto.FinishedQty,
		dto.Cost,
		dto.Amount,
		dto.ShippingAmount,
		dto.Ink,
		dto.Size,
		dto.Notes,
		order.ItemStatus(dto.Status),
		dto.Position,
		nil,
		nil,
		nil,
		nil,
		nil,
		dto.Version,
	)
}
